package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	sys := Default()

	if sys.Dimension != Dim3 {
		t.Errorf("expected dimension 3, got %d", sys.Dimension)
	}
	if len(sys.Particles) != 1 {
		t.Errorf("expected one particle, got %d", len(sys.Particles))
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	sys := GetPreset("quadrupole")
	path := filepath.Join(t.TempDir(), "sys.yaml")

	if err := Save(path, sys); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Name != sys.Name || loaded.Dimension != sys.Dimension {
		t.Errorf("round trip changed header: %+v", loaded)
	}
	if len(loaded.Particles) != len(sys.Particles) {
		t.Fatalf("expected %d particles, got %d", len(sys.Particles), len(loaded.Particles))
	}
	for i, pc := range loaded.Particles {
		if pc != sys.Particles[i] {
			t.Errorf("particle %d: got %+v, want %+v", i, pc, sys.Particles[i])
		}
	}
}

func TestLoadRejectsBadDimension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.yaml")
	if err := os.WriteFile(path, []byte("dimension: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for dimension 4")
	}
}

func TestGetPreset(t *testing.T) {
	sys := GetPreset("dipole")
	if sys == nil {
		t.Fatal("expected preset, got nil")
	}
	if sys.Dimension != Dim2 {
		t.Errorf("dipole should be 2D, got %d", sys.Dimension)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestBuild2D(t *testing.T) {
	d, err := GetPreset("dipole").Build2D()
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Errorf("expected 2 particles, got %d", d.Len())
	}

	p, err := d.Get("pos")
	if err != nil {
		t.Fatal(err)
	}
	if p.Q != 1e-6 || p.Pos.X != -0.5 {
		t.Errorf("unexpected particle %v", p)
	}

	if _, err := GetPreset("dipole").Build3D(); err == nil {
		t.Error("building a 2D system as 3D should fail")
	}
}

func TestBuild3D(t *testing.T) {
	d, err := GetPreset("tetrahedron").Build3D()
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 4 {
		t.Errorf("expected 4 particles, got %d", d.Len())
	}

	if _, err := GetPreset("tetrahedron").Build2D(); err == nil {
		t.Error("building a 3D system as 2D should fail")
	}
}

func TestBuildDuplicateLabel(t *testing.T) {
	sys := &System{
		Dimension: Dim2,
		Particles: []ParticleConfig{
			{Q: 1e-6, Label: "a"},
			{X: 1, Q: 1e-6, Label: "a"},
		},
	}
	if _, err := sys.Build2D(); err == nil {
		t.Error("expected duplicate label error")
	}
}
