package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/estat/internal/probe"
)

// Store persists scan runs under a base directory, one subdirectory per
// run holding metadata.json and samples.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	System    string    `json:"system"`
	Dimension int       `json:"dimension"`
	Timestamp time.Time `json:"timestamp"`
	Samples   int       `json:"samples"`
}

// SaveScan3D writes a 3D scan run and returns its id.
func (s *Store) SaveScan3D(system string, samples []probe.Sample) (string, error) {
	header := []string{"x", "y", "z", "ex", "ey", "ez", "e_mag", "v"}
	rows := make([][]float64, len(samples))
	for i, sm := range samples {
		rows[i] = []float64{
			sm.Point.X, sm.Point.Y, sm.Point.Z,
			sm.Field.X, sm.Field.Y, sm.Field.Z,
			sm.FieldMag, sm.Potential,
		}
	}
	return s.save(system, 3, header, rows)
}

// SaveScan2D writes a 2D scan run and returns its id.
func (s *Store) SaveScan2D(system string, samples []probe.Sample2D) (string, error) {
	header := []string{"x", "y", "ex", "ey", "e_mag"}
	rows := make([][]float64, len(samples))
	for i, sm := range samples {
		rows[i] = []float64{sm.Point.X, sm.Point.Y, sm.Field.X, sm.Field.Y, sm.FieldMag}
	}
	return s.save(system, 2, header, rows)
}

func (s *Store) save(system string, dim int, header []string, rows [][]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		System:    system,
		Dimension: dim,
		Timestamp: time.Now(),
		Samples:   len(rows),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, val := range row {
			rec[j] = strconv.FormatFloat(val, 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads the metadata of a stored run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads a run's sample rows along with the CSV header.
func (s *Store) LoadSamples(runID string) ([]string, [][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("storage: run %s has no samples", runID)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ExportJSONStdout writes a run as indented JSON to stdout.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	header, rows, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	out := struct {
		Meta    *RunMetadata `json:"meta"`
		Columns []string     `json:"columns"`
		Rows    [][]float64  `json:"rows"`
	}{meta, header, rows}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
