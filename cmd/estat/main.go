package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/estat/internal/config"
	"github.com/san-kum/estat/internal/geom"
	"github.com/san-kum/estat/internal/probe"
	"github.com/san-kum/estat/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	at         string
	exclude    []string
	// Scan parameters
	scanFrom    string
	scanTo      string
	scanSamples int
	saveScan    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "estat",
		Short: "point-charge electrostatics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".estat", "data directory")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "system config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset system")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "electric field at a point",
		RunE:  evalField,
	}
	fieldCmd.Flags().StringVar(&at, "at", "", "observation point, e.g. 1,0 or 1,0,0")
	fieldCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "labels to exclude")

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "electric potential at a point (3D systems only)",
		RunE:  evalPotential,
	}
	potentialCmd.Flags().StringVar(&at, "at", "", "observation point, e.g. 1,0,0")
	potentialCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "labels to exclude")

	forceCmd := &cobra.Command{
		Use:   "force [label]",
		Short: "net electrostatic force on a labeled particle",
		Args:  cobra.ExactArgs(1),
		RunE:  evalForce,
	}

	energyCmd := &cobra.Command{
		Use:   "energy",
		Short: "total potential energy (3D systems only)",
		RunE:  evalEnergy,
	}

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "show the particles of a system",
		RunE:  describeSystem,
	}

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sample field and potential along a line",
		RunE:  runScan,
	}
	scanCmd.Flags().StringVar(&scanFrom, "from", "", "scan start point")
	scanCmd.Flags().StringVar(&scanTo, "to", "", "scan end point")
	scanCmd.Flags().IntVar(&scanSamples, "samples", 50, "number of samples")
	scanCmd.Flags().BoolVar(&saveScan, "save", false, "save scan to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved scans",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved scan as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available preset systems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				sys := config.GetPreset(name)
				fmt.Printf("  %-12s %dD, %d particles\n", name, sys.Dimension, len(sys.Particles))
			}
		},
	}

	rootCmd.AddCommand(fieldCmd, potentialCmd, forceCmd, energyCmd, describeCmd, scanCmd, listCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSystem resolves --preset and --config, with the config file taking
// precedence when both are given.
func loadSystem() (*config.System, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		sys := config.GetPreset(preset)
		if sys == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return sys, nil
	}
	return nil, fmt.Errorf("no system given: use --config or --preset")
}

func parsePoint(s string, dim int) ([]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("no observation point given: use --at")
	}
	parts := strings.Split(s, ",")
	if len(parts) != dim {
		return nil, fmt.Errorf("point %q: expected %d coordinates, got %d", s, dim, len(parts))
	}
	coords := make([]float64, dim)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", s, err)
		}
		coords[i] = v
	}
	return coords, nil
}

func evalField(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}

	pt, err := parsePoint(at, sys.Dimension)
	if err != nil {
		return err
	}

	switch sys.Dimension {
	case config.Dim2:
		d, err := sys.Build2D()
		if err != nil {
			return err
		}
		e := d.FieldAt(geom.Vec2{X: pt[0], Y: pt[1]}, exclude...)
		fmt.Printf("E = %v N/C\n|E| = %g N/C\n", e, e.Norm())
	case config.Dim3:
		d, err := sys.Build3D()
		if err != nil {
			return err
		}
		e := d.FieldAt(geom.Vec3{X: pt[0], Y: pt[1], Z: pt[2]}, exclude...)
		fmt.Printf("E = %v N/C\n|E| = %g N/C\n", e, e.Norm())
	}
	return nil
}

func evalPotential(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	if sys.Dimension != config.Dim3 {
		return fmt.Errorf("potential is only defined for 3D systems")
	}

	pt, err := parsePoint(at, config.Dim3)
	if err != nil {
		return err
	}

	d, err := sys.Build3D()
	if err != nil {
		return err
	}

	v := d.PotentialAt(geom.Vec3{X: pt[0], Y: pt[1], Z: pt[2]}, exclude...)
	fmt.Printf("V = %g V\n", v)
	return nil
}

func evalForce(cmd *cobra.Command, args []string) error {
	label := args[0]

	sys, err := loadSystem()
	if err != nil {
		return err
	}

	switch sys.Dimension {
	case config.Dim2:
		d, err := sys.Build2D()
		if err != nil {
			return err
		}
		f, err := d.ForceOn(label)
		if err != nil {
			return err
		}
		fmt.Printf("F(%s) = %v N\n|F| = %g N\n", label, f, f.Norm())
	case config.Dim3:
		d, err := sys.Build3D()
		if err != nil {
			return err
		}
		f, err := d.ForceOn(label)
		if err != nil {
			return err
		}
		fmt.Printf("F(%s) = %v N\n|F| = %g N\n", label, f, f.Norm())
	}
	return nil
}

func evalEnergy(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	if sys.Dimension != config.Dim3 {
		return fmt.Errorf("energy is only defined for 3D systems")
	}

	d, err := sys.Build3D()
	if err != nil {
		return err
	}

	fmt.Printf("U = %g J\n", d.Energy())
	return nil
}

func describeSystem(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}

	fmt.Printf("system: %s (%dD)\n\n", sys.Name, sys.Dimension)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tPOSITION\tQ (C)\tR (m)")

	switch sys.Dimension {
	case config.Dim2:
		d, err := sys.Build2D()
		if err != nil {
			return err
		}
		for _, p := range d.Particles() {
			label := p.Label
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(w, "%s\t%v\t%g\t%g\n", label, p.Pos, p.Q, p.R())
		}
	case config.Dim3:
		d, err := sys.Build3D()
		if err != nil {
			return err
		}
		for _, p := range d.Particles() {
			label := p.Label
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(w, "%s\t%v\t%g\t%g\n", label, p.Pos, p.Q, p.R())
		}
	}

	return w.Flush()
}

func runScan(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}

	if scanSamples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", scanSamples)
	}

	from, err := parsePoint(scanFrom, sys.Dimension)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parsePoint(scanTo, sys.Dimension)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	switch sys.Dimension {
	case config.Dim2:
		d, err := sys.Build2D()
		if err != nil {
			return err
		}
		samples := probe.Line2D(d,
			geom.Vec2{X: from[0], Y: from[1]},
			geom.Vec2{X: to[0], Y: to[1]},
			scanSamples)

		if saveScan {
			st := storage.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.SaveScan2D(sys.Name, samples)
			if err != nil {
				return err
			}
			fmt.Printf("run id: %s\n", runID)
			return nil
		}
		return writeScan2D(samples)
	case config.Dim3:
		d, err := sys.Build3D()
		if err != nil {
			return err
		}
		samples := probe.Line(d,
			geom.Vec3{X: from[0], Y: from[1], Z: from[2]},
			geom.Vec3{X: to[0], Y: to[1], Z: to[2]},
			scanSamples)

		if saveScan {
			st := storage.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.SaveScan3D(sys.Name, samples)
			if err != nil {
				return err
			}
			fmt.Printf("run id: %s\n", runID)
			return nil
		}
		return writeScan3D(samples)
	}
	return nil
}

func writeScan2D(samples []probe.Sample2D) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "ex", "ey", "e_mag"}); err != nil {
		return err
	}
	for _, sm := range samples {
		row := []string{
			formatFloat(sm.Point.X), formatFloat(sm.Point.Y),
			formatFloat(sm.Field.X), formatFloat(sm.Field.Y),
			formatFloat(sm.FieldMag),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeScan3D(samples []probe.Sample) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "ex", "ey", "ez", "e_mag", "v"}); err != nil {
		return err
	}
	for _, sm := range samples {
		row := []string{
			formatFloat(sm.Point.X), formatFloat(sm.Point.Y), formatFloat(sm.Point.Z),
			formatFloat(sm.Field.X), formatFloat(sm.Field.Y), formatFloat(sm.Field.Z),
			formatFloat(sm.FieldMag), formatFloat(sm.Potential),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tDIM\tTIME\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dD\t%s\t%d\n",
			run.ID,
			run.System,
			run.Dimension,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
		)
	}

	return w.Flush()
}
