package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/radviz/internal/analysis"
	"github.com/san-kum/radviz/internal/anim"
	"github.com/san-kum/radviz/internal/cloud"
	"github.com/san-kum/radviz/internal/config"
	"github.com/san-kum/radviz/internal/dataset"
	"github.com/san-kum/radviz/internal/envelope"
	"github.com/san-kum/radviz/internal/export"
	"github.com/san-kum/radviz/internal/gui"
	"github.com/san-kum/radviz/internal/scene"
	"github.com/san-kum/radviz/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataPath   string
	configFile string
	preset     string
	title      string
	subtitle   string
	width      int
	height     int
	fps        int
	points     int
	stdX       float64
	stdY       float64
	layers     int
	bins       int
	centerY    float64
	interval   float64
	transition float64
	seed       int64
	theme      string
	smooth     bool
	sonify     bool
	// Output target for export and snapshot
	outPath string
	// Timeline position for snapshot
	atTime float64
)

// main registers commands and flags and launches the GUI frontend when no
// subcommand is given. It exits with status 1 on command errors.
func main() {
	rootCmd := &cobra.Command{
		Use:   "radviz",
		Short: "animated topography of yearly solar radiation totals",
		RunE:  runViz,
	}

	def := config.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataPath, "data", def.Dataset, "dataset csv path")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&title, "title", def.Title, "window title")
	pf.StringVar(&subtitle, "subtitle", def.Subtitle, "subtitle text")
	pf.IntVar(&width, "width", def.Width, "canvas width")
	pf.IntVar(&height, "height", def.Height, "canvas height")
	pf.IntVar(&fps, "fps", def.FPS, "target frame rate")
	pf.IntVar(&points, "points", def.Points, "number of cloud points")
	pf.Float64Var(&stdX, "std-x", def.StdX, "horizontal point spread")
	pf.Float64Var(&stdY, "std-y", def.StdY, "vertical point spread")
	pf.IntVar(&layers, "layers", def.Layers, "contour ring layers")
	pf.IntVar(&bins, "bins", def.Bins, "envelope angular bins")
	pf.Float64Var(&centerY, "center-y", def.CenterYOffset, "vertical center offset")
	pf.Float64Var(&interval, "interval", def.SwitchInterval, "seconds per year")
	pf.Float64Var(&transition, "transition", def.TransitionDuration, "transition seconds")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = random each run)")
	pf.StringVar(&theme, "theme", def.Theme, "color theme")
	pf.BoolVar(&smooth, "smooth", def.Smooth, "antialiased ring outlines")
	pf.BoolVar(&sonify, "sonify", def.Sonify, "start with sonification on")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal braille frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, loadSeries(cfg))
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "summarize the dataset",
		RunE:  inspectDataset,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of yearly totals",
		RunE:  analyzeDataset,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG",
		RunE:  renderSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&atTime, "at", 0.0, "timeline position in seconds")
	snapshotCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export yearly totals to CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export yearly totals to JSON",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPOINTS\tLAYERS\tINTERVAL\tTHEME")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%.1fs\t%s\n", name, p.Points, p.Layers, p.SwitchInterval, p.Theme)
			}
			return w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "radviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, inspectCmd, analyzeCmd, snapshotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig builds the effective config: preset, then config file,
// then any flag the user set on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := *config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return cfg, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Dataset = dataPath
	}
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("subtitle") {
		cfg.Subtitle = subtitle
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("std-x") {
		cfg.StdX = stdX
	}
	if flags.Changed("std-y") {
		cfg.StdY = stdY
	}
	if flags.Changed("layers") {
		cfg.Layers = layers
	}
	if flags.Changed("bins") {
		cfg.Bins = bins
	}
	if flags.Changed("center-y") {
		cfg.CenterYOffset = centerY
	}
	if flags.Changed("interval") {
		cfg.SwitchInterval = interval
	}
	if flags.Changed("transition") {
		cfg.TransitionDuration = transition
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("smooth") {
		cfg.Smooth = smooth
	}
	if flags.Changed("sonify") {
		cfg.Sonify = sonify
	}

	return cfg, nil
}

// loadSeries loads the dataset leniently: on any failure the frontends
// still run, showing the placeholder readout over an empty series.
func loadSeries(cfg config.Config) dataset.Series {
	series, err := dataset.Resolve(cfg.Dataset).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v; continuing with empty series\n", err)
		return dataset.Series{}
	}
	return series
}

// mustLoadSeries is the strict variant for data commands, where an
// unreadable dataset is an error rather than a degraded scene.
func mustLoadSeries(cfg config.Config) (dataset.Series, error) {
	return dataset.Resolve(cfg.Dataset).Load()
}

func runViz(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(cfg, loadSeries(cfg))
	return nil
}

func inspectDataset(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	series, err := mustLoadSeries(cfg)
	if err != nil {
		return err
	}

	first := series.Entries[0].Year
	last := series.Entries[series.Len()-1].Year
	fmt.Printf("dataset: %s\n", cfg.Dataset)
	fmt.Printf("years: %d (%d..%d)\n", series.Len(), first, last)
	fmt.Printf("sum: %.1f\n", series.Sum())
	fmt.Printf("mean: %.1f\n", series.Mean())
	fmt.Printf("min: %.1f  max: %.1f\n\n", series.Min, series.Max)

	if series.Len() > 1 {
		chart := asciigraph.Plot(series.Values(),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("yearly totals"),
		)
		fmt.Println(chart)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tTOTAL\tNORM")
	for i, e := range series.Entries {
		fmt.Fprintf(w, "%d\t%.1f\t%.3f\n", e.Year, e.Total, series.Normalized(i))
	}
	return w.Flush()
}

func analyzeDataset(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	series, err := mustLoadSeries(cfg)
	if err != nil {
		return err
	}

	vals := series.Values()
	ps := analysis.PowerSpectrum(vals)
	if len(ps) < 2 {
		return fmt.Errorf("need at least four years for frequency analysis, have %d", series.Len())
	}

	fmt.Printf("frequency analysis: %s (%d years)\n\n", cfg.Dataset, series.Len())

	graph := asciigraph.Plot(ps,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	if period, ok := analysis.DominantPeriod(vals); ok {
		fmt.Printf("dominant period: %.1f years\n", period)
	} else {
		fmt.Println("no dominant cycle stands out")
	}
	return nil
}

// stepClock replays the animation timeline deterministically for offline
// rendering.
type stepClock struct {
	t float64
}

func (c *stepClock) Now() float64 { return c.t }

// replayFrame steps the driver from zero to the requested time so year
// switches land exactly where the live frontends put them.
func replayFrame(cfg config.Config, series dataset.Series, at float64) anim.Frame {
	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height)/2 + cfg.CenterYOffset

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	gen := cloud.NewGenerator(cx, cy, cfg.StdX, cfg.StdY, cfg.Points, rand.New(rand.NewSource(s)))

	clock := &stepClock{}
	driver := anim.NewDriver(series, gen, clock, anim.Config{
		SwitchInterval:     cfg.SwitchInterval,
		TransitionDuration: cfg.TransitionDuration,
	})

	const step = 1.0 / 60
	frame := driver.Advance()
	for clock.t+step <= at {
		clock.t += step
		frame = driver.Advance()
	}
	if clock.t < at {
		clock.t = at
		frame = driver.Advance()
	}
	return frame
}

func renderSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	series := loadSeries(cfg)
	frame := replayFrame(cfg, series, atTime)

	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height)/2 + cfg.CenterYOffset
	pal := scene.PaletteByName(cfg.Theme)

	computer := envelope.NewComputer(cx, cy, cfg.Bins)
	rings := scene.NewRingRenderer(cx, cy, cfg.Layers, pal)
	markers := scene.NewPointRenderer(pal)

	svg := export.NewSVG(cfg.Width, cfg.Height, pal.Background)
	rings.Render(svg, computer.Compute(frame.Prev), computer.Compute(frame.Target), frame.Ratio, frame.Time)
	markers.Render(svg, frame.Prev, frame.Target, frame.Time, frame.Ratio)
	svg.Text(60, 110, 64, pal.Title, cfg.Title)
	svg.Text(60, 150, 36, pal.Subtitle, cfg.Subtitle)
	svg.Text(60, 208, 36, pal.Readout, frame.Readout())

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = svg.WriteTo(f)
		return err
	}
	_, err = svg.WriteTo(os.Stdout)
	return err
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	series, err := mustLoadSeries(cfg)
	if err != nil {
		return err
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteCSV(f, series)
	}
	return export.WriteCSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	series, err := mustLoadSeries(cfg)
	if err != nil {
		return err
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteJSON(f, series)
	}
	return export.WriteJSON(os.Stdout, series)
}
