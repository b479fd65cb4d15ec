package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/cosmocalc/internal/api"
	"github.com/san-kum/cosmocalc/internal/automation"
	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/experiment"
	"github.com/san-kum/cosmocalc/internal/export"
	"github.com/san-kum/cosmocalc/internal/integrators"
	"github.com/san-kum/cosmocalc/internal/logger"
	"github.com/san-kum/cosmocalc/internal/storage"
	"github.com/san-kum/cosmocalc/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	debug      bool
	// Cosmology overrides
	h0      float64
	omegaM  float64
	omegaDE float64
	omegaB  float64
	tcmb    float64
	nEff    float64
	// Integration
	rule    string
	step    float64
	workers int
	// Redshift grid
	zMin    float64
	zMax    float64
	points  int
	logGrid bool
	// Output
	asJSON  bool
	format  string
	save    bool
	columns string
	height  int
	width   int
	outFile string
	svgFile string
	addr    string
	// Sweep
	sweepSteps    int
	sweepZ        float64
	sweepQuantity string

	log *logger.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cosmocalc",
		Short:        "FLRW cosmology calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			log, err = logger.New("dev", debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplorer(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".cosmocalc", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "named cosmology (see presets)")
	pf.BoolVar(&debug, "debug", false, "debug logging")
	pf.Float64Var(&h0, "h0", config.DefaultH0, "Hubble constant in km/s/Mpc")
	pf.Float64Var(&omegaM, "om", config.DefaultMatter, "matter density Ω_M0")
	pf.Float64Var(&omegaDE, "ode", config.DefaultDarkEnergy, "dark energy density Ω_DE0")
	pf.Float64Var(&omegaB, "ob", config.DefaultBaryon, "baryon density Ω_b0")
	pf.Float64Var(&tcmb, "tcmb", 0, "CMB temperature in K (0 disables radiation)")
	pf.Float64Var(&nEff, "neff", config.DefaultNEff, "effective number of neutrino species")
	pf.StringVar(&rule, "rule", config.DefaultRule, "quadrature rule (euler, midpoint, rk4, rk45)")
	pf.Float64Var(&step, "step", integrators.DefaultStep, "redshift step of the line-of-sight integral")
	pf.IntVar(&workers, "workers", 1, "goroutines per integral")

	distanceCmd := &cobra.Command{
		Use:   "distance [z...]",
		Short: "distances at the given redshifts",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDistance,
	}
	distanceCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	densityCmd := &cobra.Command{
		Use:   "density [z...]",
		Short: "expansion rate, densities and temperatures",
		RunE:  runDensity,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "tabulate every quantity over a redshift grid",
		RunE:  runTable,
	}
	addGridFlags(tableCmd)
	tableCmd.Flags().StringVar(&format, "format", "text", "output format (text, csv, none)")
	tableCmd.Flags().BoolVar(&save, "save", false, "save the table as a run")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot survey columns against redshift",
		RunE:  runPlot,
	}
	addGridFlags(plotCmd)
	plotCmd.Flags().StringVar(&columns, "columns", "dl_mpc", "comma-separated columns ("+strings.Join(experiment.Columns, ", ")+")")
	plotCmd.Flags().IntVar(&height, "height", 15, "plot height")
	plotCmd.Flags().IntVar(&width, "width", 80, "plot width")
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the plot as SVG to this file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named cosmologies",
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [rule...]",
		Short: "compare quadrature rules against the adaptive reference",
		RunE:  compareRules,
	}
	addGridFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the radial comoving distance across steps and workers",
		RunE:  benchDistance,
	}
	benchCmd.Flags().Float64Var(&zMax, "z", 3, "redshift to integrate to")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run table to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and table to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive preset explorer",
		RunE:  runExplorer,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve distances over HTTP",
		RunE:  runServer,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted sequence of surveys",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param] [min] [max]",
		Short: "vary one cosmology parameter at a fixed redshift",
		Long:  "Parameters: " + strings.Join(automation.SweepParams, ", "),
		Args:  cobra.ExactArgs(3),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of parameter values")
	sweepCmd.Flags().Float64Var(&sweepZ, "z", 1, "redshift")
	sweepCmd.Flags().StringVar(&sweepQuantity, "quantity", "dl_mpc", "survey column to record")

	rootCmd.AddCommand(distanceCmd, densityCmd, tableCmd, plotCmd, presetsCmd, compareCmd, benchCmd,
		listCmd, showCmd, exportCSVCmd, exportJSONCmd, exploreCmd, serveCmd, batchCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDistance(cmd *cobra.Command, args []string) error {
	zs, err := parseRedshifts(args)
	if err != nil {
		return err
	}
	calc, _, err := resolveCalculator(cmd)
	if err != nil {
		return err
	}

	results := make([]distance.Distances, 0, len(zs))
	for _, z := range zs {
		d, err := calc.All(cmd.Context(), z)
		if err != nil {
			return err
		}
		results = append(results, d)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Println(viz.Subtle.Render(calc.Cosmology().String()))
	rows := make([][]string, 0, len(results))
	for _, d := range results {
		mu := "-inf"
		if d.DistanceModulus != nil {
			mu = fmt.Sprintf("%.4f", d.DistanceModulus.Value())
		}
		rows = append(rows, []string{
			fmt.Sprintf("%g", d.Redshift),
			fmt.Sprintf("%.3f", d.RadialComoving.Value()),
			fmt.Sprintf("%.3f", d.Transverse.Value()),
			fmt.Sprintf("%.3f", d.AngularDiameter.Value()),
			fmt.Sprintf("%.3f", d.Luminosity.Value()),
			fmt.Sprintf("%.4e", d.ComovingVolume.Value()),
			fmt.Sprintf("%.4f", d.LookbackTime.Value()),
			mu,
		})
	}
	fmt.Println(viz.Table([]string{"z", "D_C Mpc", "D_M Mpc", "D_A Mpc", "D_L Mpc", "V_C Mpc^3", "t_L Gyr", "mu"}, rows))
	return nil
}

func runDensity(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"0"}
	}
	zs, err := parseRedshifts(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.Cosmology.Build()
	if err != nil {
		return err
	}

	fmt.Println(viz.Subtle.Render(c.String()))
	fmt.Printf("curvature: %s (Ω_k0=%.6g)\n", c.Curvature(), c.OmegaK0().Value())
	fmt.Printf("Hubble time: %.4f Gyr, Hubble distance: %.3f Mpc\n\n", c.HubbleTimeGyr().Value(), c.HubbleDistance().Value())

	for _, z := range zs {
		rows := [][]string{
			{"H(z)", c.H(z).String()},
			{"E(z)", fmt.Sprintf("%.6f", c.E(z))},
			{"scale factor", fmt.Sprintf("%.6f", c.ScaleFactor(z))},
			{"critical density", c.CriticalDensity(z).String()},
			{"Ω_M", fmt.Sprintf("%.6g", c.OmegaM(z).Value())},
			{"Ω_b", fmt.Sprintf("%.6g", c.OmegaB(z).Value())},
			{"Ω_DM", fmt.Sprintf("%.6g", c.OmegaDM(z).Value())},
			{"Ω_DE", fmt.Sprintf("%.6g", c.OmegaDE(z).Value())},
			{"Ω_γ", fmt.Sprintf("%.6g", c.OmegaGamma(z).Value())},
			{"Ω_ν", fmt.Sprintf("%.6g", c.OmegaNu(z).Value())},
			{"Ω_k", fmt.Sprintf("%.6g", c.OmegaK(z).Value())},
			{"Ω_tot", fmt.Sprintf("%.6g", c.OmegaTot(z).Value())},
			{"T_CMB", c.CMBTemperature(z).String()},
			{"T_ν", c.NeutrinoTemperature(z).String()},
			{"lookback time", c.LookbackTime(z).String()},
		}
		fmt.Println(viz.Table([]string{z.String(), "value"}, rows))
	}
	return nil
}

func runSurvey(cmd *cobra.Command) (*experiment.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	exp := experiment.New(cfg, log)
	if err := exp.Setup(); err != nil {
		return nil, err
	}
	return exp.Run(cmd.Context())
}

func runTable(cmd *cobra.Command, args []string) error {
	result, err := runSurvey(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.ToUpper(strings.Join(experiment.Columns, "\t")))
		for _, r := range result.Rows {
			vals := r.Values()
			cells := make([]string, len(vals))
			for i, v := range vals {
				cells[i] = fmt.Sprintf("%.6g", v)
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write(experiment.Columns); err != nil {
			return err
		}
		for _, r := range result.Rows {
			vals := r.Values()
			record := make([]string, len(vals))
			for i, v := range vals {
				record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	case "none":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	log.Info("survey complete", "cosmology", result.Cosmology.Name(), "points", len(result.Rows), "elapsed", result.Elapsed)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		log.Info("run saved", "id", runID, "dir", dataDir)
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	result, err := runSurvey(cmd)
	if err != nil {
		return err
	}

	names := strings.Split(columns, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	graph, err := viz.Plot(result.Rows, names, viz.PlotOptions{Height: height, Width: width})
	if err != nil {
		return err
	}

	fmt.Println(viz.Subtle.Render(result.Cosmology.String()))
	fmt.Println(graph)

	if svgFile == "" {
		return nil
	}
	f, err := os.Create(svgFile)
	if err != nil {
		return err
	}
	if err := export.SurveySVG(f, result.Rows, names, 800, 480); err != nil {
		f.Close()
		return err
	}
	log.Info("svg written", "path", svgFile)
	return f.Close()
}

func listPresets(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(config.Presets))
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		tc := "-"
		if p.CMBTemperature > 0 {
			tc = fmt.Sprintf("%g", p.CMBTemperature)
		}
		de := fmt.Sprintf("%g", p.DarkEnergy)
		if p.Flat {
			de = "flat"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%g", p.H0),
			fmt.Sprintf("%g", p.Matter),
			de,
			fmt.Sprintf("%g", p.Baryon),
			tc,
			fmt.Sprintf("%g", p.NEff),
			p.Reference,
		})
	}
	fmt.Println(viz.Table([]string{"name", "H0", "Ω_M0", "Ω_DE0", "Ω_b0", "T_CMB0", "N_eff", "reference"}, rows))
	return nil
}

func compareRules(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.Cosmology.Build()
	if err != nil {
		return err
	}
	zs, err := experiment.Grid(cfg.Grid)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	rules := args
	if len(rules) == 0 {
		rules = registry.ListIntegrators()
	}

	results, err := registry.Compare(cmd.Context(), c, rules, cfg.Integration.Step, zs)
	if err != nil {
		return err
	}

	fmt.Printf("comparing rules for %s (step=%g, %d redshifts up to z=%g)\n\n", c.Name(), cfg.Integration.Step, len(zs), cfg.Grid.ZMax)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tMAX REL\tMEAN REL\tMEAN ABS (Mpc)\tMONOTONIC\tTIME")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3e\t%.2f\t%v\n",
			r.Rule,
			r.Metrics["max_rel_error"],
			r.Metrics["mean_rel_error"],
			r.Metrics["mean_abs_error"],
			r.Metrics["monotonic"],
			r.Elapsed.Round(time.Microsecond),
		)
	}
	return w.Flush()
}

func benchDistance(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c, err := cfg.Cosmology.Build()
	if err != nil {
		return err
	}
	z, err := cosmology.NewRedshift(zMax)
	if err != nil {
		return err
	}
	r, err := experiment.NewRegistry().GetIntegrator(cfg.Integration.Rule)
	if err != nil {
		return err
	}

	steps := []float64{1e-2, 1e-3, 1e-4, 1e-5}
	workerCounts := []int{1, 4}

	fmt.Printf("benchmarking D_C(%s) for %s with %s\n\n", z, c.Name(), r.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tWORKERS\tPANELS\tTIME\tPANELS/SEC\tD_C (Mpc)")

	for _, h := range steps {
		for _, n := range workerCounts {
			calc := distance.New(c, distance.WithRule(r), distance.WithStep(h), distance.WithWorkers(n))
			panels, _ := integrators.Steps(0, z.Float(), h)

			start := time.Now()
			dc, err := calc.RadialComovingContext(cmd.Context(), z)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%g\t%d\t%d\t%v\t%.0f\t%.6f\n",
				h, n, panels, elapsed, float64(panels)/elapsed.Seconds(), dc.Value())
		}
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tCOSMOLOGY\tTIME\tRULE\tSTEP\tPOINTS\tZ RANGE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%d\t[%g, %g]\n",
			run.ID,
			run.Cosmology,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Rule,
			run.Step,
			run.Points,
			run.ZMin,
			run.ZMax,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return withOutput(func(f *os.File) error {
		return storage.New(dataDir).ExportCSV(args[0], f)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return withOutput(func(f *os.File) error {
		return storage.New(dataDir).ExportJSON(args[0], f)
	})
}

// withOutput runs fn against --out, or stdout when unset.
func withOutput(fn func(f *os.File) error) error {
	if outFile == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	log.Info("exported", "path", outFile)
	return f.Close()
}

func runExplorer(cmd *cobra.Command, args []string) error {
	build := func(name string) (*cosmology.FLRW, error) {
		return experiment.NewRegistry().GetCosmology(name)
	}
	return viz.RunExplorer(config.ListPresets(), build)
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	outcomes, err := automation.RunScenario(cmd.Context(), scenario, st, log)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tCOSMOLOGY\tRULE\tPOINTS\tELAPSED\tRUN ID")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\t%s\n",
			o.Step, o.Result.Cosmology.Name(), o.Result.Rule, len(o.Result.Rows), o.Result.Elapsed, o.RunID)
	}
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	lo, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid min %q: %w", args[1], err)
	}
	hi, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid max %q: %w", args[2], err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		Base:     cfg.Cosmology,
		Param:    args[0],
		Min:      lo,
		Max:      hi,
		Steps:    sweepSteps,
		Redshift: sweepZ,
		Quantity: sweepQuantity,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s(z=%g)\n", strings.ToUpper(args[0]), sweepQuantity, sweepZ)
	for _, r := range results {
		fmt.Fprintf(w, "%g\t%.6f\n", r.ParamValue, r.Value)
	}
	return w.Flush()
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultPreset := preset
	if defaultPreset == "" {
		defaultPreset = "planck18"
	}
	if config.GetPreset(defaultPreset) == nil {
		return fmt.Errorf("%w: %s", experiment.ErrUnknownPreset, defaultPreset)
	}

	return api.NewServer(log, defaultPreset, workers).ListenAndServe(ctx, addr)
}
