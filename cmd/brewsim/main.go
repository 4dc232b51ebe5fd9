package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kmoray/brewsim/internal/config"
	"github.com/kmoray/brewsim/internal/export"
	"github.com/kmoray/brewsim/internal/scenario"
	"github.com/kmoray/brewsim/internal/units"
	"github.com/kmoray/brewsim/internal/viz"
)

var (
	configFile string
	preset     string
	// Boundary parameters, all in display units (°F, percent, minutes)
	ambientF        float64
	coffeeF         float64
	targetF         float64
	preheatF        float64
	additiveF       float64
	additivePercent float64
	decayConst      float64
	mixTime         float64
	window          float64
	samples         int
	displayScale    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brewsim",
		Short: "coffee cooling comparison lab",
		Long:  "brewsim models a cooling drink under Newton's law of cooling and compares a cold cup, a preheated cup, and a preheated cup with creamer.",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run all scenarios and print a summary",
		RunE:  runScenarios,
	}
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render scenario trajectories as terminal graphs",
		RunE:  plotScenarios,
	}
	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export trajectories to CSV on stdout",
		RunE:  exportCSV,
	}
	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export trajectories to JSON on stdout",
		RunE:  exportJSON,
	}
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view with adjustable parameters",
		RunE:  runLive,
	}
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	for _, cmd := range []*cobra.Command{runCmd, plotCmd, exportCSVCmd, exportJSONCmd, liveCmd} {
		addParameterFlags(cmd)
	}

	rootCmd.AddCommand(runCmd, plotCmd, exportCSVCmd, exportJSONCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParameterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&ambientF, "ambient", config.DefaultAmbientTempF, "ambient temperature (°F)")
	cmd.Flags().Float64Var(&coffeeF, "coffee", config.DefaultCoffeeTempF, "coffee temperature in the pot (°F)")
	cmd.Flags().Float64Var(&targetF, "target", config.DefaultTargetTempF, "drinkable target temperature (°F)")
	cmd.Flags().Float64Var(&preheatF, "preheat", config.DefaultPreheatedCupF, "preheated cup temperature (°F)")
	cmd.Flags().Float64Var(&additiveF, "additive-temp", config.DefaultAdditiveTempF, "creamer temperature (°F)")
	cmd.Flags().Float64Var(&additivePercent, "additive-percent", config.DefaultAdditivePercent, "creamer volume (% of cup)")
	cmd.Flags().Float64Var(&decayConst, "k", config.DefaultDecayConstant, "cooling decay constant (1/min)")
	cmd.Flags().Float64Var(&mixTime, "mix-time", config.DefaultMixTimeMin, "creamer addition time (min)")
	cmd.Flags().Float64Var(&window, "window", config.DefaultWindowMin, "observation window (min)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples across the window")
	cmd.Flags().StringVar(&displayScale, "scale", "", "output temperature scale (celsius|fahrenheit|kelvin)")
}

// resolveConfig layers defaults, preset, config file, then explicit
// flags, strongest last.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("ambient") {
		cfg.AmbientTempF = ambientF
	}
	if cmd.Flags().Changed("coffee") {
		cfg.CoffeeTempF = coffeeF
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetTempF = targetF
	}
	if cmd.Flags().Changed("preheat") {
		cfg.PreheatedCupTempF = preheatF
	}
	if cmd.Flags().Changed("additive-temp") {
		cfg.AdditiveTempF = additiveF
	}
	if cmd.Flags().Changed("additive-percent") {
		cfg.AdditiveVolumePercent = additivePercent
	}
	if cmd.Flags().Changed("k") {
		cfg.DecayConstant = decayConst
	}
	if cmd.Flags().Changed("mix-time") {
		cfg.MixTimeMin = mixTime
	}
	if cmd.Flags().Changed("window") {
		cfg.WindowMin = window
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("scale") {
		cfg.DisplayScale = displayScale
	}

	return cfg, nil
}

func compute(cmd *cobra.Command) (*scenario.ResultSet, units.TempScale, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	scale, err := cfg.Scale()
	if err != nil {
		return nil, "", err
	}
	in, err := cfg.Inputs()
	if err != nil {
		return nil, "", err
	}
	rs, err := scenario.Run(in)
	if err != nil {
		return nil, "", err
	}
	return rs, scale, nil
}

func runScenarios(cmd *cobra.Command, args []string) error {
	rs, scale, err := compute(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCENARIO\tSTART %s\tCROSSING\tEXACT\n", units.Symbol(scale))

	for _, sc := range rs.Scenarios {
		start, err := units.FromCelsius(sc.Trajectory.Temps[0], scale)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", sc.Name, start,
			formatCrossing(sc.Crossing), formatCrossing(sc.ExactCrossing))
	}

	return w.Flush()
}

func formatCrossing(t *float64) string {
	if t == nil {
		return "not reached"
	}
	return fmt.Sprintf("%.2f min", *t)
}

func plotScenarios(cmd *cobra.Command, args []string) error {
	rs, scale, err := compute(cmd)
	if err != nil {
		return err
	}
	out, err := viz.RenderAll(rs, scale)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	rs, scale, err := compute(cmd)
	if err != nil {
		return err
	}
	return export.CSV(os.Stdout, rs, scale)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	rs, scale, err := compute(cmd)
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, rs, scale)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scale, err := cfg.Scale()
	if err != nil {
		return err
	}
	in, err := cfg.Inputs()
	if err != nil {
		return err
	}
	return viz.RunLive(in, scale)
}
