package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fedegimenez/chargesim/sim"
	"github.com/fedegimenez/chargesim/sim/trace"
)

var (
	// CLI flags for the simulation run
	horizon          float64 // Time horizon in simulated minutes
	maxEvents        int     // Cap on processed events
	meanInterArrival float64 // Mean inter-arrival time in minutes
	probUSBC         float64 // Arrival probability of USB-C devices
	probLightning    float64 // Arrival probability of Lightning devices
	probMicroUSB     float64 // Arrival probability of MicroUSB devices
	validationTime   float64 // Fixed validation stand service time in minutes
	stations         int     // Number of charging stations
	seed             int64   // Seed for reproducible runs (0 = reseed from clock)
	logLevel         string  // Log verbosity level
	scenarioPath     string  // Optional YAML scenario file
	outputPath       string  // Optional snapshot table destination
	outputFormat     string  // Snapshot table format: csv or json
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "chargesim",
	Short: "Discrete-event simulator for a festival device-charging area",
}

// runCmd executes one simulation using parameters from flags and the
// optional scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the charging-area simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			return err
		}
		summary := s.Run()

		if summary.Events == 0 {
			logrus.Warn("the simulation produced no events; check the horizon and event cap")
		}

		s.Metrics.Print()

		if outputPath != "" {
			if err := exportTrace(s.Trace, outputPath, outputFormat); err != nil {
				return err
			}
			logrus.Infof("snapshot table for run %s written to %s", s.Trace.RunID, outputPath)
		}
		return nil
	},
}

// buildConfig assembles the run configuration: defaults, then the scenario
// file if given, then any explicitly set flags on top.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	if scenarioPath != "" {
		scenario, err := LoadScenario(scenarioPath)
		if err != nil {
			return sim.Config{}, err
		}
		scenario.Apply(&cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("max-events") {
		cfg.MaxEvents = maxEvents
	}
	if flags.Changed("mean-interarrival") {
		cfg.MeanInterArrival = meanInterArrival
	}
	if flags.Changed("p-usbc") {
		cfg.Probabilities.USBC = probUSBC
	}
	if flags.Changed("p-lightning") {
		cfg.Probabilities.Lightning = probLightning
	}
	if flags.Changed("p-microusb") {
		cfg.Probabilities.MicroUSB = probMicroUSB
	}
	if flags.Changed("validation-time") {
		cfg.ValidationDuration = validationTime
	}
	if flags.Changed("stations") {
		cfg.Stations = stations
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

// exportTrace writes the snapshot table to path in the requested format.
func exportTrace(st *trace.SimulationTrace, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		return trace.WriteCSV(f, st)
	case "json":
		return trace.WriteJSON(f, st)
	default:
		return fmt.Errorf("unknown output format %q (want csv or json)", format)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().Float64Var(&horizon, "horizon", defaults.Horizon, "Time horizon in simulated minutes")
	runCmd.Flags().IntVar(&maxEvents, "max-events", defaults.MaxEvents, "Maximum number of processed events")
	runCmd.Flags().Float64Var(&meanInterArrival, "mean-interarrival", defaults.MeanInterArrival, "Mean inter-arrival time in minutes")
	runCmd.Flags().Float64Var(&probUSBC, "p-usbc", defaults.Probabilities.USBC, "Arrival probability of USB-C devices")
	runCmd.Flags().Float64Var(&probLightning, "p-lightning", defaults.Probabilities.Lightning, "Arrival probability of Lightning devices")
	runCmd.Flags().Float64Var(&probMicroUSB, "p-microusb", defaults.Probabilities.MicroUSB, "Arrival probability of MicroUSB devices")
	runCmd.Flags().Float64Var(&validationTime, "validation-time", defaults.ValidationDuration, "Validation stand service time in minutes")
	runCmd.Flags().IntVar(&stations, "stations", defaults.Stations, "Number of charging stations")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible runs (0 reseeds from the clock)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file with run parameters")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the snapshot table to this path")
	runCmd.Flags().StringVar(&outputFormat, "format", "csv", "Snapshot table format (csv or json)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
