package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose       bool
	printCircuit  bool
	showQASM      bool
	tryAll        bool
	iterations    int
	probabilities string
	seed          int64
	seedSet       bool
	errorSpec     string
	outputPath    string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "qbellsim",
	Short: "Bell state circuit with error correction simulation",
	Long: `qbellsim simulates the preparation of the Bell state (|00> + |11>)/sqrt(2)
under injected single-qubit Pauli errors, with a choice of correction
schemes: none, a single-ancilla simple code, a two-ancilla repetition
code, or the nine-qubit Shor code.

Each subcommand selects a correction scheme; flags choose between
printing the circuit, trying every error combination, simulating one
explicit error, or sampling random errors.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		seedSet = cmd.Flags().Changed("seed")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// viewCmd opens the interactive diagram browser.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the four correction circuits interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewTUI()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&printCircuit, "print-circuit", false,
		"Print the circuit with symbolic errors; all simulation flags are ignored")
	pf.BoolVar(&showQASM, "qasm", false, "With --print-circuit, also print the QASM export")
	pf.BoolVar(&tryAll, "try-all", false,
		"Try all possible 1-qubit error combinations (one error per qubit group)")
	pf.IntVarP(&iterations, "iterations", "i", 1,
		"Number of random-error iterations; ignored with --try-all or --error")
	pf.StringVarP(&probabilities, "probabilities", "p", "",
		"Weights per error gate as \"<p_i> <p_x> <p_z>\"; equal when omitted")
	pf.Int64VarP(&seed, "seed", "s", 0, "Seed for the random error generator")
	pf.StringVarP(&errorSpec, "error", "e", "",
		"Specific error as \"<index_1> <gate_1> <index_2> <gate_2>\" where each index "+
			"selects the primary qubit (0) or an ancilla (1..n) of its group; "+
			"ignored with --try-all")
	pf.StringVarP(&outputPath, "output", "o", "", "File path to store the output report")

	for _, scheme := range Schemes {
		scheme := scheme
		rootCmd.AddCommand(&cobra.Command{
			Use:   string(scheme),
			Short: fmt.Sprintf("Simulate with the %s scheme", scheme),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScheme(scheme)
			},
		})
	}
	rootCmd.AddCommand(viewCmd)
}

// runScheme executes one scheme subcommand, honoring the mode precedence
// print-circuit > try-all > explicit error > random sampling.
func runScheme(scheme Scheme) error {
	if printCircuit {
		logger.Info("skipping simulations and printing only the circuit with symbolic errors",
			zap.String("scheme", string(scheme)))
		sim := &Simulator{Scheme: scheme}
		c, reg, err := sim.SymbolicCircuit()
		if err != nil {
			return err
		}
		fmt.Println(DrawCircuit(c, reg))
		if showQASM {
			fmt.Println(c.ToQASM())
		}
		return nil
	}

	runSeed := seed
	if !seedSet {
		runSeed = time.Now().UnixNano()
	}
	sim := NewSimulator(scheme, NewStatevectorBackend(runSeed))

	var (
		counts    Counts
		errCounts ErrorCounts
		err       error
	)
	switch {
	case tryAll:
		logger.Info("running all possible error configurations",
			zap.String("scheme", string(scheme)))
		counts, errCounts, err = sim.RunAll()

	case errorSpec != "":
		var pair ErrorPair
		pair, err = ParseErrorSpec(errorSpec)
		if err != nil {
			return err
		}
		var key string
		counts, key, err = sim.RunOne(pair)
		if err == nil {
			errCounts = ErrorCounts{key: counts}
			logger.Info("ran with explicit error", zap.String("error", key))
		}

	default:
		var weights []float64
		weights, err = ParseWeights(probabilities)
		if err != nil {
			return err
		}
		logger.Info("running with random errors",
			zap.String("scheme", string(scheme)),
			zap.Int("iterations", iterations),
			zap.Int64("seed", runSeed),
			zap.Float64s("weights", weights))
		rng := rand.New(rand.NewSource(runSeed))
		counts, errCounts, err = sim.RunRandom(iterations, weights, rng)
	}
	if err != nil {
		return err
	}

	fmt.Println(DrawBarChart(counts, 40))

	if outputPath != "" {
		logger.Info("writing output", zap.String("path", outputPath))
		if err := writeReport(outputPath, counts, errCounts); err != nil {
			return err
		}
	}
	return nil
}

// writeReport writes the plain-text result report: the total counts, a
// blank line, then one line per canonical error key with its counts.
func writeReport(path string, counts Counts, errCounts ErrorCounts) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Total counts: %s\n\n", counts)
	fmt.Fprintln(f, "Details with error split:")

	keys := make([]string, 0, len(errCounts))
	for key := range errCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(f, "%s\t%s\n", key, errCounts[key])
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
