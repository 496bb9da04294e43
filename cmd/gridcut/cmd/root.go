package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/depshield-user-testing/sis/hyperrect"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gridcut",
	Short: "Address and extract sub-regions of raw gridded array files",
	Long: `gridcut computes strided sub-region addressing for n-dimensional
arrays stored linearly (axis 0 fastest) and extracts the selected
elements from raw binary files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(w, &tint.Options{
				Level:   level,
				NoColor: !isatty.IsTerminal(w.Fd()),
			}),
		))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("shape", "", "Full array extents, fastest axis first (e.g. 360,180,12)")
	rootCmd.PersistentFlags().String("lower", "", "Per-axis lower bounds, inclusive (default all 0)")
	rootCmd.PersistentFlags().String("upper", "", "Per-axis upper bounds, exclusive (default the full shape)")
	rootCmd.PersistentFlags().String("step", "", "Per-axis subsampling steps (default all 1)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// parseInt64List parses a comma-separated integer list flag.
func parseInt64List(value string) ([]int64, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	out := make([]int64, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", part, err)
		}
		out[i] = n
	}
	return out, nil
}

// regionFromFlags builds the addressing descriptor from the persistent
// region flags, defaulting lower/upper/step to the whole unsubsampled array.
func regionFromFlags(cmd *cobra.Command) (*hyperrect.Region, error) {
	shapeFlag, _ := cmd.Flags().GetString("shape")
	size, err := parseInt64List(shapeFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --shape: %w", err)
	}
	if len(size) == 0 {
		return nil, fmt.Errorf("--shape is required")
	}

	lowerFlag, _ := cmd.Flags().GetString("lower")
	lower, err := parseInt64List(lowerFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --lower: %w", err)
	}
	if lower == nil {
		lower = make([]int64, len(size))
	}

	upperFlag, _ := cmd.Flags().GetString("upper")
	upper, err := parseInt64List(upperFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --upper: %w", err)
	}
	if upper == nil {
		upper = append([]int64{}, size...)
	}

	stepFlag, _ := cmd.Flags().GetString("step")
	stepValues, err := parseInt64List(stepFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --step: %w", err)
	}
	if stepValues != nil && len(stepValues) != len(size) {
		return nil, fmt.Errorf("--step has %d values, --shape has %d", len(stepValues), len(size))
	}
	step := make([]int, len(size))
	for i := range step {
		step[i] = 1
		if stepValues != nil {
			step[i] = int(stepValues[i])
		}
	}

	return hyperrect.NewRegion(size, lower, upper, step)
}
