package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the addressing geometry for a sub-region request",
	Long: `Describe computes the addressing descriptor for a sub-region request
without touching any data: the start offset, the per-axis element counts
and skip distances, and the contiguous prefix that can be collapsed into
a single bulk transfer.

Example:
  gridcut describe --shape 4,4 --lower 1,1 --upper 3,3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := regionFromFlags(cmd)
		if err != nil {
			return err
		}

		total, err := region.TargetLength(region.Dimension())
		if err != nil {
			return err
		}
		bulk, err := region.TargetLength(region.ContiguousPrefix())
		if err != nil {
			return err
		}

		color.New(color.Bold).Printf("region: %d axes, %d elements\n", region.Dimension(), total)
		fmt.Printf("start offset:      %d\n", region.StartOffset())
		fmt.Printf("contiguous prefix: %d axes (%d elements per bulk transfer)\n",
			region.ContiguousPrefix(), bulk)
		fmt.Printf("trailing skip:     %d\n", region.Skip(region.Dimension()))
		fmt.Println()
		fmt.Print(region.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
