package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/bookmark/rng"
)

var seedOpts struct {
	count  int
	length int
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print fresh seeds",
	Long: `Prints random seeds drawn from an alphabet without look-alike
characters, one per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for range max(seedOpts.count, 1) {
			s, err := rng.NewSeed(seedOpts.length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedOpts.count, "count", "n", 1, "number of seeds")
	seedCmd.Flags().IntVar(&seedOpts.length, "length", rng.SeedLength, "seed length")
	rootCmd.AddCommand(seedCmd)
}
