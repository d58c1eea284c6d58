package clicubie

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubie/internal/cubie"
	"github.com/behrlich/cubie/internal/cubienotation"
)

var coordsCmd = &cobra.Command{
	Use:   "coords <scramble>",
	Short: "Print the five coordinates reached by applying a scramble to a solved cube",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		turns, err := cubienotation.ParseSequence(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing scramble: %v\n", err)
			os.Exit(1)
		}

		c := cubie.Solved()
		c.ApplyTurns(turns)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "corner orientation: %d\n", cubie.CornerOrientationCoord(c))
		fmt.Fprintf(out, "edge orientation:   %d\n", cubie.EdgeOrientationCoord(c))
		fmt.Fprintf(out, "ud-slice:           %d\n", cubie.UDSliceCoord(c))
		fmt.Fprintf(out, "corner permutation: %d\n", cubie.CornerPermutationCoord(c))
		fmt.Fprintf(out, "edge permutation:   %d\n", cubie.EdgePermutationCoord(c))
	},
}
