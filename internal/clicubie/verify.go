package clicubie

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubie/internal/facelet"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <facelets>",
	Short: "Parse a 54-character facelet string and report the validity of the cube it names",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fc, err := facelet.ParseFacelets(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing facelets: %v\n", err)
			os.Exit(1)
		}

		c, err := facelet.ToCubie(fc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting facelets: %v\n", err)
			os.Exit(1)
		}

		errs := c.Validate()
		if len(errs) == 0 {
			fmt.Println("valid")
			return
		}

		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	},
}
