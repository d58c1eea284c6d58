// Package clicubie is the cobra command tree behind cmd/cubie.
// Grounded on the teacher's internal/cli/root.go (command registration
// pattern) and solve.go/verify.go (flag handling, os.Exit on failure,
// headless-friendly stdout-only output), trimmed to this module's
// coordinates/verify/serve surface.
package clicubie

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:     "cubie",
	Short:   "Cubie-level coordinates and validity for a 3x3x3 Rubik's Cube",
	Version: "1.0.0",
}

// Execute runs the command tree; cmd/cubie's main calls this directly.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(coordsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
