package main

import (
	"fmt"
	"os"

	"github.com/behrlich/cubie/internal/clicubie"
)

func main() {
	if err := clicubie.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
