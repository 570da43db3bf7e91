package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/config"
	"github.com/vovakirdan/hexblocks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available algorithms",
	Long:  `Shows a list of all algorithms registered in hexblocks.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	algs := registry.List()

	if len(algs) == 0 {
		fmt.Println("No algorithms available.")
		return
	}

	def := ""
	if cfg, err := config.Load(flagConfig); err == nil {
		def = cfg.Algorithm.Default
	}

	fmt.Println("Available algorithms:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range algs {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print algorithms
	for _, a := range algs {
		mark := ""
		if a.ID == def {
			mark = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, a.ID, a.Title, mark)
	}

	fmt.Println()
	fmt.Println("Run 'hexblocks watch <id>' to watch an algorithm play.")
}

// algorithmFromArgs creates the algorithm named by the first argument, or
// the configured default when there is none.
func algorithmFromArgs(args []string, cfg config.Config) registry.Algorithm {
	id := cfg.Algorithm.Default
	if len(args) > 0 {
		id = args[0]
	}

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'hexblocks list' to see available algorithms.")
		os.Exit(1)
	}

	alg, err := registry.Create(id)
	if err != nil {
		fail("creating algorithm: %v", err)
	}
	return alg
}
