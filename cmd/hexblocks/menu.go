package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/platform/tui"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start interactive algorithm picker",
	Long: `Opens an interactive menu to pick an algorithm and watch it play.

Controls:
  Up/Down or W/S or K/J  - Navigate
  Enter/Space            - Select algorithm
  Esc/B                  - Back to the menu while watching
  Q/Ctrl+C               - Quit`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().IntVar(&flagRate, "rate", 0, "Moves per second")
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg, rt := runtimeConfig("", 0)

	// Open run storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		newLogger().Warn("could not open run database, runs will not be saved", "error", err)
		store = nil
	}

	width, height := terminalSize()
	runErr := tui.RunSession(store, rt, flagRate, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
