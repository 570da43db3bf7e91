// hexblocks plays a hexagonal block-placement puzzle with pluggable move
// algorithms.
//
// Usage:
//
//	hexblocks list                  - List available algorithms
//	hexblocks pieces                - Show the piece catalog
//	hexblocks evaluate              - Pick a move for a given board and queue
//	hexblocks autoplay [algorithm]  - Play whole games and record the runs
//	hexblocks watch [algorithm]     - Watch an algorithm play in the terminal
//	hexblocks menu                  - Pick an algorithm interactively and watch it
//	hexblocks scores [algorithm]    - Show recorded runs
//	hexblocks serve                 - Start SSH server for remote spectators
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.hexblocks/runs.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--plain              - No colors, ASCII glyphs
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import algorithms to register them
	_ "github.com/vovakirdan/hexblocks/internal/algos"

	"github.com/vovakirdan/hexblocks/internal/config"
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/render"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagPlain    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexblocks",
	Short: "Hexblocks - hexagonal block puzzle with move algorithms",
	Long: `Hexblocks places pieces of up to seven cells on a hexagonal board.
Full lines along any of the three axes are cleared. Algorithms pick
the moves; you can run them in batches, watch them or ask for a
single decision.

Available commands:
  list      - Show all available algorithms
  pieces    - Show the piece catalog
  evaluate  - Pick a move for a board and a queue
  autoplay  - Play whole games and record the runs
  watch     - Watch an algorithm play
  menu      - Interactive algorithm picker
  scores    - View recorded runs
  serve     - Start SSH server for spectators

Examples:
  hexblocks list
  hexblocks evaluate --radius 3 --queue 8,28,127
  hexblocks autoplay nrsearch --games 10
  hexblocks watch nrminimax --rate 8
  hexblocks scores
  hexblocks serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default: storage.path from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Plain output without colors")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the stderr logger used by every command.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexblocks",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads and validates the configuration, applying the difficulty
// preset and radius override when given.
func loadConfig(difficulty string, radius int) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if radius > 0 {
		cfg.Board.Radius = radius
	}
	return cfg, cfg.Validate()
}

// seed returns the --seed flag, or the current time when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// dbPath returns the --db flag, or the configured storage path.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}

// renderOptions picks styled output for terminals unless --plain is set.
func renderOptions() render.Options {
	return render.Options{Plain: flagPlain || !term.IsTerminal(int(os.Stdout.Fd()))}
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a
// terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig is shorthand for loading the config and converting it with
// the current seed.
func runtimeConfig(difficulty string, radius int) (config.Config, core.RuntimeConfig) {
	cfg, err := loadConfig(difficulty, radius)
	if err != nil {
		fail("%v", err)
	}
	return cfg, cfg.Runtime(seed())
}
