package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexblocks/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hexblocks SSH server",
	Long: `Start an SSH server that lets visitors watch the algorithms play.

Each SSH connection gets its own session with an algorithm picker.
Finished games are recorded in the server's run database, so every
visitor sees the same history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hexblocks/host_key

Examples:
  hexblocks serve                           # Listen on :23235 with auto-generated key
  hexblocks serve --ssh :2222               # Listen on port 2222
  hexblocks serve --host-key ./my_host_key  # Use specific host key
  hexblocks serve --db ./runs.db            # Use specific database

Visitors can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagRate, "rate", 0, "Initial moves per second of every viewer")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal")
	serveCmd.Flags().IntVar(&flagRadius, "radius", 0, "Board radius (default: board.radius from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, rt := runtimeConfig(flagDifficulty, flagRadius)

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = dbPath(cfg)
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Runtime = rt
	srvCfg.Rate = flagRate
	srvCfg.Logger = newLogger()

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting hexblocks SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fail("server: %v", err)
	}
}
