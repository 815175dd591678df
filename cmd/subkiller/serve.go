package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/subkiller/internal/config"
	"github.com/vovakirdan/subkiller/internal/platform/tui"
	"github.com/vovakirdan/subkiller/internal/platform/web"
	"github.com/vovakirdan/subkiller/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Submarine Killer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Finished games go to a ledger
shared by all connections and kept in memory until the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.subkiller/host_key

Examples:
  subkiller serve                           # Listen on :23234 with auto-generated key
  subkiller serve --ssh :2222               # Listen on port 2222
  subkiller serve --http :8080              # Also serve the leaderboard page
  subkiller serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP status address (host:port), disabled if empty")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("subkiller-ssh", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open results ledger", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	running := 1
	go func() { errCh <- server.ListenAndServe(ctx) }()

	if flagHTTPAddr != "" {
		running++
		httpServer := web.NewServer(flagHTTPAddr, store, logger.WithPrefix("subkiller-http"))
		go func() { errCh <- httpServer.ListenAndServe(ctx) }()
	}

	fmt.Printf("Starting Submarine Killer SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	var firstErr error
	for i := 0; i < running; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}

	if firstErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", firstErr)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
