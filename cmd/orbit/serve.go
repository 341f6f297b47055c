package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-orbit/internal/platform/tui"
	"github.com/vovakirdan/tui-orbit/internal/registry"
	"github.com/vovakirdan/tui-orbit/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagQR          bool
	flagQRHost      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Orbit SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker menu.
All users share one leaderboard, kept in memory until the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.orbit/host_key

Examples:
  orbit serve                           # Listen on :23234 with auto-generated key
  orbit serve --ssh :2222               # Listen on port 2222
  orbit serve --host-key ./my_host_key  # Use specific host key
  orbit serve --qr --qr-host play.example.com

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagQR, "qr", false, "Print a QR code of the connect command")
	serveCmd.Flags().StringVar(&flagQRHost, "qr-host", "localhost", "Host name players connect to, used in the printed command")
}

// connectCommand returns the ssh command line for players.
func connectCommand(addr, host string) (string, error) {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid --ssh address %q: %w", addr, err)
	}
	if port == "22" {
		return "ssh " + host, nil
	}
	return fmt.Sprintf("ssh -p %s %s", port, host), nil
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func serve() error {
	if err := applyGameFlags(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	connect, err := connectCommand(flagSSHAddr, flagQRHost)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("orbit-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Listening on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connect)
	if flagQR {
		qr, qrErr := qrcode.New(connect, qrcode.Medium)
		if qrErr != nil {
			logger.Warn("cannot render QR code", "err", qrErr)
		} else {
			fmt.Println(qr.ToSmallString(false))
		}
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		return err
	}
	logSummary(store)
	return nil
}

// logSummary reports the runs played while the server was up.
func logSummary(store *storage.Store) {
	if store == nil {
		return
	}
	all, err := store.GetAllGamesStats()
	if err != nil {
		logger.Warn("cannot read leaderboard", "err", err)
		return
	}
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			continue
		}
		logger.Info("mode summary",
			"mode", g.ID,
			"runs", st.GamesCount,
			"best", st.HighScore,
			"avg", fmt.Sprintf("%.1f", st.AvgScore),
			"play_time", st.PlayTime.Round(time.Second),
		)
	}
}
