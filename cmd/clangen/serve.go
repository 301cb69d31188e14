package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clangen/internal/app"
	"github.com/vovakirdan/tui-clangen/internal/config"
	"github.com/vovakirdan/tui-clangen/internal/game"
	"github.com/vovakirdan/tui-clangen/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the clangen SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own game. Saved clans live in the server's
database and are shared by every player. Discord presence is always off.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.clangen/host_key

Examples:
  clangen serve                           # Listen on :23234 with auto-generated key
  clangen serve --ssh :2222               # Listen on port 2222
  clangen serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger, logCloser := setupLogging()
	defer logCloser.Close()

	settings, _ := loadSettings(cmd, logger)
	settings.DiscordPresence = false

	store, clans := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, sessionHandler(clans, settings, logger), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting clangen SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// sessionHandler plays one game per SSH session. Sessions never exit the
// process and a crash in one session only ends that session.
func sessionHandler(clans game.ClanStore, settings config.Settings, logger *log.Logger) tui.SessionHandler {
	return func(ctx context.Context, d *tui.Display, sess tui.Session) {
		sessionLogger := logger.With("user", sess.User)
		defer func() {
			if r := recover(); r != nil {
				sessionLogger.Error("session crashed", "panic", r)
				d.Teardown()
			}
		}()

		a := app.New(app.Options{
			Display:  d,
			Store:    clans,
			Settings: settings,
			Seed:     flagSeed,
			Version:  versionLabel(),
			Width:    sess.Width,
			Height:   sess.Height,
			Logger:   sessionLogger,
		})
		if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			sessionLogger.Error("session ended with error", "error", err)
		}
	}
}
