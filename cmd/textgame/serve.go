package main

import (
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-textgame/internal/platform/tui"
	"github.com/vovakirdan/tui-textgame/internal/story"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagVerbose     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the textgame SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own fresh play-through. When --db is set,
finished runs are journaled with the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.textgame/host_key

Examples:
  textgame serve                           # Listen on :23234 with auto-generated key
  textgame serve --ssh :2222               # Listen on port 2222
  textgame serve --host-key ./my_host_key  # Use specific host key
  textgame serve --db ./runs.db            # Journal finished runs

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 10, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log per-session details")
}

func runServe(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Runtime = gameCfg.Runtime(0, 0)

	serverLog := logger.WithPrefix("textgame-ssh")
	serverLog.SetReportTimestamp(true)
	if flagVerbose {
		serverLog.SetLevel(log.DebugLevel)
	}

	server, err := tui.NewSSHServer(cfg, story.Default(), serverLog)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	serverLog.Info("connect with ssh", "command", "ssh localhost -p "+portOf(cfg.Address))

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
