package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zboyco/toast-mcp/internal/config"
	"github.com/zboyco/toast-mcp/internal/identity"
	"github.com/zboyco/toast-mcp/internal/mcp"
	"github.com/zboyco/toast-mcp/internal/osnotify"
	"github.com/zboyco/toast-mcp/internal/toast"
)

var (
	logLevelFlag string

	settings config.Settings
	logger   = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
}

var rootCmd = &cobra.Command{
	Use:   "toast-mcp",
	Short: "Show toast notifications over MCP",
	Long: `toast-mcp serves an MCP stdio server exposing greet, get_package_family_name
and show_notification. Run without a subcommand to start the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadOrDefault()
		if err != nil {
			return fmt.Errorf("%w (fix it with `%s config`)", err, cmd.Root().Name())
		}
		if logLevelFlag != "" {
			loaded.LogLevel = logLevelFlag
		}
		level, err := loaded.Level()
		if err != nil {
			return err
		}

		settings = loaded
		logger = newLogger(os.Stderr, level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath, err := config.Path(); err == nil {
			logger.Debug().Str("path", cfgPath).Msg("config location")
		}

		host := osnotify.New(osnotify.Options{
			AppID:    settings.AppID,
			IconPath: settings.IconPath,
		})
		logger.Info().
			Str("app_id", settings.AppID).
			Bool("notifications_supported", host.Supported()).
			Msg("toast-mcp starting, waiting for an MCP client on stdio")

		server := mcp.NewServer(
			settings,
			toast.NewBuilder(host, logger),
			identity.NewResolver(logger),
			logger,
		)
		return server.Serve()
	},
}

// newLogger writes to w, which must not be stdout: stdout carries the MCP
// transport.
func newLogger(w *os.File, level zerolog.Level) zerolog.Logger {
	var out io.Writer = w
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
