package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zboyco/toast-mcp/internal/config"
)

var (
	configAppID    string
	configIconPath string
	configTitle    string
	configLogLevel string
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configAppID, "app-id", "", "application user model id notifications are attributed to")
	configCmd.Flags().StringVar(&configIconPath, "icon", "", "absolute path of the toast icon (empty restores the built-in icon)")
	configCmd.Flags().StringVar(&configTitle, "title", "", "title used when show_notification gets only a body")
	configCmd.Flags().StringVar(&configLogLevel, "level", "", "default log level")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update persistent settings",
	Long: `Without flags, print the current settings. With flags, update the given
fields and save the settings file.`,
	Args: cobra.NoArgs,
	// Replaces the root hook: the file being repaired may not validate.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if logLevelFlag != "" {
			parsed, err := config.Settings{LogLevel: logLevelFlag}.Level()
			if err != nil {
				return err
			}
			level = parsed
		}
		logger = newLogger(os.Stderr, level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("app-id") && !flags.Changed("icon") &&
			!flags.Changed("title") && !flags.Changed("level") {
			return showCurrentConfig(cmd)
		}

		current, err := config.Read()
		if err != nil && !errors.Is(err, config.ErrNotConfigured) {
			return err
		}
		if errors.Is(err, config.ErrNotConfigured) {
			current = config.Default()
		}

		if flags.Changed("app-id") {
			current.AppID = configAppID
		}
		if flags.Changed("icon") {
			current.IconPath = configIconPath
		}
		if flags.Changed("title") {
			current.DefaultTitle = configTitle
		}
		if flags.Changed("level") {
			current.LogLevel = configLogLevel
		}

		if err := config.Save(current); err != nil {
			return err
		}

		if cfgPath, err := config.Path(); err == nil {
			logger.Debug().Str("path", cfgPath).Msg("config saved")
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Settings saved.")
		return nil
	},
}

func showCurrentConfig(cmd *cobra.Command) error {
	current, err := config.Read()
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			return fmt.Errorf("no settings saved yet, run `%s config --app-id ...`", rootCmd.Name())
		}
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("format config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
