package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zboyco/toast-mcp/internal/identity"
	"github.com/zboyco/toast-mcp/internal/mcp"
	"github.com/zboyco/toast-mcp/internal/osnotify"
	"github.com/zboyco/toast-mcp/internal/toast"
)

func init() {
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(greetCmd)
}

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Print the package family name of this process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := identity.NewResolver(logger).Resolve(cmd.Context())
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not packaged")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Package Family Name: %s\n", id.FamilyName)
		return nil
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify <text> [body]",
	Short: "Show a single toast notification",
	Long: `Show one toast notification. With one argument the toast has a single
line; with two the first is the title and the second the body.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := osnotify.New(osnotify.Options{
			AppID:    settings.AppID,
			IconPath: settings.IconPath,
		})
		if err := toast.NewBuilder(host, logger).BuildAndShow(cmd.Context(), args...); err != nil {
			return fmt.Errorf("showing notification: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Notification shown.")
		return nil
	},
}

var greetCmd = &cobra.Command{
	Use:   "greet <name>",
	Short: "Print a greeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), mcp.Greeting(args[0]))
		return nil
	},
}
