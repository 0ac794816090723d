package cli

import (
	"github.com/andy/gigpost/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "gigpost",
	Short: "Post a project to the expert marketplace from your terminal",
	Long: `Gigpost walks you through posting a project: scope, details, expertise
and budget, timeline, and (for new accounts) your details and billing.

By default, running gigpost without arguments launches the interactive wizard.
Use subcommands for draft management, login, and configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the wizard
		return launchWizard(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(draftsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(configCmd)
}
