package cli

import (
	"github.com/andy/gigpost/internal/tui"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Launch the post-a-project wizard",
	Long: `Launch the interactive wizard. If unsubmitted drafts exist you are
offered the choice to resume one or start fresh.`,
	RunE: launchWizard,
}

func launchWizard(cmd *cobra.Command, args []string) error {
	return tui.Run(appInstance)
}
