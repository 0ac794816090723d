package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Manage saved project drafts",
	Long:  `List and delete unsubmitted project drafts saved by the wizard.`,
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List unsubmitted drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		drafts, err := appInstance.DraftService.ListUnsubmitted(ctx)
		if err != nil {
			return fmt.Errorf("failed to list drafts: %w", err)
		}

		if len(drafts) == 0 {
			fmt.Println("No saved drafts")
			return nil
		}

		// Print table header
		fmt.Printf("%-5s %-40s %-15s %-6s %-20s\n", "ID", "Title", "Category", "Step", "Updated")
		fmt.Println("------------------------------------------------------------------------------------------")

		for _, d := range drafts {
			title := d.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Printf("%-5d %-40s %-15s %-6d %-20s\n",
				d.ID,
				truncate(title, 40),
				d.Category,
				d.Step,
				d.UpdatedAt.Format("2006-01-02 15:04"),
			)
		}

		fmt.Printf("\nTotal: %d draft(s)\n", len(drafts))
		return nil
	},
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid draft id: %s", args[0])
		}

		draft, err := appInstance.DraftService.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}

		title := draft.Title
		if title == "" {
			title = "(untitled)"
		}
		if !confirmPrompt(fmt.Sprintf("Delete draft %d (%s)?", id, title)) {
			fmt.Println("Cancelled")
			return nil
		}

		if err := appInstance.DraftService.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}

		fmt.Printf("Deleted draft %d\n", id)
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func init() {
	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsDeleteCmd)
}
