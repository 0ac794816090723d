package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/andy/gigpost/internal/api"
	"github.com/andy/gigpost/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the marketplace",
	Long: `Obtain a session token. Logged-in users get the shorter wizard:
no account or billing steps.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var email string
		if len(args) == 1 {
			email = args[0]
		} else {
			fmt.Print("Email: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		sess, err := appInstance.API.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("login failed: %s", api.UserMessage(err))
		}

		if err := appInstance.SetSession(*sess); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		name := email
		if sess.User != nil && sess.User.Name != "" {
			name = sess.User.Name
		}
		fmt.Printf("Logged in as %s\n", name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appInstance.Session.IsAuthenticated() {
			fmt.Println("Not logged in")
			return nil
		}

		if err := appInstance.SetSession(domain.Session{}); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		fmt.Println("Logged out")
		return nil
	},
}
