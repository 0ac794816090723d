package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and update configuration",
	Long:  `Show or set values in ~/.config/gigpost/config.yaml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appInstance.Config

		fmt.Printf("api.base_url          %s\n", cfg.API.BaseURL)
		fmt.Printf("api.timeout_seconds   %d\n", cfg.API.TimeoutSeconds)
		fmt.Printf("database.path         %s\n", cfg.Database.Path)
		fmt.Printf("user.first_name       %s\n", cfg.User.FirstName)
		fmt.Printf("user.last_name        %s\n", cfg.User.LastName)
		fmt.Printf("user.email            %s\n", cfg.User.Email)
		fmt.Printf("user.phone            %s\n", cfg.User.Phone)
		fmt.Printf("user.country          %s\n", cfg.User.Country)

		if appInstance.Session.IsAuthenticated() {
			email := ""
			if appInstance.Session.User != nil {
				email = appInstance.Session.User.Email
			}
			fmt.Printf("\nLogged in as %s\n", email)
		} else {
			fmt.Println("\nNot logged in")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the file.

Keys: api.base_url, api.timeout_seconds, database.path,
user.first_name, user.last_name, user.email, user.phone, user.country`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		cfg := appInstance.Config

		switch key {
		case "api.base_url":
			cfg.API.BaseURL = value
		case "api.timeout_seconds":
			secs, err := strconv.Atoi(value)
			if err != nil || secs <= 0 {
				return fmt.Errorf("invalid timeout: %s", value)
			}
			cfg.API.TimeoutSeconds = secs
		case "database.path":
			cfg.Database.Path = value
		case "user.first_name":
			cfg.User.FirstName = value
		case "user.last_name":
			cfg.User.LastName = value
		case "user.email":
			cfg.User.Email = value
		case "user.phone":
			cfg.User.Phone = value
		case "user.country":
			cfg.User.Country = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := appInstance.SaveConfig(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
