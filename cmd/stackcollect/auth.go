package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"stackcollect/pkg/auth"
)

// authCmd represents the auth command group
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Stack Exchange API key",
	Long: `Manage the optional Stack Exchange API key.

The key is stored in the system keychain. A STACK_EXCHANGE_API_KEY
environment variable (or .env entry) overrides the stored key for a
single run. Without a key the API allows 300 anonymous requests per day.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store the API key in the system keychain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.NewManager().Set(args[0]); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}
		fmt.Println("API key stored")
		return nil
	},
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show where the API key is coming from",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := auth.NewManager().Resolve()
		if err != nil {
			if errors.Is(err, auth.ErrKeyNotFound) {
				fmt.Println("no API key configured (keyless mode, 300 requests/day)")
				return nil
			}
			return err
		}
		fmt.Printf("API key configured (ends in ...%s)\n", tail(key, 4))
		return nil
	},
}

var authRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the API key from the system keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.NewManager().Delete(); err != nil {
			return fmt.Errorf("failed to remove API key: %w", err)
		}
		fmt.Println("API key removed")
		return nil
	},
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authShowCmd)
	authCmd.AddCommand(authRemoveCmd)
	rootCmd.AddCommand(authCmd)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
