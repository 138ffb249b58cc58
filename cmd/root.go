// Package cmd holds the command-line entry points of the registration service.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "Account registration service",
	Long: `signup serves a registration page that validates submitted credentials,
rejects duplicate emails and usernames, and stores new accounts with a
bcrypt password hash.

Configuration is read from the environment (APP_PORT, DATABASE_DRIVER,
DATABASE_DSN, BCRYPT_COST, LOGIN_URL, RABBITMQ_URL, LOG_LEVEL, ...).`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
