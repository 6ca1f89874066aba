package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "newsdesk",
		Short: "News portal moderation backend",
	}

	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Starts API web server",
		Long: `Starts the REST API used by the admin console.
Configuration is read from the environment and an optional .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmdSeed := &cobra.Command{
		Use:   "seed",
		Short: "Replaces content with demo data",
		Long: `Removes every non-admin user and all news, communities, posts,
events and moderation reports, then inserts a small demo data set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context())
		},
	}

	var adminName, adminEmail, adminPassword string
	cmdCreateAdmin := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates the first admin account",
		Long: `Creates an active Admin account. Flags fall back to ADMIN_NAME, ADMIN_EMAIL
and ADMIN_PASSWORD. Nothing changes when the email already belongs to an admin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd.Context(), adminName, adminEmail, adminPassword)
		},
	}
	cmdCreateAdmin.Flags().StringVar(&adminName, "name", "", "full name of the admin")
	cmdCreateAdmin.Flags().StringVar(&adminEmail, "email", "", "login email of the admin")
	cmdCreateAdmin.Flags().StringVar(&adminPassword, "password", "", "login password of the admin")

	rootCmd.AddCommand(cmdServe, cmdSeed, cmdCreateAdmin)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
