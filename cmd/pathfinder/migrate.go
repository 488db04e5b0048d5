package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pathfinder/internal/config"
	"github.com/jonathan/career-pathfinder/internal/db"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if dbURL != "" {
				cfg.Database.URL = dbURL
			}

			database, err := db.Open(cmd.Context(), cfg.Database.URL)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := database.Migrate(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return err
		},
	}
	cmd.Flags().StringVar(&dbURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	return cmd
}
