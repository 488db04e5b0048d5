// Package main provides the entry point for the Career Pathfinder API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Commands are built fresh so tests can run them in-process.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pathfinder",
		Short:         "Career Pathfinder API server and CLI",
		Long:          "Career Pathfinder recommends careers from a skill and interest profile and builds 12-week learning roadmaps toward them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: ./config.yaml or ./configs/config.yaml)")

	root.AddCommand(
		newServeCmd(&configPath),
		newRecommendCmd(&configPath),
		newRoadmapCmd(&configPath),
		newMigrateCmd(&configPath),
		newValidateCatalogCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
