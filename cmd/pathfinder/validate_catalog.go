package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCatalogCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate-catalog",
		Short: "Check catalog datasets against their schemas and integrity rules",
		Long:  "Load careers.json, skills.json, interests.json and resources.json from --dir (or the embedded catalog), validate each against its JSON Schema, and check cross-references.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cmd.Context(), dir)
			if err != nil {
				return err
			}

			source := dir
			if source == "" {
				source = "embedded catalog"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d careers, %d skills, %d interests\n",
				source, len(cat.Careers()), len(cat.Skills()), len(cat.Interests()))
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory holding the catalog JSON files (default: embedded catalog)")
	return cmd
}
