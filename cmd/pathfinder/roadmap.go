package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pathfinder/internal/config"
	"github.com/jonathan/career-pathfinder/internal/observability"
	"github.com/jonathan/career-pathfinder/internal/roadmap"
	"github.com/jonathan/career-pathfinder/internal/skills"
)

type roadmapOptions struct {
	careerID   string
	skills     []string
	hours      float64
	catalogDir string
	outFile    string
	format     string
}

func newRoadmapCmd(configPath *string) *cobra.Command {
	var opts roadmapOptions

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Build a 12-week learning roadmap toward a career",
		Example: `  pathfinder roadmap --career data-scientist --skills python,sql --hours 8
  pathfinder roadmap --career ux-researcher --format text`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			dir := cfg.Catalog.Dir
			if opts.catalogDir != "" {
				dir = opts.catalogDir
			}

			cat, err := loadCatalog(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			normalizer := skills.NewNormalizer(cat.Skills(), cat.Synonyms())

			plan, err := roadmap.NewSynthesizer(cat).Synthesize(opts.careerID, normalizer.NormalizeAll(opts.skills), opts.hours)
			if err != nil {
				return err
			}

			if strings.EqualFold(opts.format, "text") && opts.outFile == "" {
				observability.NewPrinter(cmd.OutOrStdout()).PrintRoadmap(plan)
				return nil
			}
			return writeOutput(cmd.OutOrStdout(), opts.outFile, plan)
		},
	}

	cmd.Flags().StringVar(&opts.careerID, "career", "", "Career id from the catalog")
	cmd.Flags().StringSliceVar(&opts.skills, "skills", nil, "Comma-separated skills you already have")
	cmd.Flags().Float64Var(&opts.hours, "hours", roadmap.DefaultWeeklyHours, "Hours available per week")
	cmd.Flags().StringVar(&opts.catalogDir, "catalog-dir", "", "Catalog directory (overrides CATALOG_DIR)")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write JSON to this file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", "json", "Output format: json or text")
	_ = cmd.MarkFlagRequired("career")
	return cmd
}
