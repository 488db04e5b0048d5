package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-pathfinder/internal/config"
	"github.com/jonathan/career-pathfinder/internal/market"
	"github.com/jonathan/career-pathfinder/internal/observability"
	"github.com/jonathan/career-pathfinder/internal/ranking"
	"github.com/jonathan/career-pathfinder/internal/skills"
	"github.com/jonathan/career-pathfinder/internal/types"
)

type recommendOptions struct {
	skills     []string
	interests  []string
	field      string
	background string
	catalogDir string
	outFile    string
	format     string
	market     bool
}

func newRecommendCmd(configPath *string) *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend careers for a skill and interest profile",
		Long:  "Score every catalog career against the given skills and interests and print the best matches with explanations.",
		Example: `  pathfinder recommend --skills python,sql --interests data
  pathfinder recommend --skills "graphic design" --interests creative --field design --format text`,
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
			scorer := ranking.NewScorer(cat, skills.NewNormalizer(cat.Skills(), cat.Synonyms()))

			resp, err := scorer.Score(types.RecommendRequest{
				Skills:       opts.skills,
				Interests:    opts.interests,
				Background:   opts.background,
				CurrentField: opts.field,
			})
			if err != nil {
				return err
			}

			if strings.EqualFold(opts.format, "text") && opts.outFile == "" {
				p := observability.NewPrinter(cmd.OutOrStdout())
				p.PrintRecommendations(resp)
				if opts.market && len(resp.Recommendations) > 0 {
					best := resp.Recommendations[0]
					if career, ok := cat.Career(best.CareerID); ok {
						p.PrintMarketInsight(best.Title, market.Insight(career))
					}
				}
				return nil
			}
			return writeOutput(cmd.OutOrStdout(), opts.outFile, resp)
		},
	}

	cmd.Flags().StringSliceVar(&opts.skills, "skills", nil, "Comma-separated skills (free text, normalized against the catalog)")
	cmd.Flags().StringSliceVar(&opts.interests, "interests", nil, "Comma-separated interest ids")
	cmd.Flags().StringVar(&opts.field, "field", "", "Current field, used for the industry affinity bonus")
	cmd.Flags().StringVar(&opts.background, "background", "", "Free-text background (informational)")
	cmd.Flags().StringVar(&opts.catalogDir, "catalog-dir", "", "Catalog directory (overrides CATALOG_DIR)")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write JSON to this file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", "json", "Output format: json or text")
	cmd.Flags().BoolVar(&opts.market, "market", false, "With --format text, also print market figures for the top match")
	_ = cmd.MarkFlagRequired("skills")
	_ = cmd.MarkFlagRequired("interests")
	return cmd
}
