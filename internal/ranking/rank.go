package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const (
	// MinMatchScore is the lowest score a career needs to be recommended.
	MinMatchScore = 10
	// MaxRecommendations caps the ranked list.
	MaxRecommendations = 6
)

// LabelSource resolves display labels for explanations.
type LabelSource interface {
	SkillLabel(id string) string
	InterestLabel(id string) string
}

// CareerSource supplies the careers to score along with their labels.
type CareerSource interface {
	LabelSource
	Careers() []types.Career
}

// SkillNormalizer maps raw skill strings onto canonical ids.
type SkillNormalizer interface {
	NormalizeAll(terms []string) []string
}

// Scorer ranks catalog careers for a profile. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	careers    CareerSource
	normalizer SkillNormalizer
}

// NewScorer creates a Scorer over the given catalog and normalizer.
func NewScorer(careers CareerSource, normalizer SkillNormalizer) *Scorer {
	return &Scorer{careers: careers, normalizer: normalizer}
}

// Score normalizes the request's skills, scores every career and returns at most
// MaxRecommendations careers scoring at least MinMatchScore, best first.
// Background is accepted for API compatibility and does not affect scoring.
func (s *Scorer) Score(req types.RecommendRequest) (*types.RecommendResponse, error) {
	skills := nonBlank(req.Skills)
	if len(skills) == 0 {
		return nil, &InvalidInputError{Field: "skills", Message: "at least one skill is required"}
	}
	interestList := nonBlank(req.Interests)
	if len(interestList) == 0 {
		return nil, &InvalidInputError{Field: "interests", Message: "at least one interest is required"}
	}

	userSkills := make(map[string]bool)
	for _, id := range s.normalizer.NormalizeAll(skills) {
		userSkills[id] = true
	}
	interests := make(map[string]bool, len(interestList))
	for _, in := range interestList {
		interests[strings.ToLower(in)] = true
	}

	recs := make([]types.Recommendation, 0)
	for _, c := range s.careers.Careers() {
		total, breakdown, matchedInterests := scoreCareer(c, userSkills, interests, req.CurrentField)
		score := int(math.Round(total * 100))
		if score < MinMatchScore {
			continue
		}

		recs = append(recs, types.Recommendation{
			CareerID:         c.ID,
			Title:            c.Title,
			Category:         c.Category,
			SalaryRange:      c.SalaryRange,
			GrowthOutlook:    c.GrowthOutlook,
			MatchScore:       score,
			MatchedSkills:    breakdown.matched,
			MissingSkills:    breakdown.missing,
			MatchedInterests: matchedInterests,
			Explanation:      generateExplanation(c, breakdown.matched, breakdown.missing, matchedInterests, s.careers),
		})
	}

	// Stable so equal scores keep catalog order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	return &types.RecommendResponse{Recommendations: recs}, nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
