// Package ranking scores catalog careers against a user's skills and interests.
package ranking

import (
	"math"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// Scoring component weights and caps
const (
	skillScoreWeight    = 0.40
	interestScoreWeight = 0.25
	coverageBonusWeight = 0.15

	absoluteSkillStep = 0.07
	absoluteSkillCap  = 0.35

	// positionStep is the extra weight each earlier (more foundational) required skill receives.
	positionStep = 0.3
)

// positionalWeight returns the weight of the required skill at index i of n.
func positionalWeight(i, n int) float64 {
	return 1 + float64(n-1-i)*positionStep
}

// skillBreakdown is the per-career result of matching user skills against required skills.
type skillBreakdown struct {
	matched []string
	missing []string
	score   float64 // matchedWeight / totalWeight
}

// computeSkillScore partitions required skills into matched and missing, keeping catalog order,
// and returns the positional-weight ratio of the matched ones.
func computeSkillScore(required []string, userSkills map[string]bool) skillBreakdown {
	n := len(required)
	b := skillBreakdown{
		matched: make([]string, 0, n),
		missing: make([]string, 0, n),
	}

	totalWeight, matchedWeight := 0.0, 0.0
	for i, id := range required {
		w := positionalWeight(i, n)
		totalWeight += w
		if userSkills[id] {
			matchedWeight += w
			b.matched = append(b.matched, id)
		} else {
			b.missing = append(b.missing, id)
		}
	}

	if totalWeight > 0 {
		b.score = matchedWeight / totalWeight
	}
	return b
}

// computeInterestScore returns the career's related interests the user selected, in catalog
// order, and the matched fraction.
func computeInterestScore(related []string, interests map[string]bool) ([]string, float64) {
	matched := make([]string, 0, len(related))
	for _, id := range related {
		if interests[id] {
			matched = append(matched, id)
		}
	}
	if len(related) == 0 {
		return matched, 0
	}
	return matched, float64(len(matched)) / float64(len(related))
}

func coverageBonus(matched, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(matched) / float64(n) * coverageBonusWeight
}

func absoluteSkillBonus(matched int) float64 {
	return math.Min(float64(matched)*absoluteSkillStep, absoluteSkillCap)
}

// scoreCareer combines every component into a 0-1 total.
func scoreCareer(c types.Career, userSkills, interests map[string]bool, field string) (float64, skillBreakdown, []string) {
	skills := computeSkillScore(c.RequiredSkills, userSkills)
	matchedInterests, interestScore := computeInterestScore(c.RelatedInterests, interests)

	total := skills.score*skillScoreWeight +
		interestScore*interestScoreWeight +
		coverageBonus(len(skills.matched), len(c.RequiredSkills)) +
		absoluteSkillBonus(len(skills.matched)) +
		industryBonus(field, c)

	return math.Min(1, total), skills, matchedInterests
}
