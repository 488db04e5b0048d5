package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const (
	industryStep = 0.03
	industryCap  = 0.08
)

// fieldAffinity maps a user's current field to the interest tags careers in adjacent fields carry.
// Every field has four tags.
var fieldAffinity = map[string][]string{
	"software":   {"technology", "data", "security", "design"},
	"it":         {"technology", "security", "data", "business"},
	"data":       {"data", "technology", "science", "business"},
	"design":     {"design", "creative", "technology", "writing"},
	"marketing":  {"business", "creative", "writing", "data"},
	"sales":      {"business", "finance", "creative", "social-impact"},
	"finance":    {"finance", "business", "data", "technology"},
	"healthcare": {"healthcare", "science", "data", "social-impact"},
	"education":  {"education", "writing", "social-impact", "design"},
	"science":    {"science", "data", "healthcare", "environment"},
	"media":      {"creative", "writing", "gaming", "business"},
	"retail":     {"business", "creative", "social-impact", "data"},
	"government": {"social-impact", "security", "data", "business"},
}

// industryBonus rewards careers adjacent to the user's current field. Fields outside the table,
// including "student" and "none", get no bonus.
func industryBonus(field string, c types.Career) float64 {
	tags, ok := fieldAffinity[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		return 0
	}

	haystack := make([]string, 0, len(c.RelatedInterests)+1)
	for _, in := range c.RelatedInterests {
		haystack = append(haystack, strings.ToLower(in))
	}
	haystack = append(haystack, strings.ToLower(c.Category))

	overlap := 0
	for _, tag := range tags {
		for _, h := range haystack {
			if strings.Contains(h, tag) {
				overlap++
				break
			}
		}
	}

	return math.Min(float64(overlap)*industryStep, industryCap)
}
