// Package types provides type definitions for structured data used throughout the career-pathfinder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GrowthOutlook is the catalog's coarse job-growth rating for a career.
type GrowthOutlook string

const (
	GrowthLow      GrowthOutlook = "Low"
	GrowthModerate GrowthOutlook = "Moderate"
	GrowthHigh     GrowthOutlook = "High"
	GrowthVeryHigh GrowthOutlook = "Very High"
)

// Valid reports whether g is one of the known outlook values.
func (g GrowthOutlook) Valid() bool {
	switch g {
	case GrowthLow, GrowthModerate, GrowthHigh, GrowthVeryHigh:
		return true
	}
	return false
}

// SalaryRange is an annual salary band in USD.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Midpoint returns the middle of the band.
func (s SalaryRange) Midpoint() int {
	return (s.Min + s.Max) / 2
}

// Career is a read-only catalog entry.
// RequiredSkills is ordered: earlier entries are more foundational and weigh more in scoring.
type Career struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	DayInLife        string            `json:"dayInLife,omitempty"`
	SalaryRange      SalaryRange       `json:"salaryRange"`
	GrowthOutlook    GrowthOutlook     `json:"growthOutlook"`
	RequiredSkills   []string          `json:"requiredSkills"`
	RelatedInterests []string          `json:"relatedInterests"`
	WhyNonObvious    string            `json:"whyNonObvious,omitempty"`
	SkillTransfers   map[string]string `json:"skillTransfers,omitempty"`
	EntryPaths       []string          `json:"entryPaths,omitempty"`
}

// Skill is a catalog skill with its canonical id and display label.
type Skill struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

// Interest is a catalog interest area.
type Interest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
