// Package types provides type definitions for structured data used throughout the career-pathfinder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resource is a single learning resource. URL, Hours and Free are optional in the catalog;
// consumers must go through the roadmap package's URL fallback before presenting one.
type Resource struct {
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Type     string `json:"type,omitempty"` // course, docs, book, video, article
	Provider string `json:"provider,omitempty"`
	Hours    *int   `json:"hours,omitempty"`
	Free     *bool  `json:"free,omitempty"`
}

// HoursOr returns the resource's hour estimate, or def when the catalog has none.
func (r Resource) HoursOr(def int) int {
	if r.Hours == nil || *r.Hours <= 0 {
		return def
	}
	return *r.Hours
}

// IsFree reports whether the resource is free. Resources without an explicit flag count as free.
func (r Resource) IsFree() bool {
	return r.Free == nil || *r.Free
}

// ProjectIdea is a portfolio project suggestion for a skill.
type ProjectIdea struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// SkillResources is the per-skill learning bundle used by roadmap synthesis.
type SkillResources struct {
	Label                 string        `json:"label,omitempty"`
	BeginnerResources     []Resource    `json:"beginnerResources,omitempty"`
	IntermediateResources []Resource    `json:"intermediateResources,omitempty"`
	Exercises             []string      `json:"exercises,omitempty"`
	ProjectIdeas          []ProjectIdea `json:"projectIdeas,omitempty"`
	WeeklyMilestones      []string      `json:"weeklyMilestones,omitempty"`
}

// ResourceCatalog is the on-disk shape of the resource dataset.
type ResourceCatalog struct {
	Skills           map[string]SkillResources `json:"skills"`
	DefaultResources SkillResources            `json:"defaultResources"`
}
