// Package types provides type definitions for structured data used throughout the career-pathfinder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RecommendRequest is the input profile for career scoring.
type RecommendRequest struct {
	Skills       []string `json:"skills" validate:"required,min=1,dive,required"`
	Interests    []string `json:"interests" validate:"required,min=1,dive,required"`
	Background   string   `json:"background,omitempty"`
	CurrentField string   `json:"currentField,omitempty"`
}

// Recommendation is a scored career for one request. It is never persisted.
type Recommendation struct {
	CareerID         string        `json:"careerId"`
	Title            string        `json:"title"`
	Category         string        `json:"category"`
	SalaryRange      SalaryRange   `json:"salaryRange"`
	GrowthOutlook    GrowthOutlook `json:"growthOutlook"`
	MatchScore       int           `json:"matchScore"`
	MatchedSkills    []string      `json:"matchedSkills"`
	MissingSkills    []string      `json:"missingSkills"`
	MatchedInterests []string      `json:"matchedInterests"`
	Explanation      string        `json:"explanation"`
}

// RecommendResponse wraps the ranked list.
type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
