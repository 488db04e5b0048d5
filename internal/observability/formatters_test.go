package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-pathfinder/internal/types"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(&types.RecommendResponse{Recommendations: []types.Recommendation{
		{
			CareerID:      "data-scientist",
			Title:         "Data Scientist",
			Category:      "Data",
			SalaryRange:   types.SalaryRange{Min: 95000, Max: 165000},
			GrowthOutlook: types.GrowthVeryHigh,
			MatchScore:    69,
			MatchedSkills: []string{"programming", "sql"},
			MissingSkills: []string{"statistics", "machine-learning", "data-visualization", "communication", "mathematics", "research"},
			Explanation:   "Your Programming and SQL experience covers the core of this role, and it lines up with your interest in Data.",
		},
		{CareerID: "data-analyst", Title: "Data Analyst", MatchScore: 40},
	}})
	output := buf.String()

	assert.Contains(t, output, "#1 Data Scientist")
	assert.Contains(t, output, "#2 Data Analyst")
	assert.Contains(t, output, "69%")
	assert.Contains(t, output, "$95000 - $165000")
	assert.Contains(t, output, "Very High")
	assert.Contains(t, output, "• sql")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "lines up with your interest")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)
	assert.Empty(t, buf.String())

	p.PrintRecommendations(&types.RecommendResponse{})
	assert.Contains(t, buf.String(), "No careers matched")
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.Roadmap{
		CareerID:      "ux-researcher",
		Title:         "UX Researcher: 12-Week Roadmap",
		WeeklyHours:   10,
		MissingSkills: []string{"research"},
		MatchedSkills: []string{"empathy"},
		Months: []types.Month{{
			Index: 1,
			Title: "Month 1: Foundations",
			Focus: "Research",
			Weeks: []types.Week{{
				Week:            1,
				FocusSkillLabel: "Research",
				IsMissing:       true,
				TotalHours:      5,
				Tip:             "Start small.",
				Tasks: []types.Task{
					{ID: "w0-learn", Title: "Learn: Research", EstimatedHours: 3, Done: true},
					{ID: "w0-milestone", Title: "Write a summary", EstimatedHours: 2},
				},
			}},
		}},
		Milestones:   []types.Milestone{{Week: 4, Title: "Foundation Complete"}},
		TopResources: []types.TopResource{{Resource: types.Resource{Title: "Just Enough Research"}, SkillLabel: "Research", IsFree: false}},
	})
	output := buf.String()

	assert.Contains(t, output, "UX RESEARCHER: 12-WEEK ROADMAP")
	assert.Contains(t, output, "Weekly hours: 10")
	assert.Contains(t, output, "Week 1: Research (new), 5h")
	assert.Contains(t, output, "[x] Learn: Research (3h)")
	assert.Contains(t, output, "[ ] Write a summary (2h)")
	assert.Contains(t, output, "Tip: Start small.")
	assert.Contains(t, output, "Week 4: Foundation Complete")
	assert.Contains(t, output, "Just Enough Research (Research, paid)")
}

func TestPrintRoadmap_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoadmap(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMarketInsight(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMarketInsight("Data Scientist", types.MarketInsight{
		DemandIndex:     88,
		ProjectedGrowth: 14.2,
		MedianSalary:    130000,
		Trend:           "surging",
		TopRegions:      []string{"Seattle", "Austin", "Remote (US)"},
		Simulated:       true,
	})
	output := buf.String()

	assert.Contains(t, output, "MARKET: Data Scientist")
	assert.Contains(t, output, "88/100")
	assert.Contains(t, output, "14.2%")
	assert.Contains(t, output, "Seattle, Austin, Remote (US)")
	assert.Contains(t, output, "(simulated data)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)
	assert.Nil(t, wrap("   ", 10))
}
