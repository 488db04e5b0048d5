// Package observability provides formatted text output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer renders recommendations and roadmaps as boxed text.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to fit a box line, counting runes.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= boxWidth-4 {
		return s
	}
	return string(r[:boxWidth-7]) + "..."
}

// list writes up to limit items as bullets, noting how many were left out.
func list(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", heading)
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintRecommendations outputs one box per recommended career, best first.
func (p *Printer) PrintRecommendations(resp *types.RecommendResponse) {
	if resp == nil {
		return
	}
	if len(resp.Recommendations) == 0 {
		p.printBox("CAREER MATCHES", "No careers matched this profile.")
		return
	}

	for i, rec := range resp.Recommendations {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Match:    %d%%\n", rec.MatchScore)
		fmt.Fprintf(&sb, "Category: %s\n", rec.Category)
		fmt.Fprintf(&sb, "Salary:   $%d - $%d\n", rec.SalaryRange.Min, rec.SalaryRange.Max)
		fmt.Fprintf(&sb, "Growth:   %s\n", rec.GrowthOutlook)
		sb.WriteString("\n")
		for _, line := range wrap(rec.Explanation, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
		list(&sb, "Matched skills", rec.MatchedSkills, maxItemsToShow)
		list(&sb, "Skills to build", rec.MissingSkills, maxItemsToShow)

		p.printBox(fmt.Sprintf("#%d %s", i+1, rec.Title), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintRoadmap outputs the plan month by month with each week's focus, hours and tasks.
func (p *Printer) PrintRoadmap(r *types.Roadmap) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Weekly hours: %g\n", r.WeeklyHours)
	list(&sb, "Skills to learn", r.MissingSkills, len(r.MissingSkills))
	list(&sb, "Skills to sharpen", r.MatchedSkills, len(r.MatchedSkills))
	p.printBox(strings.ToUpper(r.Title), strings.TrimSuffix(sb.String(), "\n"))

	for _, m := range r.Months {
		sb.Reset()
		fmt.Fprintf(&sb, "Focus: %s\n", m.Focus)
		for _, w := range m.Weeks {
			marker := ""
			if w.IsMissing {
				marker = " (new)"
			}
			fmt.Fprintf(&sb, "\nWeek %d: %s%s, %dh\n", w.Week, w.FocusSkillLabel, marker, w.TotalHours)
			for _, t := range w.Tasks {
				check := "[ ]"
				if t.Done {
					check = "[x]"
				}
				fmt.Fprintf(&sb, "  %s %s (%dh)\n", check, t.Title, t.EstimatedHours)
			}
			if w.Tip != "" {
				fmt.Fprintf(&sb, "  Tip: %s\n", w.Tip)
			}
		}
		p.printBox(m.Title, strings.TrimSuffix(sb.String(), "\n"))
	}

	if len(r.Milestones) > 0 {
		sb.Reset()
		for _, ms := range r.Milestones {
			fmt.Fprintf(&sb, "Week %d: %s\n", ms.Week, ms.Title)
		}
		p.printBox("MILESTONES", strings.TrimSuffix(sb.String(), "\n"))
	}

	if len(r.TopResources) > 0 {
		sb.Reset()
		for _, res := range r.TopResources[:min(len(r.TopResources), maxItemsToShow)] {
			cost := "paid"
			if res.IsFree {
				cost = "free"
			}
			fmt.Fprintf(&sb, "• %s (%s, %s)\n", res.Title, res.SkillLabel, cost)
		}
		p.printBox("TOP RESOURCES", strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintMarketInsight outputs the simulated market figures for a career.
func (p *Printer) PrintMarketInsight(title string, m types.MarketInsight) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Demand index:     %d/100\n", m.DemandIndex)
	fmt.Fprintf(&sb, "Projected growth: %.1f%%\n", m.ProjectedGrowth)
	fmt.Fprintf(&sb, "Remote friendly:  %d%%\n", m.RemoteFriendlyPct)
	fmt.Fprintf(&sb, "Median salary:    $%d\n", m.MedianSalary)
	fmt.Fprintf(&sb, "Trend:            %s\n", m.Trend)
	fmt.Fprintf(&sb, "Top regions:      %s", strings.Join(m.TopRegions, ", "))
	if m.Simulated {
		sb.WriteString("\n\n(simulated data)")
	}
	p.printBox("MARKET: "+title, sb.String())
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
