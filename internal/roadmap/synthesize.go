// Package roadmap builds deterministic 12-week learning plans from a career's skill gaps.
package roadmap

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const (
	// Weeks is the plan length.
	Weeks         = 12
	weeksPerMonth = 4

	// DefaultWeeklyHours is used when the caller passes a non-positive budget.
	DefaultWeeklyHours = 10.0

	learnShare     = 0.3
	practiceShare  = 0.3
	buildShare     = 0.4
	milestoneShare = 0.1

	defaultResourceHours = 3
	defaultMilestone     = "Review progress and adjust plan"
)

var monthTitles = [3]string{
	"Month 1: Foundations",
	"Month 2: Practice",
	"Month 3: Portfolio Projects",
}

// Catalog is the read-only data the synthesizer draws from.
type Catalog interface {
	Career(id string) (types.Career, bool)
	Resources(skillID string) (types.SkillResources, bool)
	DefaultResources() types.SkillResources
	SkillLabel(id string) string
}

// Synthesizer builds roadmaps. It is stateless and safe for concurrent use.
type Synthesizer struct {
	catalog Catalog
}

// NewSynthesizer creates a Synthesizer over the given catalog.
func NewSynthesizer(catalog Catalog) *Synthesizer {
	return &Synthesizer{catalog: catalog}
}

// Synthesize builds the 12-week plan for careerID. Identical inputs always yield identical output.
func (s *Synthesizer) Synthesize(careerID string, userSkills []string, weeklyHours float64) (*types.Roadmap, error) {
	career, ok := s.catalog.Career(careerID)
	if !ok {
		return nil, &NotFoundError{CareerID: careerID}
	}
	if len(career.RequiredSkills) == 0 {
		return nil, &InvalidInputError{CareerID: careerID, Message: "career has no required skills"}
	}
	if weeklyHours <= 0 {
		weeklyHours = DefaultWeeklyHours
	}

	known := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		known[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	matched := make([]string, 0, len(career.RequiredSkills))
	missing := make([]string, 0, len(career.RequiredSkills))
	for _, id := range career.RequiredSkills {
		if known[id] {
			matched = append(matched, id)
		} else {
			missing = append(missing, id)
		}
	}
	ordered := append(append([]string(nil), missing...), matched...)
	isMissing := make(map[string]bool, len(missing))
	for _, id := range missing {
		isMissing[id] = true
	}

	months := make([]types.Month, 0, Weeks/weeksPerMonth)
	for m := 0; m < Weeks/weeksPerMonth; m++ {
		months = append(months, types.Month{
			Index: m + 1,
			Title: monthTitles[m],
			Phase: phaseForMonth(m),
			Weeks: make([]types.Week, 0, weeksPerMonth),
		})
	}
	for w := 0; w < Weeks; w++ {
		primary := ordered[w%len(ordered)]
		week := s.buildWeek(w, primary, isMissing[primary], len(ordered), weeklyHours)
		months[w/weeksPerMonth].Weeks = append(months[w/weeksPerMonth].Weeks, week)
	}
	for i := range months {
		months[i].Focus = monthFocus(months[i].Weeks)
	}

	return &types.Roadmap{
		CareerID:      career.ID,
		Title:         fmt.Sprintf("%s: 12-Week Roadmap", career.Title),
		Months:        months,
		Milestones:    s.milestones(career, missing, ordered),
		MatchedSkills: matched,
		MissingSkills: missing,
		WeeklyHours:   weeklyHours,
		TopResources:  s.topResources(ordered),
	}, nil
}

func phaseForMonth(month int) types.Phase {
	switch month {
	case 0:
		return types.PhaseFoundation
	case 1:
		return types.PhasePractice
	default:
		return types.PhaseProject
	}
}

// buildWeek emits the tasks for week index w (0-based). cycle counts how many times the
// round-robin has wrapped, so repeated skills rotate through their pools.
func (s *Synthesizer) buildWeek(w int, skillID string, missing bool, orderedLen int, hours float64) types.Week {
	month := w / weeksPerMonth
	weekInMonth := w % weeksPerMonth
	phase := phaseForMonth(month)
	cycle := w / orderedLen

	bundle := s.bundleFor(skillID)
	label := s.catalog.SkillLabel(skillID)

	var tasks []types.Task

	if phase == types.PhaseFoundation || weekInMonth < 2 {
		tasks = append(tasks, learnTask(w, month, cycle, label, bundle, hours))
	}

	if n := len(bundle.Exercises); n > 0 {
		tasks = append(tasks, types.Task{
			ID:             taskID(w, types.TaskPractice),
			Title:          "Practice: " + bundle.Exercises[(cycle+weekInMonth)%n],
			Type:           types.TaskPractice,
			EstimatedHours: roundHours(hours * practiceShare),
		})
	}

	if phase == types.PhaseProject || weekInMonth >= 2 {
		tasks = append(tasks, buildTask(w, month, cycle, phase, label, bundle, hours))
	}

	milestone := defaultMilestone
	if n := len(bundle.WeeklyMilestones); n > 0 {
		milestone = bundle.WeeklyMilestones[weekInMonth%n]
	}
	tasks = append(tasks, types.Task{
		ID:             taskID(w, types.TaskMilestone),
		Title:          milestone,
		Type:           types.TaskMilestone,
		EstimatedHours: roundHours(hours * milestoneShare),
	})

	return types.Week{
		Week:            w + 1,
		Month:           month + 1,
		FocusSkill:      skillID,
		FocusSkillLabel: label,
		IsMissing:       missing,
		Phase:           phase,
		Tasks:           tasks,
		TotalHours:      totalHours(tasks),
		Tip:             selectTip(phase, missing, weekInMonth),
	}
}

func learnTask(w, month, cycle int, label string, bundle types.SkillResources, hours float64) types.Task {
	verb, pool := "Learn", bundle.BeginnerResources
	if month > 0 {
		verb, pool = "Deepen", bundle.IntermediateResources
	}

	task := types.Task{
		ID:   taskID(w, types.TaskLearn),
		Type: types.TaskLearn,
	}
	budget := roundHours(hours * learnShare)

	if len(pool) == 0 {
		task.Title = fmt.Sprintf("%s: %s — core concepts", verb, label)
		task.EstimatedHours = min(budget, defaultResourceHours)
		return task
	}

	r := EnsureURL(pool[cycle%len(pool)], label)
	task.Title = fmt.Sprintf("%s: %s — %s", verb, label, r.Title)
	task.EstimatedHours = min(budget, r.HoursOr(defaultResourceHours))
	task.Resource = &r
	return task
}

func buildTask(w, month, cycle int, phase types.Phase, label string, bundle types.SkillResources, hours float64) types.Task {
	task := types.Task{
		ID:             taskID(w, types.TaskBuild),
		Type:           types.TaskBuild,
		EstimatedHours: roundHours(hours * buildShare),
	}

	if n := len(bundle.ProjectIdeas); n > 0 {
		verb := "Apply"
		if phase == types.PhaseProject {
			verb = "Build"
		}
		p := bundle.ProjectIdeas[(month+cycle)%n]
		task.Title = fmt.Sprintf("%s: %s", verb, p.Title)
		task.Project = &p
		return task
	}

	task.Title = fmt.Sprintf("Apply %s to a mini-project", label)
	return task
}

func (s *Synthesizer) milestones(career types.Career, missing, ordered []string) []types.Milestone {
	focus := missing
	if len(focus) == 0 {
		focus = ordered
	}
	if len(focus) > 3 {
		focus = focus[:3]
	}
	labels := make([]string, len(focus))
	for i, id := range focus {
		labels[i] = s.catalog.SkillLabel(id)
	}

	return []types.Milestone{
		{
			Week:        4,
			Title:       "Foundation Complete",
			Description: fmt.Sprintf("You have worked through the fundamentals of %s.", strings.Join(labels, ", ")),
		},
		{
			Week:        8,
			Title:       "Portfolio Piece #1",
			Description: "You have finished and published your first practice project.",
		},
		{
			Week:        12,
			Title:       "Career-Ready",
			Description: fmt.Sprintf("You have a portfolio and a learning story to start applying for %s roles.", career.Title),
		},
	}
}

func monthFocus(weeks []types.Week) string {
	seen := make(map[string]bool)
	var labels []string
	for _, w := range weeks {
		if !seen[w.FocusSkillLabel] {
			seen[w.FocusSkillLabel] = true
			labels = append(labels, w.FocusSkillLabel)
		}
	}
	return strings.Join(labels, ", ")
}

func taskID(w int, t types.TaskType) string {
	return fmt.Sprintf("w%d-%s", w, t)
}

func roundHours(h float64) int {
	return int(math.Round(h))
}

func totalHours(tasks []types.Task) int {
	total := 0
	for _, t := range tasks {
		total += t.EstimatedHours
	}
	return total
}
