// Package types provides type definitions for structured data used throughout the career-pathfinder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Phase is the curriculum stage of a month.
type Phase string

const (
	PhaseFoundation Phase = "foundation"
	PhasePractice   Phase = "practice"
	PhaseProject    Phase = "project"
)

// TaskType classifies a roadmap task.
type TaskType string

const (
	TaskLearn     TaskType = "learn"
	TaskPractice  TaskType = "practice"
	TaskBuild     TaskType = "build"
	TaskMilestone TaskType = "milestone"
)

// RoadmapRequest is the input for roadmap synthesis.
type RoadmapRequest struct {
	CareerID    string   `json:"careerId" validate:"required"`
	UserSkills  []string `json:"userSkills"`
	WeeklyHours float64  `json:"weeklyHours" validate:"gte=0,lte=80"`
}

// Roadmap is a 12-week plan. Its shape is persisted verbatim by the storage layer.
type Roadmap struct {
	CareerID      string        `json:"careerId"`
	Title         string        `json:"title"`
	Months        []Month       `json:"months"`
	Milestones    []Milestone   `json:"milestones"`
	MatchedSkills []string      `json:"matchedSkills"`
	MissingSkills []string      `json:"missingSkills"`
	WeeklyHours   float64       `json:"weeklyHours"`
	TopResources  []TopResource `json:"topResources"`
}

// Month groups four weeks of one phase.
type Month struct {
	Index int    `json:"month"`
	Title string `json:"title"`
	Phase Phase  `json:"phase"`
	Focus string `json:"focus"`
	Weeks []Week `json:"weeks"`
}

// Week is one week of the plan with 1 to 4 tasks, exactly one of them a milestone.
type Week struct {
	Week            int    `json:"week"`
	Month           int    `json:"month"`
	FocusSkill      string `json:"focusSkill"`
	FocusSkillLabel string `json:"focusSkillLabel"`
	IsMissing       bool   `json:"isMissing"`
	Phase           Phase  `json:"phase"`
	Tasks           []Task `json:"tasks"`
	TotalHours      int    `json:"totalHours"`
	Tip             string `json:"tip"`
}

// Task is a single actionable item. Done is owned by the client once emitted.
// CompletedAt records the first completion and survives un-marking, so XP is credited once.
type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Type           TaskType     `json:"type"`
	EstimatedHours int          `json:"estimatedHours"`
	Resource       *Resource    `json:"resource,omitempty"`
	Project        *ProjectIdea `json:"project,omitempty"`
	Done           bool         `json:"done"`
	CompletedAt    *time.Time   `json:"completedAt,omitempty"`
}

// Milestone marks a checkpoint at the end of a month.
type Milestone struct {
	Week        int    `json:"week"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TopResource is a deduplicated resource surfaced at the roadmap level.
type TopResource struct {
	Resource
	Skill      string `json:"skill"`
	SkillLabel string `json:"skillLabel"`
	IsFree     bool   `json:"isFree"`
}

// Tasks returns every task in plan order.
func (r *Roadmap) Tasks() []Task {
	var tasks []Task
	for _, m := range r.Months {
		for _, w := range m.Weeks {
			tasks = append(tasks, w.Tasks...)
		}
	}
	return tasks
}

// FindTask returns pointers to the week and task with the given id, or nils.
func (r *Roadmap) FindTask(taskID string) (*Week, *Task) {
	for mi := range r.Months {
		for wi := range r.Months[mi].Weeks {
			week := &r.Months[mi].Weeks[wi]
			for ti := range week.Tasks {
				if week.Tasks[ti].ID == taskID {
					return week, &week.Tasks[ti]
				}
			}
		}
	}
	return nil, nil
}

// AllDone reports whether every task in the slice is done. An empty slice is not done.
func AllDone(tasks []Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !t.Done {
			return false
		}
	}
	return true
}
