// Package gamification keeps the XP, level, streak and badge ledger for roadmap progress.
package gamification

import (
	"time"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// XPPerLevel is the XP needed to advance one level.
const XPPerLevel = 500

// Badge ids
const (
	BadgeFirstStep       = "first-step"
	BadgeWeekWarrior     = "week-warrior"
	BadgeMonthMaster     = "month-master"
	BadgeRoadmapComplete = "roadmap-complete"
	BadgeStreak7         = "streak-7"
	BadgeXP1000          = "xp-1000"
)

var badgeNames = map[string]string{
	BadgeFirstStep:       "First Step",
	BadgeWeekWarrior:     "Week Warrior",
	BadgeMonthMaster:     "Month Master",
	BadgeRoadmapComplete: "Roadmap Complete",
	BadgeStreak7:         "Seven-Day Streak",
	BadgeXP1000:          "XP Collector",
}

var xpByType = map[types.TaskType]int{
	types.TaskLearn:     20,
	types.TaskPractice:  30,
	types.TaskBuild:     50,
	types.TaskMilestone: 40,
}

// XPFor returns the XP a completed task of type t earns.
func XPFor(t types.TaskType) int {
	return xpByType[t]
}

// Level returns the level for an XP total. Level 1 starts at 0 XP.
func Level(xp int) int {
	return xp/XPPerLevel + 1
}

// Completion describes one task being marked done. Roadmap must already reflect the new state.
type Completion struct {
	Roadmap *types.Roadmap
	TaskID  string
}

// Award credits a completed task to the profile and returns the updated profile with any badges
// earned by this completion. The input profile is not modified.
func Award(p types.GamificationProfile, c Completion, now time.Time) (types.GamificationProfile, []types.Badge) {
	month, week, task := locate(c.Roadmap, c.TaskID)
	if task == nil {
		return p, nil
	}

	p.Badges = append([]types.Badge(nil), p.Badges...)
	p.XP += XPFor(task.Type)
	p.Level = Level(p.XP)
	p.TasksCompleted++
	touchStreak(&p, now)

	var earned []types.Badge
	grant := func(id string, ok bool) {
		if !ok || p.HasBadge(id) {
			return
		}
		b := types.Badge{ID: id, Name: badgeNames[id], EarnedAt: now.UTC()}
		p.Badges = append(p.Badges, b)
		earned = append(earned, b)
	}

	var monthTasks []types.Task
	for _, w := range month.Weeks {
		monthTasks = append(monthTasks, w.Tasks...)
	}

	grant(BadgeFirstStep, p.TasksCompleted >= 1)
	grant(BadgeWeekWarrior, types.AllDone(week.Tasks))
	grant(BadgeMonthMaster, types.AllDone(monthTasks))
	grant(BadgeRoadmapComplete, types.AllDone(c.Roadmap.Tasks()))
	grant(BadgeStreak7, p.CurrentStreak >= 7)
	grant(BadgeXP1000, p.XP >= 1000)

	return p, earned
}

// touchStreak records activity at now. Consecutive days extend the streak, the same day keeps it
// and a gap restarts it.
func touchStreak(p *types.GamificationProfile, now time.Time) {
	today := day(now)
	switch {
	case p.LastActive == nil || p.CurrentStreak == 0:
		p.CurrentStreak = 1
	default:
		switch gap := int(today.Sub(day(*p.LastActive)).Hours() / 24); {
		case gap == 1:
			p.CurrentStreak++
		case gap > 1:
			p.CurrentStreak = 1
		}
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastActive = &today
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func locate(r *types.Roadmap, taskID string) (*types.Month, *types.Week, *types.Task) {
	if r == nil {
		return nil, nil, nil
	}
	for mi := range r.Months {
		for wi := range r.Months[mi].Weeks {
			week := &r.Months[mi].Weeks[wi]
			for ti := range week.Tasks {
				if week.Tasks[ti].ID == taskID {
					return &r.Months[mi], week, &week.Tasks[ti]
				}
			}
		}
	}
	return nil, nil, nil
}
