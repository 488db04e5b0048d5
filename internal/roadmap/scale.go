package roadmap

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// ScaleHours re-derives every task's hours for a new weekly budget from the original (unscaled)
// plan, using the ratio of the budgets. The original is left untouched.
// Hours are scaled proportionally only: the learn task's cap at its resource's hours is not
// re-applied, so at large ratios a scaled plan can differ from one synthesized directly at
// weeklyHours by more than an hour per task.
func ScaleHours(original *types.Roadmap, weeklyHours float64) (*types.Roadmap, error) {
	if original.WeeklyHours <= 0 {
		return nil, fmt.Errorf("original roadmap has no weekly hours")
	}
	if weeklyHours <= 0 {
		weeklyHours = DefaultWeeklyHours
	}

	scaled, err := clone(original)
	if err != nil {
		return nil, err
	}

	ratio := weeklyHours / original.WeeklyHours
	for mi := range scaled.Months {
		for wi := range scaled.Months[mi].Weeks {
			week := &scaled.Months[mi].Weeks[wi]
			for ti := range week.Tasks {
				week.Tasks[ti].EstimatedHours = roundHours(float64(week.Tasks[ti].EstimatedHours) * ratio)
			}
			week.TotalHours = totalHours(week.Tasks)
		}
	}
	scaled.WeeklyHours = weeklyHours
	return scaled, nil
}

// CopyProgress copies done flags and completion times from src onto the tasks of dst with the
// same id.
func CopyProgress(dst, src *types.Roadmap) {
	progress := make(map[string]types.Task)
	for _, t := range src.Tasks() {
		progress[t.ID] = t
	}
	for mi := range dst.Months {
		for wi := range dst.Months[mi].Weeks {
			week := &dst.Months[mi].Weeks[wi]
			for ti := range week.Tasks {
				p := progress[week.Tasks[ti].ID]
				week.Tasks[ti].Done = p.Done
				week.Tasks[ti].CompletedAt = p.CompletedAt
			}
		}
	}
}

func clone(r *types.Roadmap) (*types.Roadmap, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to copy roadmap: %w", err)
	}
	var out types.Roadmap
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to copy roadmap: %w", err)
	}
	return &out, nil
}
