package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-pathfinder/internal/types"
)

// RoadmapRecord is a saved roadmap. Original is the plan as first synthesized and is never
// modified; Plan carries the user's progress and current hour budget.
type RoadmapRecord struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"userId"`
	CareerID    string        `json:"careerId"`
	Title       string        `json:"title"`
	WeeklyHours float64       `json:"weeklyHours"`
	Plan        types.Roadmap `json:"plan"`
	Original    types.Roadmap `json:"-"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// RoadmapSummary is a list row for a saved roadmap.
type RoadmapSummary struct {
	ID          uuid.UUID `json:"id"`
	CareerID    string    `json:"careerId"`
	Title       string    `json:"title"`
	WeeklyHours float64   `json:"weeklyHours"`
	TasksDone   int       `json:"tasksDone"`
	TasksTotal  int       `json:"tasksTotal"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SaveRoadmap stores a freshly synthesized plan as both the current and the original plan.
func (db *DB) SaveRoadmap(ctx context.Context, userID uuid.UUID, plan *types.Roadmap) (uuid.UUID, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	id := uuid.New()
	ts := formatTime(now())
	_, err = db.exec(ctx,
		`INSERT INTO roadmaps (id, user_id, career_id, title, weekly_hours, plan, original_plan, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), userID.String(), plan.CareerID, plan.Title, plan.WeeklyHours,
		string(planJSON), string(planJSON), ts, ts,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save roadmap: %w", err)
	}
	return id, nil
}

// GetRoadmap retrieves one of the user's roadmaps, or nil if it does not exist or belongs to
// someone else.
func (db *DB) GetRoadmap(ctx context.Context, userID, id uuid.UUID) (*RoadmapRecord, error) {
	var (
		rec                    RoadmapRecord
		recID, owner           string
		planJSON, originalJSON string
		created, updated       string
	)
	err := db.queryRow(ctx,
		`SELECT id, user_id, career_id, title, weekly_hours, plan, original_plan, created_at, updated_at
		 FROM roadmaps WHERE id = ? AND user_id = ?`+db.forUpdate(),
		id.String(), userID.String(),
	).Scan(&recID, &owner, &rec.CareerID, &rec.Title, &rec.WeeklyHours, &planJSON, &originalJSON, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}

	if rec.ID, err = uuid.Parse(recID); err != nil {
		return nil, fmt.Errorf("invalid stored roadmap id %q: %w", recID, err)
	}
	if rec.UserID, err = uuid.Parse(owner); err != nil {
		return nil, fmt.Errorf("invalid stored user id %q: %w", owner, err)
	}
	if err := json.Unmarshal([]byte(planJSON), &rec.Plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap plan: %w", err)
	}
	if err := json.Unmarshal([]byte(originalJSON), &rec.Original); err != nil {
		return nil, fmt.Errorf("failed to unmarshal original roadmap plan: %w", err)
	}
	if rec.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRoadmaps returns summaries of the user's roadmaps, newest first.
func (db *DB) ListRoadmaps(ctx context.Context, userID uuid.UUID) ([]RoadmapSummary, error) {
	rows, err := db.query(ctx,
		`SELECT id, career_id, title, weekly_hours, plan, created_at, updated_at
		 FROM roadmaps WHERE user_id = ? ORDER BY created_at DESC`,
		userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	defer rows.Close()

	summaries := make([]RoadmapSummary, 0)
	for rows.Next() {
		var (
			s                RoadmapSummary
			id, planJSON     string
			created, updated string
			plan             types.Roadmap
		)
		if err := rows.Scan(&id, &s.CareerID, &s.Title, &s.WeeklyHours, &planJSON, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan roadmap: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid stored roadmap id %q: %w", id, err)
		}
		if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roadmap plan: %w", err)
		}
		for _, t := range plan.Tasks() {
			s.TasksTotal++
			if t.Done {
				s.TasksDone++
			}
		}
		if s.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if s.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roadmaps: %w", err)
	}
	return summaries, nil
}

// UpdateRoadmapPlan replaces the current plan. The original plan is left as synthesized.
// It reports whether a roadmap owned by userID was updated.
func (db *DB) UpdateRoadmapPlan(ctx context.Context, userID, id uuid.UUID, plan *types.Roadmap) (bool, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return false, fmt.Errorf("failed to marshal roadmap: %w", err)
	}
	res, err := db.exec(ctx,
		`UPDATE roadmaps SET plan = ?, weekly_hours = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		string(planJSON), plan.WeeklyHours, formatTime(now()), id.String(), userID.String(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to update roadmap: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update roadmap: %w", err)
	}
	return n > 0, nil
}

// DeleteRoadmap removes one of the user's roadmaps and reports whether it existed.
func (db *DB) DeleteRoadmap(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	res, err := db.exec(ctx, `DELETE FROM roadmaps WHERE id = ? AND user_id = ?`, id.String(), userID.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete roadmap: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete roadmap: %w", err)
	}
	return n > 0, nil
}
