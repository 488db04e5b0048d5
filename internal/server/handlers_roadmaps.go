package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/career-pathfinder/internal/db"
	"github.com/jonathan/career-pathfinder/internal/gamification"
	"github.com/jonathan/career-pathfinder/internal/metrics"
	"github.com/jonathan/career-pathfinder/internal/roadmap"
	"github.com/jonathan/career-pathfinder/internal/server/middleware"
	"github.com/jonathan/career-pathfinder/internal/types"
)

// RoadmapResponse is returned when a roadmap is created or rescaled.
type RoadmapResponse struct {
	ID      uuid.UUID      `json:"id"`
	Roadmap *types.Roadmap `json:"roadmap"`
}

// TaskUpdateRequest is the body of PATCH /roadmaps/{id}/tasks/{taskId}.
type TaskUpdateRequest struct {
	Done *bool `json:"done" validate:"required"`
}

// HoursUpdateRequest is the body of PATCH /roadmaps/{id}/hours.
type HoursUpdateRequest struct {
	WeeklyHours float64 `json:"weeklyHours" validate:"gte=0,lte=80"`
}

// authedUser returns the authenticated user id, writing a 401 when there is none.
func (s *Server) authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// roadmapID parses the {id} path value. Malformed ids are reported as not found.
func roadmapID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrRoadmapNotFound{ID: raw}
	}
	return id, nil
}

// handleCreateRoadmap synthesizes a plan for the career and saves it for the user.
func (s *Server) handleCreateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.RoadmapRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	plan, err := s.synthesizer.Synthesize(req.CareerID, s.normalizer.NormalizeAll(req.UserSkills), req.WeeklyHours)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	id, err := s.store.SaveRoadmap(r.Context(), userID, plan)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	metrics.RoadmapsGenerated.Inc()
	s.logger.Info("roadmap created",
		zap.String("user_id", userID.String()),
		zap.String("roadmap_id", id.String()),
		zap.String("career_id", plan.CareerID),
	)
	s.jsonResponse(w, http.StatusCreated, RoadmapResponse{ID: id, Roadmap: plan})
}

func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	roadmaps, err := s.store.ListRoadmaps(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"roadmaps": roadmaps})
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := roadmapID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	rec, err := s.store.GetRoadmap(r.Context(), userID, id)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if rec == nil {
		s.failure(w, r, &ErrRoadmapNotFound{ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := roadmapID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	deleted, err := s.store.DeleteRoadmap(r.Context(), userID, id)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if !deleted {
		s.failure(w, r, &ErrRoadmapNotFound{ID: id.String()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleTask sets a task's done flag. The first completion of a task credits XP and badges;
// later re-completions and un-completions leave the profile untouched.
func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := roadmapID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	var req TaskUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	taskID := r.PathValue("taskId")
	now := s.now().UTC()
	var (
		resp            types.ProgressResponse
		firstCompletion bool
	)
	found, err := s.store.UpdateProgress(r.Context(), userID, id, func(rec *db.RoadmapRecord, profile *types.GamificationProfile) error {
		_, task := rec.Plan.FindTask(taskID)
		if task == nil {
			return &ErrTaskNotFound{TaskID: taskID}
		}

		task.Done = *req.Done
		firstCompletion = task.Done && task.CompletedAt == nil
		resp = types.ProgressResponse{NewBadges: []types.Badge{}, Profile: *profile}
		if firstCompletion {
			task.CompletedAt = &now
			next, earned := gamification.Award(*profile, gamification.Completion{Roadmap: &rec.Plan, TaskID: taskID}, now)
			resp.XPAwarded = next.XP - profile.XP
			resp.Profile = next
			if len(earned) > 0 {
				resp.NewBadges = earned
			}
			*profile = next
		}
		resp.Task = *task
		return nil
	})
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if !found {
		s.failure(w, r, &ErrRoadmapNotFound{ID: id.String()})
		return
	}

	if firstCompletion {
		metrics.TasksCompleted.WithLabelValues(string(resp.Task.Type)).Inc()
		s.recordLeaderboard(r, userID, resp.Profile.XP)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRescaleRoadmap re-derives task hours for a new weekly budget from the original plan and
// carries the user's progress over.
func (s *Server) handleRescaleRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}
	id, err := roadmapID(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	var req HoursUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ctx := r.Context()
	rec, err := s.store.GetRoadmap(ctx, userID, id)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if rec == nil {
		s.failure(w, r, &ErrRoadmapNotFound{ID: id.String()})
		return
	}

	scaled, err := roadmap.ScaleHours(&rec.Original, req.WeeklyHours)
	if err != nil {
		s.failure(w, r, fmt.Errorf("failed to rescale roadmap %s: %w", id, err))
		return
	}
	roadmap.CopyProgress(scaled, &rec.Plan)

	updated, err := s.store.UpdateRoadmapPlan(ctx, userID, id, scaled)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if !updated {
		s.failure(w, r, &ErrRoadmapNotFound{ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, RoadmapResponse{ID: id, Roadmap: scaled})
}
