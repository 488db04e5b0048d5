package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/career-pathfinder/internal/types"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// ProgressSummary is the body of GET /me/progress. Rank is 0 when the leaderboard is
// disabled or the user has no score yet.
type ProgressSummary struct {
	Profile *types.GamificationProfile `json:"profile"`
	Rank    int                        `json:"rank"`
}

// LeaderboardResponse is the body of GET /leaderboard.
type LeaderboardResponse struct {
	Entries []types.LeaderboardEntry `json:"entries"`
	Enabled bool                     `json:"enabled"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	profile, err := s.store.GetGamificationProfile(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	summary := ProgressSummary{Profile: profile}
	if s.leaderboard != nil {
		rank, err := s.leaderboard.Rank(r.Context(), userID.String())
		if err != nil {
			s.logger.Warn("leaderboard rank unavailable", zap.String("user_id", userID.String()), zap.Error(err))
		} else {
			summary.Rank = rank
		}
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleLeaderboard returns the top users by XP. ?limit defaults to 10 and is capped at 100.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.failure(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = min(n, maxLeaderboardSize)
	}

	if s.leaderboard == nil {
		s.jsonResponse(w, http.StatusOK, LeaderboardResponse{Entries: []types.LeaderboardEntry{}})
		return
	}

	entries, err := s.leaderboard.Top(r.Context(), limit)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, LeaderboardResponse{Entries: entries, Enabled: true})
}

// recordLeaderboard pushes the user's XP to the leaderboard. Failures are only logged.
func (s *Server) recordLeaderboard(r *http.Request, userID uuid.UUID, xp int) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.Record(r.Context(), userID.String(), xp); err != nil {
		s.logger.Warn("failed to record leaderboard score", zap.String("user_id", userID.String()), zap.Error(err))
	}
}
