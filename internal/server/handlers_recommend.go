package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/career-pathfinder/internal/metrics"
	"github.com/jonathan/career-pathfinder/internal/types"
)

// handleRecommend scores the catalog against the submitted profile.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resp, err := s.scorer.Score(req)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	metrics.RecommendationsServed.Inc()
	s.logger.Debug("recommendations served",
		zap.Int("skills", len(req.Skills)),
		zap.Int("interests", len(req.Interests)),
		zap.Int("results", len(resp.Recommendations)),
	)
	s.jsonResponse(w, http.StatusOK, resp)
}
