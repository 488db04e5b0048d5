package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/career-pathfinder/internal/market"
	"github.com/jonathan/career-pathfinder/internal/types"
)

// NormalizeRequest is the body of POST /skills/normalize.
type NormalizeRequest struct {
	Terms []string `json:"terms" validate:"required,min=1"`
}

// NormalizedTerm is the canonical ids one input term maps to.
type NormalizedTerm struct {
	Term   string   `json:"term"`
	Skills []string `json:"skills"`
}

// NormalizeResponse carries the flattened ids and the per-term breakdown.
type NormalizeResponse struct {
	Skills  []string         `json:"skills"`
	Results []NormalizedTerm `json:"results"`
}

// handleListCareers returns the catalog, optionally filtered by ?category (case-insensitive).
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	careers := make([]types.Career, 0)
	for _, c := range s.catalog.Careers() {
		if category != "" && !strings.EqualFold(c.Category, category) {
			continue
		}
		careers = append(careers, c)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"careers": careers})
}

func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	career, ok := s.catalog.Career(id)
	if !ok {
		s.failure(w, r, &ErrCareerNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, career)
}

// handleCareerMarket returns simulated market figures for one career.
func (s *Server) handleCareerMarket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	career, ok := s.catalog.Career(id)
	if !ok {
		s.failure(w, r, &ErrCareerNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, market.Insight(career))
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": s.catalog.Skills()})
}

func (s *Server) handleListInterests(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"interests": s.catalog.Interests()})
}

// handleNormalizeSkills maps free-text skill terms onto canonical ids.
func (s *Server) handleNormalizeSkills(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resp := NormalizeResponse{
		Skills:  s.normalizer.NormalizeAll(req.Terms),
		Results: make([]NormalizedTerm, 0, len(req.Terms)),
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	for _, term := range req.Terms {
		ids := s.normalizer.Normalize(term)
		if ids == nil {
			ids = []string{}
		}
		resp.Results = append(resp.Results, NormalizedTerm{Term: term, Skills: ids})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
