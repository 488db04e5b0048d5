// Package server provides the HTTP REST API for career recommendations, roadmaps and progress.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonathan/career-pathfinder/internal/catalog"
	"github.com/jonathan/career-pathfinder/internal/config"
	"github.com/jonathan/career-pathfinder/internal/metrics"
	"github.com/jonathan/career-pathfinder/internal/ranking"
	"github.com/jonathan/career-pathfinder/internal/roadmap"
	"github.com/jonathan/career-pathfinder/internal/server/middleware"
	"github.com/jonathan/career-pathfinder/internal/server/ratelimit"
	"github.com/jonathan/career-pathfinder/internal/skills"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Config holds server configuration
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	RateLimit       *ratelimit.Config
	JWT             *config.JWTConfig
	Password        *config.PasswordConfig
}

// Deps are the collaborators the server is built from. Leaderboard and Logger are optional.
type Deps struct {
	Store       Store
	Catalog     *catalog.Catalog
	Leaderboard Leaderboard
	Logger      *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	handler         http.Handler

	store       Store
	catalog     *catalog.Catalog
	normalizer  *skills.Normalizer
	scorer      *ranking.Scorer
	synthesizer *roadmap.Synthesizer
	leaderboard Leaderboard
	logger      *zap.Logger
	validate    *validator.Validate
	now         func() time.Time

	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("server requires a catalog")
	}
	if cfg.JWT == nil || cfg.Password == nil {
		return nil, fmt.Errorf("server requires JWT and password configuration")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	normalizer := skills.NewNormalizer(deps.Catalog.Skills(), deps.Catalog.Synonyms())
	s := &Server{
		shutdownTimeout: shutdownTimeout,
		store:           deps.Store,
		catalog:         deps.Catalog,
		normalizer:      normalizer,
		scorer:          ranking.NewScorer(deps.Catalog, normalizer),
		synthesizer:     roadmap.NewSynthesizer(deps.Catalog),
		leaderboard:     deps.Leaderboard,
		logger:          logger,
		validate:        validator.New(),
		now:             time.Now,
		rateLimiter:     ratelimit.NewLimiter(cfg.RateLimit),
		jwtService:      NewJWTService(cfg.JWT),
	}
	s.userService = NewUserService(deps.Store, cfg.Password)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", protected(s.handleUpdatePassword))

	// Catalog
	mux.HandleFunc("GET /careers", s.handleListCareers)
	mux.HandleFunc("GET /careers/{id}", s.handleGetCareer)
	mux.HandleFunc("GET /careers/{id}/market", s.handleCareerMarket)
	mux.HandleFunc("GET /skills", s.handleListSkills)
	mux.HandleFunc("POST /skills/normalize", s.handleNormalizeSkills)
	mux.HandleFunc("GET /interests", s.handleListInterests)

	// Recommendations
	mux.HandleFunc("POST /recommend", s.handleRecommend)

	// Roadmaps
	mux.Handle("POST /roadmaps", protected(s.handleCreateRoadmap))
	mux.Handle("GET /roadmaps", protected(s.handleListRoadmaps))
	mux.Handle("GET /roadmaps/{id}", protected(s.handleGetRoadmap))
	mux.Handle("DELETE /roadmaps/{id}", protected(s.handleDeleteRoadmap))
	mux.Handle("PATCH /roadmaps/{id}/tasks/{taskId}", protected(s.handleToggleTask))
	mux.Handle("PATCH /roadmaps/{id}/hours", protected(s.handleRescaleRoadmap))

	// Progress
	mux.Handle("GET /me/progress", protected(s.handleProgress))
	mux.HandleFunc("GET /leaderboard", s.handleLeaderboard)

	s.handler = s.withRateLimit(s.withMetrics(s.withLogging(s.withCORS(mux))))
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// routeLabel is the matched mux pattern without its method, so path parameters do not explode
// metric cardinality. The mux sets r.Pattern while serving.
func routeLabel(r *http.Request) string {
	pattern := r.Pattern
	if i := strings.IndexByte(pattern, ' '); i >= 0 {
		pattern = pattern[i+1:]
	}
	if pattern == "" {
		return "unmatched"
	}
	return pattern
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := recordStatus(w)
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// withMetrics records request counts and latencies per route.
func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := recordStatus(w)
		next.ServeHTTP(rec, r)

		route := routeLabel(r)
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			metrics.RateLimited.WithLabelValues(r.URL.Path).Inc()
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("limit", info.Limit),
			)
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID uses the IP address from RemoteAddr.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"limit":   info.Limit,
	}
	if info.RetryAfter > 0 {
		seconds := int(math.Ceil(info.RetryAfter.Seconds()))
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}
	writeJSON(w, http.StatusTooManyRequests, response)
}

// handleHealth reports whether the store is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeError(w, status, message)
}

// failure maps err to a status. Server errors are logged and their details withheld.
func (s *Server) failure(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a size-limited request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body"}
	}
	return nil
}
