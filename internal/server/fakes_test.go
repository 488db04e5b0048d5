package server

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-pathfinder/internal/db"
	"github.com/jonathan/career-pathfinder/internal/gamification"
	"github.com/jonathan/career-pathfinder/internal/types"
)

// memStore is an in-memory Store. Setting err makes every call fail with it.
type memStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*db.User
	roadmaps  map[uuid.UUID]*db.RoadmapRecord
	profiles  map[uuid.UUID]types.GamificationProfile
	err       error
	commitErr error
	seq       int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*db.User),
		roadmaps: make(map[uuid.UUID]*db.RoadmapRecord),
		profiles: make(map[uuid.UUID]types.GamificationProfile),
	}
}

var _ Store = (*memStore)(nil)

// tick returns strictly increasing timestamps so ordering is deterministic.
func (m *memStore) tick() time.Time {
	m.seq++
	return time.Date(2026, 1, 1, 0, 0, m.seq, 0, time.UTC)
}

func (m *memStore) Ping(context.Context) error { return m.err }

func (m *memStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return uuid.Nil, m.err
	}
	id := uuid.New()
	ts := m.tick()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: ts, UpdatedAt: ts}
	return id, nil
}

func (m *memStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (m *memStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	u, ok := m.users[id]
	if !ok {
		return &ErrUserNotFound{UserID: id}
	}
	u.PasswordHash = hash
	return nil
}

// copyPlan deep-copies through JSON the way the real store does.
func copyPlan(p *types.Roadmap) types.Roadmap {
	data, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	var out types.Roadmap
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return out
}

func (m *memStore) SaveRoadmap(_ context.Context, userID uuid.UUID, plan *types.Roadmap) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return uuid.Nil, m.err
	}
	id := uuid.New()
	ts := m.tick()
	m.roadmaps[id] = &db.RoadmapRecord{
		ID:          id,
		UserID:      userID,
		CareerID:    plan.CareerID,
		Title:       plan.Title,
		WeeklyHours: plan.WeeklyHours,
		Plan:        copyPlan(plan),
		Original:    copyPlan(plan),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	return id, nil
}

func (m *memStore) GetRoadmap(_ context.Context, userID, id uuid.UUID) (*db.RoadmapRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.roadmaps[id]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	cp := *rec
	cp.Plan = copyPlan(&rec.Plan)
	cp.Original = copyPlan(&rec.Original)
	return &cp, nil
}

func (m *memStore) ListRoadmaps(_ context.Context, userID uuid.UUID) ([]db.RoadmapSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]db.RoadmapSummary, 0)
	for _, rec := range m.roadmaps {
		if rec.UserID != userID {
			continue
		}
		tasks := rec.Plan.Tasks()
		done := 0
		for _, t := range tasks {
			if t.Done {
				done++
			}
		}
		out = append(out, db.RoadmapSummary{
			ID:          rec.ID,
			CareerID:    rec.CareerID,
			Title:       rec.Title,
			WeeklyHours: rec.WeeklyHours,
			TasksDone:   done,
			TasksTotal:  len(tasks),
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) UpdateRoadmapPlan(_ context.Context, userID, id uuid.UUID, plan *types.Roadmap) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	rec, ok := m.roadmaps[id]
	if !ok || rec.UserID != userID {
		return false, nil
	}
	rec.Plan = copyPlan(plan)
	rec.WeeklyHours = plan.WeeklyHours
	rec.UpdatedAt = m.tick()
	return true, nil
}

func (m *memStore) DeleteRoadmap(_ context.Context, userID, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	rec, ok := m.roadmaps[id]
	if !ok || rec.UserID != userID {
		return false, nil
	}
	delete(m.roadmaps, id)
	return true, nil
}

func (m *memStore) GetGamificationProfile(_ context.Context, userID uuid.UUID) (*types.GamificationProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p := m.profileLocked(userID)
	return &p, nil
}

func (m *memStore) profileLocked(userID uuid.UUID) types.GamificationProfile {
	p, ok := m.profiles[userID]
	if !ok {
		return types.GamificationProfile{UserID: userID, Level: 1, Badges: []types.Badge{}}
	}
	p.Badges = append([]types.Badge{}, p.Badges...)
	return p
}

// UpdateProgress holds the store lock for the whole update, the way *db.DB holds a transaction.
// Setting commitErr fails the update after fn has run, leaving both plan and profile unchanged.
func (m *memStore) UpdateProgress(_ context.Context, userID, id uuid.UUID, fn db.ProgressFunc) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	stored, ok := m.roadmaps[id]
	if !ok || stored.UserID != userID {
		return false, nil
	}

	rec := *stored
	rec.Plan = copyPlan(&stored.Plan)
	rec.Original = copyPlan(&stored.Original)
	profile := m.profileLocked(userID)
	if err := fn(&rec, &profile); err != nil {
		return false, err
	}
	if m.commitErr != nil {
		return false, m.commitErr
	}

	stored.Plan = copyPlan(&rec.Plan)
	stored.WeeklyHours = rec.Plan.WeeklyHours
	stored.UpdatedAt = m.tick()
	profile.UserID = userID
	profile.Level = gamification.Level(profile.XP)
	m.profiles[userID] = profile
	return true, nil
}

// memLeaderboard is an in-memory Leaderboard.
type memLeaderboard struct {
	mu     sync.Mutex
	scores map[string]int
	err    error
}

func newMemLeaderboard() *memLeaderboard {
	return &memLeaderboard{scores: make(map[string]int)}
}

var _ Leaderboard = (*memLeaderboard)(nil)

func (l *memLeaderboard) Record(_ context.Context, userID string, xp int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.scores[userID] = xp
	return nil
}

func (l *memLeaderboard) ranked() []types.LeaderboardEntry {
	entries := make([]types.LeaderboardEntry, 0, len(l.scores))
	for id, xp := range l.scores {
		entries = append(entries, types.LeaderboardEntry{UserID: id, XP: xp})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].XP != entries[j].XP {
			return entries[i].XP > entries[j].XP
		}
		return entries[i].UserID > entries[j].UserID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (l *memLeaderboard) Top(_ context.Context, n int) ([]types.LeaderboardEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	entries := l.ranked()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

func (l *memLeaderboard) Rank(_ context.Context, userID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return 0, l.err
	}
	for _, e := range l.ranked() {
		if e.UserID == userID {
			return e.Rank, nil
		}
	}
	return 0, nil
}
