package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hirewire/fitrank/internal/domain/model"
)

// MemStore implements Store in memory. The production system wires its own
// database-backed implementation; this one backs tests and local runs.
type MemStore struct {
	mu           sync.RWMutex
	projects     map[uuid.UUID]model.Project
	candidates   map[uuid.UUID]model.Candidate
	applications map[uuid.UUID][]model.Application
	positions    map[uuid.UUID][]model.Position
	visitors     map[uuid.UUID]int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		projects:     make(map[uuid.UUID]model.Project),
		candidates:   make(map[uuid.UUID]model.Candidate),
		applications: make(map[uuid.UUID][]model.Application),
		positions:    make(map[uuid.UUID][]model.Position),
		visitors:     make(map[uuid.UUID]int),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project returns one project.
func (s *MemStore) Project(_ context.Context, id uuid.UUID) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return model.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// Applications returns all applications for a project.
func (s *MemStore) Applications(_ context.Context, projectID uuid.UUID) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := s.applications[projectID]
	out := make([]model.Application, len(apps))
	copy(out, apps)
	return out, nil
}

// Candidate returns one candidate.
func (s *MemStore) Candidate(_ context.Context, id uuid.UUID) (model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.candidates[id]
	if !ok {
		return model.Candidate{}, ErrCandidateNotFound
	}
	return c, nil
}

// Positions returns a candidate's career history.
func (s *MemStore) Positions(_ context.Context, candidateID uuid.UUID) ([]model.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ps := s.positions[candidateID]
	out := make([]model.Position, len(ps))
	copy(out, ps)
	return out, nil
}

// VisitorCount returns the recorded visitor count for a project.
func (s *MemStore) VisitorCount(_ context.Context, projectID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visitors[projectID], nil
}

// AddProject stores a project.
func (s *MemStore) AddProject(p model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p
}

// AddCandidate stores a candidate and its career history.
func (s *MemStore) AddCandidate(c model.Candidate, positions ...model.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[c.ID] = c
	s.positions[c.ID] = append(s.positions[c.ID], positions...)
}

// AddApplication stores an application against its project.
func (s *MemStore) AddApplication(a model.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ProjectID] = append(s.applications[a.ProjectID], a)
}

// RecordVisit increments a project's visitor count.
func (s *MemStore) RecordVisit(projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitors[projectID]++
}
