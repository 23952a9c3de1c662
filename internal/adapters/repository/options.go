package repository

import "github.com/hirewire/fitrank/internal/domain/model"

// MemOption applies a configuration option to the MemStore.
type MemOption func(*MemStore)

// WithProjects seeds the store with projects.
func WithProjects(projects ...model.Project) MemOption {
	return func(s *MemStore) {
		for _, p := range projects {
			s.projects[p.ID] = p
		}
	}
}

// WithCandidates seeds the store with candidates.
func WithCandidates(candidates ...model.Candidate) MemOption {
	return func(s *MemStore) {
		for _, c := range candidates {
			s.candidates[c.ID] = c
		}
	}
}

// WithApplications seeds the store with applications.
func WithApplications(apps ...model.Application) MemOption {
	return func(s *MemStore) {
		for _, a := range apps {
			s.applications[a.ProjectID] = append(s.applications[a.ProjectID], a)
		}
	}
}
