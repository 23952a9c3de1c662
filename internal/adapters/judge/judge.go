// Package judge defines the semantic judgment boundary used for fuzzy
// text-list comparisons, and a Gemini-backed implementation.
package judge

import "context"

// Score bounds returned by a judge.
const (
	MinScore = 0
	MaxScore = 10
)

// Judge compares a candidate's text list against a project's target list
// and returns an integer 0..10 reflecting synonym-aware overlap. It must
// be treated as slow, failing and non-deterministic across calls; callers
// own timeouts and degrade to 0 on error.
type Judge interface {
	Compare(ctx context.Context, candidate, target []string, hint string) (int, error)
}
