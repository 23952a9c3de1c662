package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrNotAuthorized is returned when the requester does not belong to
	// the project's owning organization.
	ErrNotAuthorized = errors.New("requester is not authorized for this project")
)
