package judge

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingAPIKey  = errors.New("gemini api key is required")
	ErrEmptyPrompt    = errors.New("prompt must not be empty")
	ErrEmptyResponse  = errors.New("gemini api returned empty response")
	ErrMalformedScore = errors.New("judge response did not contain a score")
	ErrNotInitialized = errors.New("gemini judge is not initialized")
)
