package usecases

import "errors"

var (
	// ErrEmptyEntry rejects an entry with neither text nor mood. The message
	// is shown to the user as is.
	ErrEmptyEntry = errors.New("please write something or select a mood before saving")

	ErrInvalidMood = errors.New("mood must be between 1 and 10")

	ErrInvalidEvent = errors.New("invalid event")

	// ErrPersist marks a failed save. The in-memory diary already holds the
	// change, so callers treat it as a warning.
	ErrPersist = errors.New("failed to save diary data")
)
