package usecases

import (
	"time"

	"student_diary/internal/models"
)

// Clock supplies the current time so date-dependent rules stay testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

func today(c Clock) models.Date {
	return models.DateOf(c.Now())
}
