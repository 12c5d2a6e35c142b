package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_diary/internal/models"
)

type stubPublisher struct {
	err   error
	calls int
}

func (s *stubPublisher) PublishEvent(ctx context.Context, event models.CalendarEvent) error {
	s.calls++
	return s.err
}

func TestGuardedPublisherPassesThrough(t *testing.T) {
	t.Parallel()

	next := &stubPublisher{}
	gp := NewGuardedPublisher(next, GuardSettings{PerSecond: 1000, MaxFailures: 2, Cooldown: time.Minute})

	require.NoError(t, gp.PublishEvent(context.Background(), models.CalendarEvent{Title: "Exam"}))
	assert.Equal(t, 1, next.calls)
}

func TestGuardedPublisherOpensAfterFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("calendar api down")
	next := &stubPublisher{err: boom}
	gp := NewGuardedPublisher(next, GuardSettings{PerSecond: 1000, MaxFailures: 2, Cooldown: time.Minute})
	ctx := context.Background()

	assert.ErrorIs(t, gp.PublishEvent(ctx, models.CalendarEvent{}), boom)
	assert.ErrorIs(t, gp.PublishEvent(ctx, models.CalendarEvent{}), boom)

	err := gp.PublishEvent(ctx, models.CalendarEvent{})
	assert.ErrorIs(t, err, ErrPublisherUnavailable)
	assert.Equal(t, 2, next.calls, "open breaker must not call through")
}

func TestGuardedPublisherIgnoresUnauthorized(t *testing.T) {
	t.Parallel()

	next := &stubPublisher{err: ErrCalendarNotAuthorized}
	gp := NewGuardedPublisher(next, GuardSettings{MaxFailures: 1, Cooldown: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, gp.PublishEvent(ctx, models.CalendarEvent{}), ErrCalendarNotAuthorized)
	}
	assert.Equal(t, 3, next.calls)
}

func TestGuardedPublisherHonoursContext(t *testing.T) {
	t.Parallel()

	next := &stubPublisher{}
	gp := NewGuardedPublisher(next, GuardSettings{PerSecond: 0.001, Cooldown: time.Minute})

	require.NoError(t, gp.PublishEvent(context.Background(), models.CalendarEvent{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, gp.PublishEvent(ctx, models.CalendarEvent{}))
	assert.Equal(t, 1, next.calls)
}
