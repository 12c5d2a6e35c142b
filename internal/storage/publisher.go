package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"student_diary/internal/models"
)

// ErrPublisherUnavailable is returned while the breaker rejects calls after
// repeated publish failures.
var ErrPublisherUnavailable = errors.New("calendar publisher temporarily unavailable")

type publisher interface {
	PublishEvent(ctx context.Context, event models.CalendarEvent) error
}

type GuardSettings struct {
	// PerSecond caps publish calls; bursts of one.
	PerSecond float64
	// MaxFailures consecutive failures open the breaker.
	MaxFailures uint32
	// Cooldown is how long the breaker stays open before a trial call.
	Cooldown time.Duration
}

// GuardedPublisher throttles calls to a calendar publisher and stops calling
// it for a while after repeated failures. An unauthorized calendar is not
// counted as a failure.
type GuardedPublisher struct {
	next    publisher
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewGuardedPublisher(next publisher, s GuardSettings) *GuardedPublisher {
	maxFailures := s.MaxFailures
	if maxFailures == 0 {
		maxFailures = 3
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "calendar-publisher",
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrCalendarNotAuthorized)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("publisher circuit changed state", "name", name, "from", from.String(), "to", to.String())
		},
	})

	limit := rate.Inf
	if s.PerSecond > 0 {
		limit = rate.Limit(s.PerSecond)
	}

	return &GuardedPublisher{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
		breaker: breaker,
	}
}

func (gp *GuardedPublisher) PublishEvent(ctx context.Context, event models.CalendarEvent) error {
	if err := gp.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("publisher: %w", err)
	}

	_, err := gp.breaker.Execute(func() (interface{}, error) {
		return nil, gp.next.PublishEvent(ctx, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrPublisherUnavailable, err)
	}
	return err
}
