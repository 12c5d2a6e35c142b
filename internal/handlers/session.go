package handlers

import (
	"sync"

	"student_diary/internal/usecases"
)

// Session serialises requests onto the single-user diary, which is not
// safe for concurrent use.
type Session struct {
	mu    sync.Mutex
	diary *usecases.Diary
}

func NewSession(diary *usecases.Diary) *Session {
	return &Session{diary: diary}
}

func (s *Session) with(fn func(d *usecases.Diary)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.diary)
}
