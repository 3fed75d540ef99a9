// internal/interview/session/session.go
package session

import (
	"sync"
	"time"
)

// State is the phase of an interview session.
type State string

const (
	StateAsking         State = "asking"
	StateShowingResults State = "showing_results"
)

// Session is one interview attempt. Answers and QuestionIndex move in
// lock-step: selecting appends, going back truncates. The pending flag covers
// the visual-feedback window between a select and the actual advance, during
// which further selects are rejected.
type Session struct {
	mu sync.Mutex

	ID            string
	State         State
	QuestionIndex int
	Answers       []string
	LastActivity  time.Time

	pending bool
}

// IsExpired checks whether the session has been idle longer than ttl.
func (s *Session) IsExpired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.LastActivity) > ttl
}

func (s *Session) touch() {
	s.LastActivity = time.Now()
}
