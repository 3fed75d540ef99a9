// internal/interview/session/controller.go
package session

import (
	"time"

	"github.com/google/uuid"

	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/common/metrics"
	"zone-platform/internal/interview/catalog"
	"zone-platform/internal/interview/scoring"
	"zone-platform/internal/models"
)

// Snapshot is the externally visible view of a session, taken under its lock.
type Snapshot struct {
	SessionID     string           `json:"sessionId"`
	State         State            `json:"state"`
	QuestionIndex int              `json:"questionIndex"`
	QuestionCount int              `json:"questionCount"`
	CanGoBack     bool             `json:"canGoBack"`
	Progress      int              `json:"progress"`
	Question      *models.Question `json:"question,omitempty"`
}

// Controller drives interview sessions through the question bank: select
// advances (after the configured feedback delay), back truncates, restart
// resets. Scoring happens only when the last question has been answered.
type Controller struct {
	catalog      *catalog.Catalog
	engine       *scoring.Engine
	store        *Store
	advanceDelay time.Duration
	log          logger.Logger
}

func NewController(cat *catalog.Catalog, store *Store, advanceDelay time.Duration, log logger.Logger) *Controller {
	return &Controller{
		catalog:      cat,
		engine:       scoring.NewEngine(cat),
		store:        store,
		advanceDelay: advanceDelay,
		log:          log,
	}
}

// Start creates a fresh session positioned at the first question.
func (c *Controller) Start() Snapshot {
	s := &Session{
		ID:    uuid.New().String(),
		State: StateAsking,
	}
	s.touch()
	c.store.Put(s)

	c.log.Info("interview session started", map[string]interface{}{"session_id": s.ID})
	return c.snapshot(s)
}

// Get returns the current view of a session.
func (c *Controller) Get(id string) (Snapshot, error) {
	s, ok := c.store.Get(id)
	if !ok {
		return Snapshot{}, apperrors.NewSessionNotFoundError(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.snapshotLocked(s), nil
}

// Select records an answer for the current question. The selection is
// validated against the question's own options; while the advance delay is
// running further selects are rejected rather than queued. With a zero delay
// the advance happens synchronously.
func (c *Controller) Select(id, optionID string) (Snapshot, error) {
	s, ok := c.store.Get(id)
	if !ok {
		return Snapshot{}, apperrors.NewSessionNotFoundError(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateAsking {
		return Snapshot{}, apperrors.NewInterviewCompleteError()
	}
	if s.pending {
		return Snapshot{}, apperrors.NewAnswerPendingError()
	}
	if !c.catalog.OptionBelongs(s.QuestionIndex, optionID) {
		return Snapshot{}, apperrors.NewInvalidAnswerError(optionID)
	}

	s.Answers = append(s.Answers, optionID)
	s.touch()

	if c.advanceDelay <= 0 {
		c.advanceLocked(s)
		return c.snapshotLocked(s), nil
	}

	s.pending = true
	time.AfterFunc(c.advanceDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.advanceLocked(s)
	})
	return c.snapshotLocked(s), nil
}

// advanceLocked moves to the next question, or to the results screen when the
// last question was just answered. Caller holds s.mu.
func (c *Controller) advanceLocked(s *Session) {
	s.pending = false
	if s.QuestionIndex >= c.catalog.QuestionCount()-1 {
		s.State = StateShowingResults
		result := c.engine.Score(s.Answers)
		metrics.InterviewsCompleted.WithLabelValues(result.TopCategory).Inc()
		c.log.Info("interview completed", map[string]interface{}{
			"session_id":   s.ID,
			"top_category": result.TopCategory,
		})
		return
	}
	s.QuestionIndex++
}

// Back returns to the previous question, discarding its recorded answer so a
// re-answer replaces rather than double-counts it.
func (c *Controller) Back(id string) (Snapshot, error) {
	s, ok := c.store.Get(id)
	if !ok {
		return Snapshot{}, apperrors.NewSessionNotFoundError(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateAsking || s.QuestionIndex == 0 || s.pending {
		return Snapshot{}, apperrors.NewCannotGoBackError()
	}

	s.QuestionIndex--
	s.Answers = s.Answers[:s.QuestionIndex]
	s.touch()
	return c.snapshotLocked(s), nil
}

// Restart clears all answers and returns the session to the first question.
// It is valid from any state, including the results screen.
func (c *Controller) Restart(id string) (Snapshot, error) {
	s, ok := c.store.Get(id)
	if !ok {
		return Snapshot{}, apperrors.NewSessionNotFoundError(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.State = StateAsking
	s.QuestionIndex = 0
	s.Answers = nil
	s.pending = false
	s.touch()

	c.log.Info("interview session restarted", map[string]interface{}{"session_id": s.ID})
	return c.snapshotLocked(s), nil
}

// Result scores the completed session. Before the results screen is reached
// the result is not available.
func (c *Controller) Result(id string) (models.FitResult, error) {
	s, ok := c.store.Get(id)
	if !ok {
		return models.FitResult{}, apperrors.NewSessionNotFoundError(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateShowingResults {
		return models.FitResult{}, apperrors.NewInterviewIncompleteError()
	}
	return c.engine.Score(s.Answers), nil
}

func (c *Controller) snapshot(s *Session) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.snapshotLocked(s)
}

// snapshotLocked builds the external view. Caller holds s.mu.
func (c *Controller) snapshotLocked(s *Session) Snapshot {
	snap := Snapshot{
		SessionID:     s.ID,
		State:         s.State,
		QuestionIndex: s.QuestionIndex,
		QuestionCount: c.catalog.QuestionCount(),
		CanGoBack:     s.State == StateAsking && s.QuestionIndex > 0 && !s.pending,
		Progress:      (s.QuestionIndex + 1) * 100 / c.catalog.QuestionCount(),
	}
	if s.State == StateAsking {
		if q, ok := c.catalog.Question(s.QuestionIndex); ok {
			snap.Question = &q
		}
	}
	return snap
}
