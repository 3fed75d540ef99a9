// internal/chat/session/manager.go
package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"zone-platform/internal/chat/gateway"
	"zone-platform/internal/chat/store"
	"zone-platform/internal/chat/zones"
	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/common/metrics"
	"zone-platform/internal/models"
)

// Config holds the chat window geometry used for position defaulting and
// clamping.
type Config struct {
	WindowWidth    int
	WindowHeight   int
	ViewportWidth  int
	ViewportHeight int
}

// DefaultPosition is the bottom-right resting spot: the window plus a small
// margin inside the viewport.
func (c Config) DefaultPosition() models.ChatPosition {
	return models.ChatPosition{
		X: c.ViewportWidth - c.WindowWidth - 20,
		Y: c.ViewportHeight - c.WindowHeight - 10,
	}
}

// chatSession is the in-memory state of one chat session. All fields are
// guarded by mu; the generating flag rejects overlapping sends.
type chatSession struct {
	mu sync.Mutex

	id         string
	messages   []models.ChatMessage
	zone       models.ZoneConfig
	position   models.ChatPosition
	isOpen     bool
	generating bool
}

// Snapshot is the externally visible view of a chat session.
type Snapshot struct {
	SessionID string               `json:"sessionId"`
	Messages  []models.ChatMessage `json:"messages"`
	Zone      models.ZoneConfig    `json:"zone"`
	Position  models.ChatPosition  `json:"position"`
	IsOpen    bool                 `json:"isOpen"`
	IsLoading bool                 `json:"isLoading"`
}

// Manager owns chat sessions: the transcript, the active zone persona, the
// window position, and the open flag. Every mutation is mirrored to the store;
// a failed write is logged and the in-memory state keeps serving.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*chatSession

	store   *store.Store
	gateway gateway.Generator
	config  Config
	logger  logger.Logger

	// pick selects an index in [0, n); injectable so tests can pin which
	// welcome or transition line is chosen.
	pick func(n int) int
}

func NewManager(st *store.Store, gw gateway.Generator, cfg Config, log logger.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*chatSession),
		store:    st,
		gateway:  gw,
		config:   cfg,
		logger:   log.With(map[string]interface{}{"component": "chat-session"}),
		pick:     rand.Intn,
	}
}

// WithPicker overrides the random index picker.
func (m *Manager) WithPicker(pick func(n int) int) *Manager {
	m.pick = pick
	return m
}

// session returns the in-memory session, hydrating it from the store on first
// touch. Missing or corrupt persisted slices fall back to an empty transcript,
// the default bottom-right position, and a closed window.
func (m *Manager) session(ctx context.Context, sessionID string) *chatSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sessionID]; ok {
		return s
	}

	s := &chatSession{
		id:       sessionID,
		messages: m.store.LoadMessages(ctx, sessionID),
		zone:     zones.DefaultZone(),
		position: m.store.LoadPosition(ctx, sessionID, m.config.DefaultPosition()),
		isOpen:   m.store.LoadIsOpen(ctx, sessionID),
	}
	m.sessions[sessionID] = s
	return s
}

// Get returns the current view of a session, creating it on first access.
func (m *Manager) Get(ctx context.Context, sessionID string) Snapshot {
	s := m.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return m.snapshotLocked(s)
}

// AppendMessage adds a message to the transcript and persists it.
func (m *Manager) AppendMessage(ctx context.Context, sessionID string, role models.MessageRole, content string) (models.ChatMessage, error) {
	s := m.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := m.appendLocked(ctx, s, models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	})
	return msg, nil
}

// appendLocked appends and persists the whole transcript. Caller holds s.mu.
func (m *Manager) appendLocked(ctx context.Context, s *chatSession, msg models.ChatMessage) models.ChatMessage {
	s.messages = append(s.messages, msg)
	metrics.ChatMessagesAppended.WithLabelValues(string(msg.Role)).Inc()

	if err := m.store.SaveMessages(ctx, s.id, s.messages); err != nil {
		m.logger.Warn("transcript persist failed, serving from memory", map[string]interface{}{
			"sessionId": s.id,
			"error":     err.Error(),
		})
	}
	return msg
}

// Clear empties the transcript. Zone, position, and open flag are untouched.
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	s := m.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	return m.store.DeleteMessages(ctx, sessionID)
}

// SetActiveZone switches the session to the zone's persona. When the chat is
// open and this is a real switch between two named zones, a one-off greeting
// for the destination zone is appended to the transcript.
// Unknown zone ids resolve to the default persona.
func (m *Manager) SetActiveZone(ctx context.Context, sessionID, zoneID string) (Snapshot, error) {
	s := m.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.zone
	next := zones.Lookup(zoneID)
	s.zone = next

	if s.isOpen && next.ZoneID != zones.DefaultZoneID && prev.ZoneID != zones.DefaultZoneID && next.ZoneID != prev.ZoneID {
		greetings := zones.TransitionGreetings(next.ZoneName)
		m.appendLocked(ctx, s, models.ChatMessage{
			ID:        fmt.Sprintf("zone-switch-%d", time.Now().UnixMilli()),
			Role:      models.RoleAssistant,
			Content:   greetings[m.pick(len(greetings))],
			Timestamp: time.Now().UnixMilli(),
		})
	}
	return m.snapshotLocked(s), nil
}

// SetPosition moves the chat window, clamped so it stays fully inside the
// viewport. A zero viewport falls back to the configured default.
func (m *Manager) SetPosition(ctx context.Context, sessionID string, pos models.ChatPosition, viewport models.Viewport) (models.ChatPosition, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = models.Viewport{Width: m.config.ViewportWidth, Height: m.config.ViewportHeight}
	}

	s := m.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	maxX := viewport.Width - m.config.WindowWidth
	maxY := viewport.Height - m.config.WindowHeight
	clamped := models.ChatPosition{
		X: clamp(pos.X, 0, maxX),
		Y: clamp(pos.Y, 0, maxY),
	}
	s.position = clamped

	if err := m.store.SavePosition(ctx, sessionID, clamped); err != nil {
		m.logger.Warn("position persist failed, serving from memory", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
	}
	return clamped, nil
}

// clamp bounds v to [lo, hi]. The lower bound wins when hi < lo, which keeps
// the window pinned to the origin on viewports smaller than the window.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// SetOpen toggles the window. Opening onto an empty transcript seeds it with
// a welcome line for the active zone.
func (m *Manager) SetOpen(ctx context.Context, sessionID string, open bool) (Snapshot, error) {
	s := m.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	wasOpen := s.isOpen
	s.isOpen = open

	if open && !wasOpen && len(s.messages) == 0 {
		pool := zones.WelcomePool(s.zone.ZoneID)
		m.appendLocked(ctx, s, models.ChatMessage{
			ID:        fmt.Sprintf("welcome-%d", time.Now().UnixMilli()),
			Role:      models.RoleAssistant,
			Content:   pool[m.pick(len(pool))],
			Timestamp: time.Now().UnixMilli(),
		})
	}

	if err := m.store.SaveIsOpen(ctx, sessionID, open); err != nil {
		m.logger.Warn("open flag persist failed, serving from memory", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
	}
	return m.snapshotLocked(s), nil
}

// Send appends the user message, generates the assistant reply, and appends
// it. While a generation is running further sends are rejected, not queued.
// The reply is appended whenever it arrives, even if the caller has moved on.
func (m *Manager) Send(ctx context.Context, sessionID, content string) (models.ChatMessage, error) {
	if content == "" {
		return models.ChatMessage{}, apperrors.NewPromptRequiredError()
	}

	s := m.session(ctx, sessionID)

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return models.ChatMessage{}, apperrors.NewGenerationInFlightError()
	}
	s.generating = true

	m.appendLocked(ctx, s, models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	})
	zone := s.zone
	history := make([]models.ChatMessage, len(s.messages))
	copy(history, s.messages)
	s.mu.Unlock()

	// Generation runs without the session lock so reads and window moves
	// keep working; the gateway always returns text, never an error.
	reply := m.gateway.Generate(ctx, zone, content, history[:len(history)-1])

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	msg := m.appendLocked(ctx, s, models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UnixMilli(),
	})
	return msg, nil
}

// snapshotLocked builds the external view. Caller holds s.mu.
func (m *Manager) snapshotLocked(s *chatSession) Snapshot {
	messages := make([]models.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return Snapshot{
		SessionID: s.id,
		Messages:  messages,
		Zone:      s.zone,
		Position:  s.position,
		IsOpen:    s.isOpen,
		IsLoading: s.generating,
	}
}
