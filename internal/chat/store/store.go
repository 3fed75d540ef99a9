// internal/chat/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/common/metrics"
	"zone-platform/internal/models"
)

// Storage key suffixes for the three persisted state slices. Each slice is
// written independently and as a whole: no partial updates.
const (
	keyMessages = "zone_chat_messages"
	keyPosition = "zone_chat_position"
	keyIsOpen   = "zone_chat_is_open"
)

// Store persists per-session chat state in Redis as three JSON values.
// Reads degrade to defaults when a key is missing or holds corrupt JSON;
// write failures are reported so the caller can keep serving from memory.
type Store struct {
	rdb    redis.Cmdable
	logger logger.Logger
}

func New(rdb redis.Cmdable, log logger.Logger) *Store {
	return &Store{
		rdb:    rdb,
		logger: log.With(map[string]interface{}{"component": "chat-store"}),
	}
}

func sliceKey(sessionID, suffix string) string {
	return fmt.Sprintf("chat:%s:%s", sessionID, suffix)
}

// LoadMessages returns the persisted transcript, or an empty one when the key
// is missing or unreadable.
func (s *Store) LoadMessages(ctx context.Context, sessionID string) []models.ChatMessage {
	raw, err := s.rdb.Get(ctx, sliceKey(sessionID, keyMessages)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("transcript load failed, starting empty", map[string]interface{}{
				"sessionId": sessionID,
				"error":     err.Error(),
			})
		}
		return nil
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		s.logger.Warn("corrupt transcript discarded", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return nil
	}
	return messages
}

// SaveMessages overwrites the whole persisted transcript.
func (s *Store) SaveMessages(ctx context.Context, sessionID string, messages []models.ChatMessage) error {
	return s.saveSlice(ctx, sessionID, keyMessages, messages)
}

// DeleteMessages removes the persisted transcript, used by clear.
func (s *Store) DeleteMessages(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sliceKey(sessionID, keyMessages)).Err(); err != nil {
		metrics.StateWriteFailures.WithLabelValues(keyMessages).Inc()
		return apperrors.NewStateWriteFailedError(keyMessages, err)
	}
	return nil
}

// LoadPosition returns the persisted window position, or the given default
// when missing or unreadable.
func (s *Store) LoadPosition(ctx context.Context, sessionID string, fallback models.ChatPosition) models.ChatPosition {
	raw, err := s.rdb.Get(ctx, sliceKey(sessionID, keyPosition)).Result()
	if err != nil {
		return fallback
	}
	var pos models.ChatPosition
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		s.logger.Warn("corrupt position discarded", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return fallback
	}
	return pos
}

// SavePosition overwrites the persisted window position.
func (s *Store) SavePosition(ctx context.Context, sessionID string, pos models.ChatPosition) error {
	return s.saveSlice(ctx, sessionID, keyPosition, pos)
}

// LoadIsOpen returns the persisted open flag, defaulting to closed.
func (s *Store) LoadIsOpen(ctx context.Context, sessionID string) bool {
	raw, err := s.rdb.Get(ctx, sliceKey(sessionID, keyIsOpen)).Result()
	if err != nil {
		return false
	}
	var open bool
	if err := json.Unmarshal([]byte(raw), &open); err != nil {
		return false
	}
	return open
}

// SaveIsOpen overwrites the persisted open flag.
func (s *Store) SaveIsOpen(ctx context.Context, sessionID string, open bool) error {
	return s.saveSlice(ctx, sessionID, keyIsOpen, open)
}

func (s *Store) saveSlice(ctx context.Context, sessionID, suffix string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.StateWriteFailures.WithLabelValues(suffix).Inc()
		return apperrors.NewStateWriteFailedError(suffix, err)
	}
	if err := s.rdb.Set(ctx, sliceKey(sessionID, suffix), data, 0).Err(); err != nil {
		metrics.StateWriteFailures.WithLabelValues(suffix).Inc()
		s.logger.Error("state write failed", map[string]interface{}{
			"sessionId": sessionID,
			"slice":     suffix,
			"error":     err.Error(),
		})
		return apperrors.NewStateWriteFailedError(suffix, err)
	}
	return nil
}
