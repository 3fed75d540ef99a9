// internal/chat/gateway/gateway_test.go
package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-platform/internal/chat/zones"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestGateway(t *testing.T, baseURL string) *Gateway {
	t.Helper()
	return New(&Config{
		BaseURL:       baseURL,
		Model:         "gemini-2.0-flash-exp",
		Timeout:       2 * time.Second,
		MaxRetries:    2,
		HistoryWindow: 6,
	}, logger.NewTestLogger(t))
}

func textServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "` + text + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func readingZone() models.ZoneConfig {
	return zones.Lookup("reading")
}

// ==========================
// Core Functionality Tests
// ==========================

func TestGateway_Generate_Success(t *testing.T) {
	srv := textServer(t, "Sounds like a great book!")
	g := newTestGateway(t, srv.URL)

	text := g.Generate(context.Background(), readingZone(), "I just finished a novel", nil)
	assert.Equal(t, "Sounds like a great book!", text)
}

func TestGateway_Generate_BlankTextGetsPlaceholder(t *testing.T) {
	srv := textServer(t, "   ")
	g := newTestGateway(t, srv.URL)

	text := g.Generate(context.Background(), readingZone(), "hello", nil)
	assert.Equal(t, zones.BlankResponse, text)
}

func TestGateway_Generate_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"text": "third time lucky"}`))
	}))
	t.Cleanup(srv.Close)

	g := newTestGateway(t, srv.URL)
	text := g.Generate(context.Background(), readingZone(), "hi", nil)

	assert.Equal(t, "third time lucky", text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGateway_Generate_FallbackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	g := newTestGateway(t, srv.URL)
	text := g.Generate(context.Background(), readingZone(), "hello?", nil)

	assert.Contains(t, zones.FallbackResponses(), text, "failure must yield a member of the fixed fallback set")
}

func TestGateway_Generate_FallbackOnUnreachableHost(t *testing.T) {
	g := newTestGateway(t, "http://127.0.0.1:1")
	g.config.MaxRetries = 0

	for i := 0; i < len(zones.FallbackResponses()); i++ {
		idx := i
		g.WithPicker(func(n int) int { return idx % n })
		text := g.Generate(context.Background(), readingZone(), "hello?", nil)
		assert.Equal(t, zones.FallbackResponses()[idx], text)
	}
}

func TestGateway_Generate_TimeoutFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"text": "too late"}`))
	}))
	t.Cleanup(srv.Close)

	g := newTestGateway(t, srv.URL)
	g.config.Timeout = 50 * time.Millisecond
	g.config.MaxRetries = 0

	text := g.Generate(context.Background(), readingZone(), "hello?", nil)
	assert.Contains(t, zones.FallbackResponses(), text)
}

// ==========================
// Prompt Construction Tests
// ==========================

func TestBuildPrompt_Envelope(t *testing.T) {
	zone := readingZone()
	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "any recommendations?"},
		{Role: models.RoleAssistant, Content: "How about a short story?"},
	}

	prompt := BuildPrompt(zone, "sure, which one?", history, 6)

	assert.True(t, strings.HasPrefix(prompt, zone.SystemPrompt))
	assert.Contains(t, prompt, "Current Zone: Reading Zone")
	assert.Contains(t, prompt, "Your Role: Calm Reading Companion")
	assert.Contains(t, prompt, "Tone: calm, patient, encouraging")
	assert.Contains(t, prompt, "User: any recommendations?")
	assert.Contains(t, prompt, "Calm Reading Companion: How about a short story?")
	assert.Contains(t, prompt, "User: sure, which one?")
	assert.True(t, strings.HasSuffix(prompt, "Calm Reading Companion:"), "prompt must end with the assistant-role cue")
}

func TestBuildPrompt_HistoryWindow(t *testing.T) {
	zone := readingZone()
	history := make([]models.ChatMessage, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, models.ChatMessage{
			Role:    models.RoleUser,
			Content: "message-" + string(rune('0'+i)),
		})
	}

	prompt := BuildPrompt(zone, "latest", history, 6)

	assert.NotContains(t, prompt, "message-3", "older messages fall out of the window")
	assert.Contains(t, prompt, "message-4")
	assert.Contains(t, prompt, "message-9")
}

func TestBuildPrompt_EmptyHistory(t *testing.T) {
	prompt := BuildPrompt(readingZone(), "first message", nil, 6)

	require.Contains(t, prompt, "Recent Conversation:\n\n")
	assert.Contains(t, prompt, "User: first message")
}
