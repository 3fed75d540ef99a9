// internal/chat/session/manager_test.go
package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-platform/internal/chat/store"
	"zone-platform/internal/chat/zones"
	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

// stubGenerator returns a canned reply, optionally blocking until released so
// tests can hold a generation in flight.
type stubGenerator struct {
	reply string
	block chan struct{}

	mu    sync.Mutex
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, zone models.ZoneConfig, userMessage string, history []models.ChatMessage) string {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.block != nil {
		<-g.block
	}
	return g.reply
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func testConfig() Config {
	return Config{
		WindowWidth:    400,
		WindowHeight:   560,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
	}
}

func newTestManager(t *testing.T, gen *stubGenerator) (*Manager, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	st := store.New(rdb, logger.NewTestLogger(t))
	m := NewManager(st, gen, testConfig(), logger.NewTestLogger(t))
	return m, rdb
}

// ==========================
// Transcript Tests
// ==========================

func TestManager_AppendAndClear(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})
	ctx := context.Background()

	_, err := m.AppendMessage(ctx, "sess-1", models.RoleUser, "hello")
	require.NoError(t, err)
	_, err = m.AppendMessage(ctx, "sess-1", models.RoleAssistant, "hi there")
	require.NoError(t, err)

	snap := m.Get(ctx, "sess-1")
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, models.RoleUser, snap.Messages[0].Role)

	_, err = m.SetOpen(ctx, "sess-1", true)
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx, "sess-1"))
	snap = m.Get(ctx, "sess-1")
	assert.Empty(t, snap.Messages)
	assert.True(t, snap.IsOpen, "clear only touches the transcript")
}

func TestManager_StateSurvivesRehydration(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	m, rdb := newTestManager(t, gen)
	ctx := context.Background()

	_, err := m.AppendMessage(ctx, "sess-1", models.RoleUser, "persist me")
	require.NoError(t, err)
	_, err = m.SetPosition(ctx, "sess-1", models.ChatPosition{X: 40, Y: 60}, models.Viewport{Width: 1920, Height: 1080})
	require.NoError(t, err)
	_, err = m.SetOpen(ctx, "sess-1", true)
	require.NoError(t, err)

	// A fresh manager over the same store sees the persisted state.
	st := store.New(rdb, logger.NewTestLogger(t))
	m2 := NewManager(st, gen, testConfig(), logger.NewTestLogger(t))

	snap := m2.Get(ctx, "sess-1")
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, "persist me", snap.Messages[0].Content)
	assert.Equal(t, models.ChatPosition{X: 40, Y: 60}, snap.Position)
	assert.True(t, snap.IsOpen)
}

// ==========================
// Zone Switch Tests
// ==========================

func TestManager_ZoneSwitchGreeting(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})
	m.WithPicker(func(n int) int { return 0 })
	ctx := context.Background()

	_, err := m.SetActiveZone(ctx, "sess-1", "reading")
	require.NoError(t, err)
	snap, err := m.SetOpen(ctx, "sess-1", true)
	require.NoError(t, err)
	opened := len(snap.Messages)

	snap, err = m.SetActiveZone(ctx, "sess-1", "games")
	require.NoError(t, err)

	require.Len(t, snap.Messages, opened+1, "exactly one greeting appended")
	last := snap.Messages[len(snap.Messages)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Contains(t, zones.TransitionGreetings("Game Zone"), last.Content)
	assert.Equal(t, "games", snap.Zone.ZoneID)
}

func TestManager_ZoneSwitchSilentCases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m *Manager, ctx context.Context)
		zone  string
	}{
		{
			name: "while closed",
			setup: func(t *testing.T, m *Manager, ctx context.Context) {
				_, err := m.SetActiveZone(ctx, "sess-1", "reading")
				require.NoError(t, err)
			},
			zone: "games",
		},
		{
			name: "from the default zone",
			setup: func(t *testing.T, m *Manager, ctx context.Context) {
				_, err := m.SetOpen(ctx, "sess-1", true)
				require.NoError(t, err)
			},
			zone: "games",
		},
		{
			name: "same zone again",
			setup: func(t *testing.T, m *Manager, ctx context.Context) {
				_, err := m.SetActiveZone(ctx, "sess-1", "games")
				require.NoError(t, err)
				_, err = m.SetOpen(ctx, "sess-1", true)
				require.NoError(t, err)
			},
			zone: "games",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, &stubGenerator{reply: "ok"})
			ctx := context.Background()
			tt.setup(t, m, ctx)

			before := len(m.Get(ctx, "sess-1").Messages)
			snap, err := m.SetActiveZone(ctx, "sess-1", tt.zone)
			require.NoError(t, err)
			assert.Len(t, snap.Messages, before, "no greeting expected")
		})
	}
}

func TestManager_UnknownZoneFallsBackToDefault(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})

	snap, err := m.SetActiveZone(context.Background(), "sess-1", "cooking")
	require.NoError(t, err)
	assert.Equal(t, zones.DefaultZoneID, snap.Zone.ZoneID)
	assert.Equal(t, "Zone Assistant", snap.Zone.AIRole)
}

// ==========================
// Position Tests
// ==========================

func TestManager_PositionClamping(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})
	ctx := context.Background()

	tests := []struct {
		name     string
		pos      models.ChatPosition
		viewport models.Viewport
		want     models.ChatPosition
	}{
		{
			name:     "negative x and huge y",
			pos:      models.ChatPosition{X: -50, Y: 99999},
			viewport: models.Viewport{Width: 1024, Height: 768},
			want:     models.ChatPosition{X: 0, Y: 768 - 560},
		},
		{
			name:     "inside bounds untouched",
			pos:      models.ChatPosition{X: 100, Y: 100},
			viewport: models.Viewport{Width: 1920, Height: 1080},
			want:     models.ChatPosition{X: 100, Y: 100},
		},
		{
			name:     "viewport smaller than window pins to origin",
			pos:      models.ChatPosition{X: 300, Y: 300},
			viewport: models.Viewport{Width: 300, Height: 400},
			want:     models.ChatPosition{X: 0, Y: 0},
		},
		{
			name:     "zero viewport uses configured default",
			pos:      models.ChatPosition{X: 99999, Y: 99999},
			viewport: models.Viewport{},
			want:     models.ChatPosition{X: 1920 - 400, Y: 1080 - 560},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.SetPosition(ctx, "sess-1", tt.pos, tt.viewport)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManager_DefaultPositionBottomRight(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})

	snap := m.Get(context.Background(), "sess-1")
	assert.Equal(t, models.ChatPosition{X: 1920 - 420, Y: 1080 - 570}, snap.Position)
}

// ==========================
// Open / Welcome Tests
// ==========================

func TestManager_OpenSeedsWelcome(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})
	m.WithPicker(func(n int) int { return 1 % n })
	ctx := context.Background()

	_, err := m.SetActiveZone(ctx, "sess-1", "writing")
	require.NoError(t, err)

	snap, err := m.SetOpen(ctx, "sess-1", true)
	require.NoError(t, err)

	require.Len(t, snap.Messages, 1)
	assert.Equal(t, models.RoleAssistant, snap.Messages[0].Role)
	assert.Contains(t, zones.WelcomePool("writing"), snap.Messages[0].Content)
}

func TestManager_OpenWithoutZoneUsesGenericWelcome(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})

	snap, err := m.SetOpen(context.Background(), "sess-1", true)
	require.NoError(t, err)

	require.Len(t, snap.Messages, 1)
	assert.Equal(t, zones.WelcomePool(zones.DefaultZoneID)[0], snap.Messages[0].Content)
}

func TestManager_ReopenDoesNotRepeatWelcome(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})
	ctx := context.Background()

	snap, err := m.SetOpen(ctx, "sess-1", true)
	require.NoError(t, err)
	require.Len(t, snap.Messages, 1)

	_, err = m.SetOpen(ctx, "sess-1", false)
	require.NoError(t, err)
	snap, err = m.SetOpen(ctx, "sess-1", true)
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 1, "non-empty transcript gets no second welcome")
}

// ==========================
// Send Tests
// ==========================

func TestManager_SendAppendsBothSides(t *testing.T) {
	gen := &stubGenerator{reply: "nice to meet you!"}
	m, _ := newTestManager(t, gen)
	ctx := context.Background()

	msg, err := m.Send(ctx, "sess-1", "hi, I'm new here")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, msg.Role)
	assert.Equal(t, "nice to meet you!", msg.Content)

	snap := m.Get(ctx, "sess-1")
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, models.RoleUser, snap.Messages[0].Role)
	assert.Equal(t, "hi, I'm new here", snap.Messages[0].Content)
	assert.Equal(t, 1, gen.callCount())
}

func TestManager_SendEmptyPromptRejected(t *testing.T) {
	m, _ := newTestManager(t, &stubGenerator{reply: "ok"})

	_, err := m.Send(context.Background(), "sess-1", "")
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodePromptRequired, stdErr.Code)
}

func TestManager_SendWhileInFlightRejected(t *testing.T) {
	gen := &stubGenerator{reply: "slow reply", block: make(chan struct{})}
	m, _ := newTestManager(t, gen)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := m.Send(ctx, "sess-1", "first")
		assert.NoError(t, err)
	}()

	require.Eventually(t, func() bool {
		return m.Get(ctx, "sess-1").IsLoading
	}, time.Second, 5*time.Millisecond)

	_, err := m.Send(ctx, "sess-1", "second")
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeGenerationInFlight, stdErr.Code)

	close(gen.block)
	<-done

	// The rejected send left no trace; the slow reply still landed.
	snap := m.Get(ctx, "sess-1")
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, "first", snap.Messages[0].Content)
	assert.Equal(t, "slow reply", snap.Messages[1].Content)
	assert.False(t, snap.IsLoading)
	assert.Equal(t, 1, gen.callCount())
}
