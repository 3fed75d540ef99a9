// internal/chat/zones/zones_test.go
package zones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	cfg := Lookup("reading")
	assert.Equal(t, "Reading Zone", cfg.ZoneName)
	assert.Equal(t, "Calm Reading Companion", cfg.AIRole)
	assert.NotEmpty(t, cfg.SystemPrompt)

	cfg = Lookup("")
	assert.Equal(t, DefaultZoneID, cfg.ZoneID)
	assert.Equal(t, "ZONE", cfg.ZoneName)

	cfg = Lookup("unknown-zone")
	assert.Equal(t, DefaultZoneID, cfg.ZoneID)
}

func TestKnownAndIDs(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, 6)
	for _, id := range []string{"reading", "speaking", "writing", "memory", "games", "business"} {
		assert.True(t, Known(id), id)
	}
	assert.False(t, Known(""))
	assert.False(t, Known("cooking"))
}

func TestWelcomePool(t *testing.T) {
	for _, id := range IDs() {
		assert.Len(t, WelcomePool(id), 3, id)
	}

	generic := WelcomePool(DefaultZoneID)
	require.Len(t, generic, 1)
	assert.Contains(t, generic[0], "Pick a zone")

	// Unknown ids borrow the reading pool rather than panicking.
	assert.Equal(t, WelcomePool("reading"), WelcomePool("mystery"))
}

func TestTransitionGreetings(t *testing.T) {
	greetings := TransitionGreetings("Game Zone")
	require.Len(t, greetings, 4)
	for _, g := range greetings {
		assert.Contains(t, g, "Game Zone")
	}
	assert.Equal(t, "Hey! Switched to Game Zone. What's up?", greetings[0])
	assert.Equal(t, "Game Zone mode activated. How can I help?", greetings[3])
}

func TestFallbackResponses(t *testing.T) {
	fallbacks := FallbackResponses()
	require.Len(t, fallbacks, 4)
	seen := make(map[string]bool)
	for _, f := range fallbacks {
		assert.NotEmpty(t, f)
		seen[f] = true
	}
	assert.Len(t, seen, 4, "fallbacks are distinct")
}
