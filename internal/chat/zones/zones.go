// internal/chat/zones/zones.go
package zones

import (
	"fmt"

	"zone-platform/internal/models"
)

// DefaultZoneID is the sentinel for "no zone selected"; the assistant falls
// back to the generic navigator persona.
const DefaultZoneID = ""

// DefaultZone is the persona used before any zone is entered.
func DefaultZone() models.ZoneConfig {
	return models.ZoneConfig{
		ZoneID:   DefaultZoneID,
		ZoneName: "ZONE",
		AIRole:   "Zone Assistant",
		Tone:     "calm, supportive, friendly",
		SystemPrompt: `You are a helpful zone assistant. Be warm and casual.
Keep responses SHORT (1-2 sentences). Help users navigate the platform.
Be friendly and approachable. Avoid being robotic or formal.`,
	}
}

// configurations maps zone ids to their fixed personas. Each zone pins the
// assistant's name, role, tone, and system prompt so the voice is consistent
// within a zone.
var configurations = map[string]models.ZoneConfig{
	"reading": {
		ZoneID:   "reading",
		ZoneName: "Reading Zone",
		AIRole:   "Calm Reading Companion",
		Tone:     "calm, patient, encouraging",
		SystemPrompt: `You are a calm reading companion. Speak casually and warmly, like a friend who loves books.
Keep responses SHORT (1-3 sentences). Be supportive about reading speed and comprehension.
Avoid robotic language. Use natural conversation. Never be formal or long-winded unless asked.`,
	},
	"speaking": {
		ZoneID:   "speaking",
		ZoneName: "Speaking Zone",
		AIRole:   "Friendly Conversation Partner",
		Tone:     "friendly, warm, relaxed",
		SystemPrompt: `You are a friendly conversation partner. Talk naturally and casually.
Keep responses BRIEF (1-2 sentences). Encourage speaking practice gently.
Be warm and supportive. Make the user feel comfortable. Avoid long paragraphs.`,
	},
	"writing": {
		ZoneID:   "writing",
		ZoneName: "Writing Zone",
		AIRole:   "Relaxed Writing Coach",
		Tone:     "creative, supportive, laid-back",
		SystemPrompt: `You are a relaxed writing coach. Be casual and creative.
Keep responses SHORT (1-3 sentences). Focus on ideas, not perfection.
Be encouraging and non-judgmental. Speak like a supportive friend, not a teacher.`,
	},
	"memory": {
		ZoneID:   "memory",
		ZoneName: "Memory Zone",
		AIRole:   "Gentle Recall Guide",
		Tone:     "gentle, playful, patient",
		SystemPrompt: `You are a gentle guide for memory exercises. Be playful and patient.
Keep responses VERY SHORT (1-2 sentences). Make memory fun, not stressful.
Be casual and warm. Celebrate small wins. Never pressure the user.`,
	},
	"games": {
		ZoneID:   "games",
		ZoneName: "Game Zone",
		AIRole:   "Playful Game Partner",
		Tone:     "playful, light, fun",
		SystemPrompt: `You are a playful game partner. Keep things light and fun.
Keep responses SUPER SHORT (1-2 sentences). Be casual and playful.
Make games enjoyable, not competitive. Speak naturally, like playing with a friend.`,
	},
	"business": {
		ZoneID:   "business",
		ZoneName: "Business Ideas",
		AIRole:   "Casual Idea Brainstormer",
		Tone:     "insightful, casual, supportive",
		SystemPrompt: `You are a casual brainstorming buddy for business ideas. Be insightful but relaxed.
Keep responses SHORT (2-3 sentences). Help explore ideas without pressure.
Be supportive and realistic. Speak casually, like chatting over coffee.`,
	},
}

// Lookup resolves a zone id to its persona. Empty or unknown ids resolve to
// the default zone.
func Lookup(zoneID string) models.ZoneConfig {
	if cfg, ok := configurations[zoneID]; ok {
		return cfg
	}
	return DefaultZone()
}

// Known reports whether the id names a configured zone.
func Known(zoneID string) bool {
	_, ok := configurations[zoneID]
	return ok
}

// IDs returns the configured zone ids.
func IDs() []string {
	ids := make([]string, 0, len(configurations))
	for id := range configurations {
		ids = append(ids, id)
	}
	return ids
}

// genericWelcome greets a user who opens the chat before entering any zone.
const genericWelcome = "Hey there! Pick a zone and let's get started. I'm here to help! 👋"

// welcomePools hold the per-zone opening lines; one is picked at random when
// the chat opens onto an empty transcript.
var welcomePools = map[string][]string{
	"reading": {
		"Hey! Ready to read something interesting?",
		"Welcome to Reading Zone! What catches your eye?",
		"Let's find something good to read together!",
	},
	"speaking": {
		"Hey! Want to chat about anything?",
		"Welcome! Let's practice some conversation.",
		"Ready to talk? I'm all ears!",
	},
	"writing": {
		"Hey! Feeling creative today?",
		"Welcome to Writing Zone! Got any ideas brewing?",
		"Let's write something fun together!",
	},
	"memory": {
		"Hey! Ready for some brain games?",
		"Welcome! Let's make memory practice fun.",
		"Ready to flex that memory?",
	},
	"games": {
		"Hey! Let's play something!",
		"Welcome to Game Zone! What sounds fun?",
		"Ready for some wordplay?",
	},
	"business": {
		"Hey! Got any cool ideas today?",
		"Welcome! Let's brainstorm something awesome.",
		"Ready to explore some business ideas?",
	},
}

// WelcomePool returns the candidate welcome lines for a zone. The default
// zone has a single fixed greeting; unknown zone ids borrow the reading pool.
func WelcomePool(zoneID string) []string {
	if zoneID == DefaultZoneID {
		return []string{genericWelcome}
	}
	if pool, ok := welcomePools[zoneID]; ok {
		return pool
	}
	return welcomePools["reading"]
}

// transitionTemplates greet the user when switching between zones; %s is the
// destination zone name.
var transitionTemplates = []string{
	"Hey! Switched to %s. What's up?",
	"Cool, %s now. What can I help with?",
	"Alright, we're in %s. Ready when you are!",
	"%s mode activated. How can I help?",
}

// TransitionGreetings returns the fixed greeting set interpolated with the
// destination zone name.
func TransitionGreetings(zoneName string) []string {
	out := make([]string, len(transitionTemplates))
	for i, tmpl := range transitionTemplates {
		out[i] = fmt.Sprintf(tmpl, zoneName)
	}
	return out
}

// FallbackResponses are returned verbatim when generation fails; the chat
// never surfaces a transport error to the user.
func FallbackResponses() []string {
	return []string{
		"Hmm, lost my train of thought. What were you saying?",
		"My brain glitched for a sec. Can you say that again?",
		"Connection hiccup! Mind repeating that?",
		"Oops, didn't catch that. Try again?",
	}
}

// BlankResponse replaces an empty generation result.
const BlankResponse = "I'm here! What's on your mind?"
