package models

// MessageRole identifies who produced a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one entry in a session transcript. The transcript is
// append-only and scoped to the whole session, not per zone.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"`
}

// ZoneConfig describes the AI persona of the currently active zone.
// ZoneID is empty when no zone is selected (the generic assistant).
type ZoneConfig struct {
	ZoneID       string `json:"zoneId"`
	ZoneName     string `json:"zoneName"`
	AIRole       string `json:"aiRole"`
	Tone         string `json:"tone"`
	SystemPrompt string `json:"systemPrompt"`
}

// ChatPosition is the top-left screen coordinate of the floating chat window.
type ChatPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Viewport is the client-reported screen size used for position clamping.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
