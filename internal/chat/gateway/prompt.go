// internal/chat/gateway/prompt.go
package gateway

import (
	"fmt"
	"strings"

	"zone-platform/internal/models"
)

// BuildPrompt assembles the full generation prompt: system prompt, zone
// header, the recent conversation window, the new user message, and the
// assistant-role cue the model completes after.
func BuildPrompt(zone models.ZoneConfig, userMessage string, history []models.ChatMessage, historyWindow int) string {
	if historyWindow > 0 && len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := zone.AIRole
		if m.Role == models.RoleUser {
			speaker = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, m.Content))
	}
	historyContext := strings.Join(lines, "\n")

	return fmt.Sprintf(`%s

Current Zone: %s
Your Role: %s
Tone: %s

Recent Conversation:
%s

User: %s

%s:`, zone.SystemPrompt, zone.ZoneName, zone.AIRole, zone.Tone, historyContext, userMessage, zone.AIRole)
}
