// internal/interview/catalog/categories.go
package catalog

import "zone-platform/internal/models"

// DefaultCategories returns the five fit archetypes. Declaration order is
// significant: it is the tie-break order used by the scoring engine.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID:          "creator",
			Title:       "The Creator",
			Description: "You thrive on bringing ideas to life! Whether it's art, code, writing, or any other form of expression, you love the process of making something new.",
			Traits:      []string{"Imaginative", "Innovative", "Expressive", "Hands-on"},
			Color:       "#14b8a6",
			Icon:        "🎨",
		},
		{
			ID:          "explorer",
			Title:       "The Explorer",
			Description: "Your curiosity knows no bounds! You love learning new things, discovering hidden gems, and expanding your knowledge across various domains.",
			Traits:      []string{"Curious", "Adventurous", "Open-minded", "Knowledge-seeker"},
			Color:       "#6366f1",
			Icon:        "🔍",
		},
		{
			ID:          "helper",
			Title:       "The Helper",
			Description: "You find deep satisfaction in making a positive difference! Supporting others and contributing to their growth brings you genuine joy.",
			Traits:      []string{"Empathetic", "Supportive", "Generous", "Patient"},
			Color:       "#ec4899",
			Icon:        "💝",
		},
		{
			ID:          "analyzer",
			Title:       "The Analyzer",
			Description: "You excel at breaking down complex problems! Logic, data, and systematic thinking are your superpowers for understanding the world.",
			Traits:      []string{"Logical", "Detail-oriented", "Strategic", "Problem-solver"},
			Color:       "#8b5cf6",
			Icon:        "🧠",
		},
		{
			ID:          "socializer",
			Title:       "The Socializer",
			Description: "You thrive on human connection! Building relationships, sharing experiences, and bringing people together energizes you.",
			Traits:      []string{"Outgoing", "Collaborative", "Charismatic", "Team-player"},
			Color:       "#f59e0b",
			Icon:        "🤝",
		},
	}
}
