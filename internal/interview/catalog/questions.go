// internal/interview/catalog/questions.go
package catalog

import "zone-platform/internal/models"

// DefaultQuestions returns the built-in question bank. Question order is
// presentation order; option ids are unique across the whole bank.
func DefaultQuestions() []models.Question {
	return []models.Question{
		{
			ID:       "hobby",
			Question: "What's your favorite way to spend free time?",
			Subtitle: "Choose the one that sounds most appealing to you",
			Options: []models.Option{
				{ID: "create-something", Text: "Creating something new", Icon: "✨", Scores: map[string]int{"creator": 5, "explorer": 2}},
				{ID: "learn-new", Text: "Learning something new", Icon: "📚", Scores: map[string]int{"explorer": 5, "analyzer": 3}},
				{ID: "help-others", Text: "Helping friends or community", Icon: "🤲", Scores: map[string]int{"helper": 5, "socializer": 2}},
				{ID: "solve-puzzles", Text: "Solving puzzles or problems", Icon: "🧩", Scores: map[string]int{"analyzer": 5, "explorer": 2}},
				{ID: "hang-out", Text: "Hanging out with people", Icon: "🎉", Scores: map[string]int{"socializer": 5, "helper": 2}},
			},
		},
		{
			ID:       "content",
			Question: "What kind of content do you enjoy most?",
			Subtitle: "Pick your go-to type",
			Options: []models.Option{
				{ID: "tutorials", Text: "Tutorials & how-tos", Icon: "🎓", Scores: map[string]int{"explorer": 4, "analyzer": 3}},
				{ID: "creative-work", Text: "Creative works (art, music, stories)", Icon: "🎭", Scores: map[string]int{"creator": 5, "explorer": 2}},
				{ID: "inspiring-stories", Text: "Inspiring stories & testimonials", Icon: "💫", Scores: map[string]int{"helper": 4, "socializer": 3}},
				{ID: "analysis-data", Text: "Data, analysis, & research", Icon: "📊", Scores: map[string]int{"analyzer": 5, "explorer": 2}},
				{ID: "social-trends", Text: "Social trends & conversations", Icon: "💬", Scores: map[string]int{"socializer": 5, "explorer": 2}},
			},
		},
		{
			ID:       "work-style",
			Question: "How do you prefer to work on projects?",
			Subtitle: "What energizes you most?",
			Options: []models.Option{
				{ID: "solo-creative", Text: "Independently with creative freedom", Icon: "🎨", Scores: map[string]int{"creator": 5, "analyzer": 2}},
				{ID: "research-learn", Text: "Researching and learning as I go", Icon: "🔬", Scores: map[string]int{"explorer": 5, "analyzer": 3}},
				{ID: "collaborate", Text: "Collaborating with others", Icon: "👥", Scores: map[string]int{"socializer": 4, "helper": 4}},
				{ID: "plan-execute", Text: "Planning carefully then executing", Icon: "📋", Scores: map[string]int{"analyzer": 5, "creator": 2}},
				{ID: "guide-mentor", Text: "Guiding or mentoring teammates", Icon: "🌟", Scores: map[string]int{"helper": 5, "socializer": 3}},
			},
		},
		{
			ID:       "achievement",
			Question: "What makes you feel most accomplished?",
			Subtitle: "Your biggest source of satisfaction",
			Options: []models.Option{
				{ID: "made-something", Text: "Building something from scratch", Icon: "🏗️", Scores: map[string]int{"creator": 5, "analyzer": 2}},
				{ID: "mastered-skill", Text: "Mastering a new skill", Icon: "🎯", Scores: map[string]int{"explorer": 5, "analyzer": 3}},
				{ID: "helped-someone", Text: "Making someone's day better", Icon: "❤️", Scores: map[string]int{"helper": 5, "socializer": 2}},
				{ID: "solved-complex", Text: "Solving a complex challenge", Icon: "🔐", Scores: map[string]int{"analyzer": 5, "explorer": 2}},
				{ID: "brought-together", Text: "Bringing people together", Icon: "🌈", Scores: map[string]int{"socializer": 5, "helper": 3}},
			},
		},
		{
			ID:       "describes-you",
			Question: "Which word describes you best?",
			Subtitle: "Trust your gut!",
			Options: []models.Option{
				{ID: "innovative", Text: "Innovative", Icon: "💡", Scores: map[string]int{"creator": 5, "explorer": 2}},
				{ID: "curious", Text: "Curious", Icon: "🤔", Scores: map[string]int{"explorer": 5, "analyzer": 2}},
				{ID: "caring", Text: "Caring", Icon: "💚", Scores: map[string]int{"helper": 5, "socializer": 2}},
				{ID: "strategic", Text: "Strategic", Icon: "♟️", Scores: map[string]int{"analyzer": 5, "creator": 1}},
				{ID: "friendly", Text: "Friendly", Icon: "😊", Scores: map[string]int{"socializer": 5, "helper": 3}},
			},
		},
	}
}
