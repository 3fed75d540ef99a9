package models

// Category is one of the five personality-fit archetypes. The set and its
// declaration order are fixed for the process lifetime; the order doubles as
// the tie-break order when scoring.
type Category struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
}

// Option is a selectable answer. IDs are unique across the entire question
// bank. Scores is a sparse mapping; categories not listed contribute zero.
type Option struct {
	ID     string         `json:"id"`
	Text   string         `json:"text"`
	Icon   string         `json:"icon"`
	Scores map[string]int `json:"scores"`
}

// Question is one step of the interview. Option order is presentation order.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Subtitle string   `json:"subtitle,omitempty"`
	Options  []Option `json:"options"`
}

// FitResult is the scored outcome of an interview attempt. Recomputed fresh
// from the answer trace, never mutated in place.
type FitResult struct {
	CategoryScores  map[string]int `json:"categoryScores"`
	Percentages     map[string]int `json:"percentages"`
	TopCategory     string         `json:"topCategory"`
	TopCategoryInfo *Category      `json:"topCategoryInfo,omitempty"`
}
