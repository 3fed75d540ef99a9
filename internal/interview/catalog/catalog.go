// internal/interview/catalog/catalog.go
package catalog

import (
	"fmt"

	"zone-platform/internal/models"
)

// Catalog bundles the category model and question bank, plus the dense
// per-option weight vectors derived from the sparse score mappings. It is
// immutable after construction.
type Catalog struct {
	categories []models.Category
	questions  []models.Question

	categoryIndex map[string]int // category id -> position in declaration order
	weights       map[string][]int
	optionOwner   map[string]int // option id -> owning question index
}

// Default builds the catalog from the built-in tables.
func Default() *Catalog {
	c, err := FromBank(DefaultCategories(), DefaultQuestions())
	if err != nil {
		// The built-in tables are fixed; a failure here is a programming error.
		panic(fmt.Sprintf("built-in question bank invalid: %v", err))
	}
	return c
}

// FromBank builds a catalog from an arbitrary category set and question bank,
// validating structural invariants: at least one category, every question
// non-empty, option ids unique bank-wide, and every weight referencing a
// declared category.
func FromBank(categories []models.Category, questions []models.Question) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("category set is empty")
	}

	categoryIndex := make(map[string]int, len(categories))
	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %d has empty id", i)
		}
		if _, exists := categoryIndex[cat.ID]; exists {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		categoryIndex[cat.ID] = i
	}

	weights := make(map[string][]int)
	optionOwner := make(map[string]int)

	for qi, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q has no options", q.ID)
		}
		for _, opt := range q.Options {
			if opt.ID == "" {
				return nil, fmt.Errorf("question %q has an option with empty id", q.ID)
			}
			if _, exists := optionOwner[opt.ID]; exists {
				return nil, fmt.Errorf("duplicate option id %q", opt.ID)
			}
			optionOwner[opt.ID] = qi

			// Densify the sparse score mapping so the scorer never does
			// existence checks on the hot path.
			vec := make([]int, len(categories))
			for catID, w := range opt.Scores {
				ci, ok := categoryIndex[catID]
				if !ok {
					return nil, fmt.Errorf("option %q scores unknown category %q", opt.ID, catID)
				}
				if w <= 0 {
					return nil, fmt.Errorf("option %q has non-positive weight for %q", opt.ID, catID)
				}
				vec[ci] = w
			}
			weights[opt.ID] = vec
		}
	}

	return &Catalog{
		categories:    categories,
		questions:     questions,
		categoryIndex: categoryIndex,
		weights:       weights,
		optionOwner:   optionOwner,
	}, nil
}

// Categories returns the category model in declaration order.
func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (models.Category, bool) {
	i, ok := c.categoryIndex[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// Questions returns the question bank in presentation order.
func (c *Catalog) Questions() []models.Question {
	return c.questions
}

// QuestionCount returns the number of questions in the bank.
func (c *Catalog) QuestionCount() int {
	return len(c.questions)
}

// Question returns the question at the given index.
func (c *Catalog) Question(index int) (models.Question, bool) {
	if index < 0 || index >= len(c.questions) {
		return models.Question{}, false
	}
	return c.questions[index], true
}

// Weights returns the dense weight vector for an option, in category
// declaration order. The second return is false for unknown option ids.
func (c *Catalog) Weights(optionID string) ([]int, bool) {
	vec, ok := c.weights[optionID]
	return vec, ok
}

// OptionBelongs reports whether the option is one of the choices of the
// question at the given index.
func (c *Catalog) OptionBelongs(questionIndex int, optionID string) bool {
	owner, ok := c.optionOwner[optionID]
	return ok && owner == questionIndex
}
