// internal/interview/scoring/engine.go
package scoring

import (
	"math"

	"zone-platform/internal/interview/catalog"
	"zone-platform/internal/models"
)

// Engine computes fit results from answer traces. It is a pure function over
// the catalog tables: no caching, no incremental state, deterministic for a
// given answer sequence.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Score accumulates the dense weight vectors of every answered option and
// derives percentages and the top category.
//
// Unknown option ids contribute nothing; the UI is the only producer of ids,
// so an unknown id is a no-op rather than an error. Ties on the maximum score
// resolve to the category declared first, which requires the strictly-greater
// comparison below. A zero total yields all-zero percentages and the first
// declared category as the top.
func (e *Engine) Score(answerIDs []string) models.FitResult {
	categories := e.catalog.Categories()
	totals := make([]int, len(categories))

	for _, id := range answerIDs {
		vec, ok := e.catalog.Weights(id)
		if !ok {
			continue
		}
		for i, w := range vec {
			totals[i] += w
		}
	}

	totalScore := 0
	for _, s := range totals {
		totalScore += s
	}

	topIndex := 0
	topScore := 0
	scores := make(map[string]int, len(categories))
	percentages := make(map[string]int, len(categories))

	for i, cat := range categories {
		scores[cat.ID] = totals[i]
		if totals[i] > topScore {
			topScore = totals[i]
			topIndex = i
		}
		if totalScore > 0 {
			percentages[cat.ID] = int(math.Round(float64(totals[i]) / float64(totalScore) * 100))
		} else {
			percentages[cat.ID] = 0
		}
	}

	top := categories[topIndex]
	return models.FitResult{
		CategoryScores:  scores,
		Percentages:     percentages,
		TopCategory:     top.ID,
		TopCategoryInfo: &top,
	}
}
