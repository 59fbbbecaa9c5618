package usecase

import (
	"fmt"
	"math/rand"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
)

// PoolExhaustedError means the bank holds no template for the resolved key and
// no degradation step applies. It is fatal for the request.
type PoolExhaustedError struct {
	Category string
	Topic    string
	Level    entity.Level
}

func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("question bank exhausted for category=%s topic=%s level=%s", e.Category, e.Topic, e.Level)
}

// SelectFallback resolves (topic, level, category) to a concrete bank template.
// Resolution order, first non-empty pool wins:
//  1. exact (topic, level)
//  2. the category's topic list in declared order at level, then at beginner
//  3. the category's default topic at beginner
//
// Within the resolved pool, templates the learner has already seen are skipped
// when possible; if every template has been seen, selection degrades to a
// uniform pick over the full pool. Availability beats novelty.
func SelectFallback(category, topic string, level entity.Level, historyTexts []string, dedupe Deduplicator, rnd *rand.Rand) (entity.StaticQuestionTemplate, error) {
	pool := bankPool(category, topic, level)

	if len(pool) == 0 && KnownCategory(category) {
		tax := TaxonomyFor(category)
		for _, candidate := range tax.OrderedTopics {
			if pool = bankPool(category, candidate, level); len(pool) > 0 {
				break
			}
		}
		if len(pool) == 0 {
			for _, candidate := range tax.OrderedTopics {
				if pool = bankPool(category, candidate, entity.LevelBeginner); len(pool) > 0 {
					break
				}
			}
		}
	}

	if len(pool) == 0 {
		pool = bankPool(category, DefaultTopic(category), entity.LevelBeginner)
	}

	if len(pool) == 0 {
		return entity.StaticQuestionTemplate{}, &PoolExhaustedError{Category: category, Topic: topic, Level: level}
	}

	var fresh []entity.StaticQuestionTemplate
	for _, tpl := range pool {
		if !dedupe.IsDuplicate(tpl.Question, historyTexts) {
			fresh = append(fresh, tpl)
		}
	}
	if len(fresh) > 0 {
		return fresh[rnd.Intn(len(fresh))], nil
	}
	return pool[rnd.Intn(len(pool))], nil
}
