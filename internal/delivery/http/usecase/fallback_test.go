package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
)

func TestSelectFallbackExactPool(t *testing.T) {
	tpl, err := SelectFallback("HTML", "HTML Basics", entity.LevelBeginner, nil, NewPrefixDeduplicator(), testRnd())

	require.NoError(t, err)
	assert.Equal(t, "HTML", tpl.Category)
	assert.Equal(t, "HTML Basics", tpl.Topic)
	assert.Equal(t, entity.LevelBeginner, tpl.Difficulty)
}

func TestSelectFallbackDegradesAcrossTopics(t *testing.T) {
	// No bank entry exists for this topic, so resolution walks the
	// category's topics in declared order.
	tpl, err := SelectFallback("CSS", "No Such Topic", entity.LevelBeginner, nil, NewPrefixDeduplicator(), testRnd())

	require.NoError(t, err)
	assert.Equal(t, "CSS", tpl.Category)
	assert.Contains(t, TaxonomyFor("CSS").OrderedTopics, tpl.Topic)
}

func TestSelectFallbackDegradesToBeginner(t *testing.T) {
	// Expert pools are sparse; resolution must still land somewhere
	// inside the category.
	tpl, err := SelectFallback("Python", "Python Concurrency", entity.LevelExpert, nil, NewPrefixDeduplicator(), testRnd())

	require.NoError(t, err)
	assert.Equal(t, "Python", tpl.Category)
}

func TestSelectFallbackUnknownCategory(t *testing.T) {
	_, err := SelectFallback("Fortran", "Arrays", entity.LevelBeginner, nil, NewPrefixDeduplicator(), testRnd())

	var exhausted *PoolExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "Fortran", exhausted.Category)
}

func TestSelectFallbackPrefersUnseenQuestions(t *testing.T) {
	pool := bankPool("HTML", "HTML Basics", entity.LevelBeginner)
	require.Greater(t, len(pool), 1)

	// Mark every template but the last as already seen.
	var history []string
	for _, tpl := range pool[:len(pool)-1] {
		history = append(history, tpl.Question)
	}

	for i := 0; i < 10; i++ {
		tpl, err := SelectFallback("HTML", "HTML Basics", entity.LevelBeginner, history, NewPrefixDeduplicator(), testRnd())
		require.NoError(t, err)
		assert.Equal(t, pool[len(pool)-1].Question, tpl.Question)
	}
}

func TestSelectFallbackExhaustedHistoryStillServes(t *testing.T) {
	pool := bankPool("HTML", "HTML Basics", entity.LevelBeginner)

	var history []string
	for _, tpl := range pool {
		history = append(history, tpl.Question)
	}

	tpl, err := SelectFallback("HTML", "HTML Basics", entity.LevelBeginner, history, NewPrefixDeduplicator(), testRnd())

	require.NoError(t, err)
	assert.Equal(t, "HTML Basics", tpl.Topic)
}

func TestPoolExhaustedErrorMessage(t *testing.T) {
	err := &PoolExhaustedError{Category: "Fortran", Topic: "Arrays", Level: entity.LevelBeginner}

	assert.Contains(t, err.Error(), "Fortran")
	assert.Contains(t, err.Error(), "beginner")
}
