package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
)

func TestQuestionBankIntegrity(t *testing.T) {
	require.NotEmpty(t, questionBankData)

	for _, tpl := range questionBankData {
		t.Run(tpl.Question, func(t *testing.T) {
			assert.True(t, KnownCategory(tpl.Category), "unknown category %q", tpl.Category)
			assert.Contains(t, TaxonomyFor(tpl.Category).OrderedTopics, tpl.Topic)
			assert.True(t, tpl.Difficulty.Valid(), "invalid level %q", tpl.Difficulty)
			assert.NotEmpty(t, tpl.Question)
			assert.Len(t, tpl.Options, 4)
			assert.Contains(t, tpl.Options, tpl.CorrectAnswer)
			assert.NotEmpty(t, tpl.Explanation)
		})
	}
}

func TestQuestionBankCoversEveryDefaultTopic(t *testing.T) {
	// Fallback resolution bottoms out at (default topic, beginner); that
	// pool must exist for every curated category.
	for _, category := range Categories() {
		pool := bankPool(category, DefaultTopic(category), entity.LevelBeginner)
		assert.NotEmpty(t, pool, "no beginner pool for default topic of %s", category)
	}
}

func TestBankPoolMissesAreEmpty(t *testing.T) {
	assert.Empty(t, bankPool("HTML", "No Such Topic", entity.LevelBeginner))
	assert.Empty(t, bankPool("Fortran", "Arrays", entity.LevelBeginner))
}
