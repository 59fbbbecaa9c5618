package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func newTestAcquirer(gen TextGenerator) *QuestionAcquirer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &QuestionAcquirer{
		Generator: gen,
		Dedupe:    NewPrefixDeduplicator(),
		Log:       log,
		Rnd:       testRnd(),
	}
}

func htmlProfile() entity.AdaptedProfile {
	return entity.AdaptedProfile{
		Level:      entity.LevelBeginner,
		FocusTopic: "HTML Basics",
		Trend:      entity.TrendStable,
	}
}

const validGeneratedJSON = `{
	"question": "Which attribute opens a link in a new tab?",
	"options": ["target=\"_blank\"", "rel=\"noopener\"", "href=\"_new\"", "открыть"],
	"correctAnswer": "target=\"_blank\"",
	"explanation": "The target attribute controls the browsing context."
}`

func TestAcquireNilGeneratorUsesFallback(t *testing.T) {
	a := newTestAcquirer(nil)

	q, err := a.Acquire(context.Background(), "HTML", htmlProfile(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceFallback, q.Provenance)
	assert.Equal(t, "HTML", q.Category)
	assert.NotEmpty(t, q.ID)
}

func TestAcquireGeneratorSuccess(t *testing.T) {
	a := newTestAcquirer(&fakeGenerator{text: validGeneratedJSON})

	q, err := a.Acquire(context.Background(), "HTML", htmlProfile(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceExternal, q.Provenance)
	assert.Equal(t, "Which attribute opens a link in a new tab?", q.Question)
	assert.Equal(t, `target="_blank"`, q.CorrectAnswer)
	assert.Equal(t, "HTML Basics", q.Topic)
	assert.Len(t, q.Options, 4)
}

func TestAcquireStripsCodeFences(t *testing.T) {
	a := newTestAcquirer(&fakeGenerator{text: "```json\n" + validGeneratedJSON + "\n```"})

	q, err := a.Acquire(context.Background(), "HTML", htmlProfile(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceExternal, q.Provenance)
}

func TestAcquireFallsBackOnGeneratorFailures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"call error", &fakeGenerator{err: errors.New("rate limited")}},
		{"not json", &fakeGenerator{text: "I'm sorry, I can't do that."}},
		{"three options", &fakeGenerator{text: `{
			"question": "Pick one",
			"options": ["a", "b", "c"],
			"correctAnswer": "a",
			"explanation": ""
		}`}},
		{"missing explanation", &fakeGenerator{text: `{
			"question": "Pick one",
			"options": ["a", "b", "c", "d"],
			"correctAnswer": "a"
		}`}},
		{"answer not among options", &fakeGenerator{text: `{
			"question": "Pick one",
			"options": ["a", "b", "c", "d"],
			"correctAnswer": "e",
			"explanation": "nope"
		}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAcquirer(tt.gen)

			q, err := a.Acquire(context.Background(), "HTML", htmlProfile(), 1, nil)

			require.NoError(t, err)
			assert.Equal(t, entity.ProvenanceFallback, q.Provenance)
		})
	}
}

func TestAcquireRejectsDuplicateOfHistory(t *testing.T) {
	a := newTestAcquirer(&fakeGenerator{text: validGeneratedJSON})
	history := []string{"Which attribute opens a link in a new tab?"}

	q, err := a.Acquire(context.Background(), "HTML", htmlProfile(), 1, history)

	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceFallback, q.Provenance)
}

func TestAcquireExhaustedBankIsFatal(t *testing.T) {
	a := newTestAcquirer(nil)

	_, err := a.Acquire(context.Background(), "Fortran", entity.AdaptedProfile{
		Level:      entity.LevelBeginner,
		FocusTopic: "Arrays",
	}, 1, nil)

	var exhausted *PoolExhaustedError
	require.ErrorAs(t, err, &exhausted)
}
