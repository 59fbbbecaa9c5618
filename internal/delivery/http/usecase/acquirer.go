package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/pkg/llm"
)

// TextGenerator is the single external generation capability the acquirer
// consumes. Any non-success is treated uniformly; no retry contract is assumed.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenerationOutcome classifies one acquisition attempt explicitly instead of
// relying on error interception at arbitrary call depth. Exactly one of the
// fields is meaningful: Question on success, SoftFail when control should pass
// to the fallback selector.
type GenerationOutcome struct {
	Question *entity.QuizQuestion
	SoftFail string
}

func success(q entity.QuizQuestion) GenerationOutcome {
	return GenerationOutcome{Question: &q}
}

func softFailure(reason string) GenerationOutcome {
	return GenerationOutcome{SoftFail: reason}
}

// QuestionAcquirer orchestrates acquisition: one generator attempt, strict
// validation, dedup against history, then the fallback selector. It never
// returns an unvalidated question.
type QuestionAcquirer struct {
	Generator TextGenerator // nil disables external generation
	Dedupe    Deduplicator
	Log       *logrus.Logger
	Rnd       *rand.Rand
}

// Acquire produces the next question for the learner. Generation failures of
// any kind fall through to the fallback bank; only an exhausted bank is an
// error.
func (a *QuestionAcquirer) Acquire(ctx context.Context, category string, profile entity.AdaptedProfile, questionNumber int, historyTexts []string) (entity.QuizQuestion, error) {
	if a.Generator != nil {
		outcome := a.tryGenerate(ctx, category, profile, questionNumber, historyTexts)
		if outcome.Question != nil {
			return *outcome.Question, nil
		}
		a.Log.WithFields(logrus.Fields{
			"category": category,
			"topic":    profile.FocusTopic,
			"level":    profile.Level,
			"reason":   outcome.SoftFail,
		}).Warn("external generation failed, using fallback bank")
	}

	tpl, err := SelectFallback(category, profile.FocusTopic, profile.Level, historyTexts, a.Dedupe, a.Rnd)
	if err != nil {
		return entity.QuizQuestion{}, err
	}

	return entity.QuizQuestion{
		ID:            newQuestionID(),
		Category:      tpl.Category,
		Topic:         tpl.Topic,
		Difficulty:    tpl.Difficulty,
		Question:      tpl.Question,
		Options:       tpl.Options,
		CorrectAnswer: tpl.CorrectAnswer,
		Explanation:   tpl.Explanation,
		Provenance:    entity.ProvenanceFallback,
	}, nil
}

// generatedPayload is the strict response contract for the generator.
type generatedPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

func (a *QuestionAcquirer) tryGenerate(ctx context.Context, category string, profile entity.AdaptedProfile, questionNumber int, historyTexts []string) GenerationOutcome {
	prompt := buildQuestionPrompt(category, profile, questionNumber)

	text, err := a.Generator.GenerateText(ctx, prompt)
	if err != nil {
		return softFailure(fmt.Sprintf("generator call failed: %v", err))
	}

	clean := stripCodeFences(text)
	if err := llm.ValidateQuestionResponse([]byte(clean)); err != nil {
		return softFailure(fmt.Sprintf("schema validation failed: %v", err))
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return softFailure(fmt.Sprintf("generator output is not valid json: %v", err))
	}

	// The schema cannot express answer membership; enforce it here. A
	// violation is a validation failure, never silently corrected.
	if !containsOption(payload.Options, payload.CorrectAnswer) {
		return softFailure("correct answer is not among the options")
	}

	if a.Dedupe.IsDuplicate(payload.Question, historyTexts) {
		return softFailure("generated question duplicates learner history")
	}

	return success(entity.QuizQuestion{
		ID:            newQuestionID(),
		Category:      category,
		Topic:         profile.FocusTopic,
		Difficulty:    profile.Level,
		Question:      payload.Question,
		Options:       payload.Options,
		CorrectAnswer: payload.CorrectAnswer,
		Explanation:   payload.Explanation,
		Provenance:    entity.ProvenanceExternal,
	})
}

func buildQuestionPrompt(category string, profile entity.AdaptedProfile, questionNumber int) string {
	return fmt.Sprintf(`You are an adaptive quiz generator.
Category: %s
Topic: %s
Difficulty: %s
This is question number %d of the learner's current quiz.

Generate ONE multiple-choice question as a JSON object:
{
  "question": "string",
  "options": ["A", "B", "C", "D"],
  "correctAnswer": "string (must be exactly one of options)",
  "explanation": "string"
}

There must be exactly 4 options and correctAnswer must match one of them verbatim.
Ensure the JSON is valid and nothing else is returned.`,
		category, profile.FocusTopic, profile.Level, questionNumber)
}

func stripCodeFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}

func newQuestionID() string {
	return "q-" + uuid.NewString()
}
