package mapper

import (
	"encoding/json"

	httpEntity "github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	dbEntity "github.com/quizforge/quizforge-be/internal/entity"
)

// ToGeneratedQuestionRow builds the persistence row for a served question.
func ToGeneratedQuestionRow(q httpEntity.QuizQuestion, learner string) (*dbEntity.GeneratedQuestion, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return nil, err
	}

	return &dbEntity.GeneratedQuestion{
		QuestionID:    q.ID,
		Learner:       learner,
		Category:      q.Category,
		Topic:         q.Topic,
		Difficulty:    string(q.Difficulty),
		QuestionText:  q.Question,
		Options:       string(options),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		GeneratedBy:   string(q.Provenance),
	}, nil
}

// ToQuizQuestion decodes a stored question back to the served shape.
func ToQuizQuestion(row *dbEntity.GeneratedQuestion) (httpEntity.QuizQuestion, error) {
	var options []string
	if err := json.Unmarshal([]byte(row.Options), &options); err != nil {
		return httpEntity.QuizQuestion{}, err
	}

	return httpEntity.QuizQuestion{
		ID:            row.QuestionID,
		Category:      row.Category,
		Topic:         row.Topic,
		Difficulty:    httpEntity.Level(row.Difficulty),
		Question:      row.QuestionText,
		Options:       options,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		Provenance:    httpEntity.Provenance(row.GeneratedBy),
	}, nil
}
