package mapper

import (
	"encoding/json"

	httpEntity "github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	dbEntity "github.com/quizforge/quizforge-be/internal/entity"
)

// ToPerformanceRecord decodes the JSON columns of a stored record into the
// domain shape the engine works with.
func ToPerformanceRecord(row *dbEntity.PerformanceRecord) (httpEntity.PerformanceRecord, error) {
	record := httpEntity.PerformanceRecord{
		Learner:        row.Learner,
		Category:       row.Category,
		Level:          httpEntity.Level(row.Level),
		Accuracy:       row.Accuracy,
		QuizzesTaken:   row.QuizzesTaken,
		TotalQuestions: row.TotalQuestions,
		CorrectAnswers: row.CorrectAnswers,
	}

	if err := decodeStrings(row.WeakTopics, &record.WeakTopics); err != nil {
		return httpEntity.PerformanceRecord{}, err
	}
	if err := decodeStrings(row.StrongTopics, &record.StrongTopics); err != nil {
		return httpEntity.PerformanceRecord{}, err
	}
	if err := decodeStrings(row.CommonMistakes, &record.CommonMistakes); err != nil {
		return httpEntity.PerformanceRecord{}, err
	}
	if err := decodeStrings(row.MasteredConcepts, &record.MasteredConcepts); err != nil {
		return httpEntity.PerformanceRecord{}, err
	}
	if row.QuestionHistory != "" {
		if err := json.Unmarshal([]byte(row.QuestionHistory), &record.QuestionHistory); err != nil {
			return httpEntity.PerformanceRecord{}, err
		}
	}
	if record.QuestionHistory == nil {
		record.QuestionHistory = []httpEntity.HistoryEntry{}
	}

	return record, nil
}

// ApplyPerformanceRecord encodes the domain record back onto the stored row,
// leaving gorm bookkeeping columns alone.
func ApplyPerformanceRecord(row *dbEntity.PerformanceRecord, record httpEntity.PerformanceRecord) error {
	weak, err := json.Marshal(record.WeakTopics)
	if err != nil {
		return err
	}
	strong, err := json.Marshal(record.StrongTopics)
	if err != nil {
		return err
	}
	mistakes, err := json.Marshal(record.CommonMistakes)
	if err != nil {
		return err
	}
	mastered, err := json.Marshal(record.MasteredConcepts)
	if err != nil {
		return err
	}
	history, err := json.Marshal(record.QuestionHistory)
	if err != nil {
		return err
	}

	row.Learner = record.Learner
	row.Category = record.Category
	row.Level = string(record.Level)
	row.Accuracy = record.Accuracy
	row.WeakTopics = string(weak)
	row.StrongTopics = string(strong)
	row.CommonMistakes = string(mistakes)
	row.MasteredConcepts = string(mastered)
	row.QuestionHistory = string(history)
	row.QuizzesTaken = record.QuizzesTaken
	row.TotalQuestions = record.TotalQuestions
	row.CorrectAnswers = record.CorrectAnswers
	return nil
}

func decodeStrings(raw string, dst *[]string) error {
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return err
		}
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}
