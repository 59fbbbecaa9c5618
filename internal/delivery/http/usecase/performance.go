package usecase

import "github.com/quizforge/quizforge-be/internal/delivery/http/entity"

// Session-local reclassification thresholds for the lifetime topic sets.
// These intentionally differ from the adapter's session thresholds: the
// performance model tracks long-term standing, the adapter a short-term
// signal.
const (
	weakTopicThreshold   = 0.6
	strongTopicThreshold = 0.8
	maxHistoryEntries    = 50
)

// NewPerformanceRecord returns the defaults for a lazily created
// (learner, category) record.
func NewPerformanceRecord(learner, category string) entity.PerformanceRecord {
	return entity.PerformanceRecord{
		Learner:          learner,
		Category:         category,
		Level:            entity.LevelBeginner,
		WeakTopics:       []string{},
		StrongTopics:     []string{},
		CommonMistakes:   []string{},
		MasteredConcepts: []string{},
		QuestionHistory:  []entity.HistoryEntry{},
	}
}

// RecordQuizResult folds a completed quiz into the record: counters, per-topic
// reclassification, bounded history and lifetime accuracy. Persistence is the
// caller's responsibility. The request must already be validated
// (0 <= score <= total).
func RecordQuizResult(record *entity.PerformanceRecord, answers []entity.AnswerEvent, score, total int) {
	record.QuizzesTaken++
	record.TotalQuestions += total
	record.CorrectAnswers += score

	type tally struct {
		correct int
		total   int
	}
	byTopic := make(map[string]*tally)
	for _, a := range answers {
		topic := a.Topic
		if topic == "" {
			topic = DefaultTopic(record.Category)
		}
		t, ok := byTopic[topic]
		if !ok {
			t = &tally{}
			byTopic[topic] = t
		}
		t.total++
		if a.Correct {
			t.correct++
		}
	}

	// Reclassify only topics with enough observations this session. A topic
	// landing between the thresholds heals out of both sets.
	for topic, t := range byTopic {
		if t.total < 2 {
			continue
		}
		acc := float64(t.correct) / float64(t.total)
		switch {
		case acc < weakTopicThreshold:
			record.WeakTopics = addToSet(record.WeakTopics, topic)
			record.StrongTopics = removeFromSet(record.StrongTopics, topic)
			record.CommonMistakes = addToSet(record.CommonMistakes, topic)
		case acc > strongTopicThreshold:
			record.StrongTopics = addToSet(record.StrongTopics, topic)
			record.WeakTopics = removeFromSet(record.WeakTopics, topic)
			record.MasteredConcepts = addToSet(record.MasteredConcepts, topic)
		default:
			record.WeakTopics = removeFromSet(record.WeakTopics, topic)
			record.StrongTopics = removeFromSet(record.StrongTopics, topic)
		}
	}

	for _, a := range answers {
		topic := a.Topic
		if topic == "" {
			topic = DefaultTopic(record.Category)
		}
		record.QuestionHistory = append(record.QuestionHistory, entity.HistoryEntry{
			QuestionID: a.QuestionID,
			Topic:      topic,
			WasCorrect: a.Correct,
			TimeSpent:  a.TimeSpent,
		})
	}
	if n := len(record.QuestionHistory); n > maxHistoryEntries {
		record.QuestionHistory = record.QuestionHistory[n-maxHistoryEntries:]
	}

	if record.TotalQuestions > 0 {
		record.Accuracy = float64(record.CorrectAnswers) / float64(record.TotalQuestions)
	} else {
		record.Accuracy = 0
	}
}

// ReassessLevel derives a level from lifetime counters alone. Callers apply
// it as a ratchet: the persisted level only moves up. Transient dips are the
// adapter's business, not this function's.
func ReassessLevel(record entity.PerformanceRecord) entity.Level {
	accuracy := 0.0
	if record.TotalQuestions > 0 {
		accuracy = float64(record.CorrectAnswers) / float64(record.TotalQuestions)
	}
	switch {
	case accuracy >= 0.8 && record.QuizzesTaken >= 3:
		return entity.LevelAdvanced
	case accuracy >= 0.6 && record.QuizzesTaken >= 2:
		return entity.LevelIntermediate
	default:
		return entity.LevelBeginner
	}
}

func addToSet(set []string, v string) []string {
	for _, s := range set {
		if s == v {
			return set
		}
	}
	return append(set, v)
}

func removeFromSet(set []string, v string) []string {
	out := set[:0]
	for _, s := range set {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
