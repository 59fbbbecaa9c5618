package entity

// Level is the learner skill level for a category. Levels move one step at a time.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

var levelOrder = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

func (l Level) Valid() bool {
	for _, v := range levelOrder {
		if l == v {
			return true
		}
	}
	return false
}

// Rank orders levels for comparisons; unknown levels rank as beginner.
func (l Level) Rank() int {
	for i, v := range levelOrder {
		if l == v {
			return i
		}
	}
	return 0
}

// Up returns the next level, capped at expert.
func (l Level) Up() Level {
	for i, v := range levelOrder {
		if l == v && i < len(levelOrder)-1 {
			return levelOrder[i+1]
		}
	}
	return l
}

// Down returns the previous level, floored at beginner.
func (l Level) Down() Level {
	for i, v := range levelOrder {
		if l == v && i > 0 {
			return levelOrder[i-1]
		}
	}
	return l
}

// Trend is the session-local accuracy direction computed by the profile adapter.
type Trend string

const (
	TrendImproving  Trend = "improving"
	TrendStruggling Trend = "struggling"
	TrendStable     Trend = "stable"
)

// Question provenance markers.
const (
	ProvenanceExternal Provenance = "external-generator"
	ProvenanceFallback Provenance = "intelligent-fallback"
)

type Provenance string

// HistoryEntry is one answered question in a performance record's bounded log.
type HistoryEntry struct {
	QuestionID string `json:"question_id"`
	Topic      string `json:"topic"`
	WasCorrect bool   `json:"was_correct"`
	TimeSpent  int    `json:"time_spent"`
}

// PerformanceRecord is the per-(learner, category) aggregate as the engine
// works with it. Persistence shape lives in internal/entity.
type PerformanceRecord struct {
	Learner          string         `json:"learner"`
	Category         string         `json:"category"`
	Level            Level          `json:"level"`
	Accuracy         float64        `json:"accuracy"`
	WeakTopics       []string       `json:"weak_topics"`
	StrongTopics     []string       `json:"strong_topics"`
	CommonMistakes   []string       `json:"common_mistakes"`
	MasteredConcepts []string       `json:"mastered_concepts"`
	QuestionHistory  []HistoryEntry `json:"question_history"`
	QuizzesTaken     int            `json:"quizzes_taken"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
}

// AdaptedProfile is computed per request and never persisted.
type AdaptedProfile struct {
	Level      Level  `json:"level"`
	FocusTopic string `json:"focus_topic"`
	Trend      Trend  `json:"trend"`
}

// AnswerEvent is a single answered question as reported by the client,
// either mid-quiz (previous_answers) or on submission.
type AnswerEvent struct {
	QuestionID string `json:"question_id"`
	Topic      string `json:"topic"`
	Correct    bool   `json:"correct"`
	TimeSpent  int    `json:"time_spent"`
}

// QuizQuestion is a served question, whatever its source.
type QuizQuestion struct {
	ID            string     `json:"id"`
	Category      string     `json:"category"`
	Topic         string     `json:"topic"`
	Difficulty    Level      `json:"difficulty"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correct_answer"`
	Explanation   string     `json:"explanation"`
	Provenance    Provenance `json:"provenance"`
}

// StaticQuestionTemplate is a curated bank question compiled into the binary.
type StaticQuestionTemplate struct {
	Category      string
	Topic         string
	Difficulty    Level
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

type NextQuestionRequest struct {
	Learner         string        `json:"learner" validate:"required"`
	Category        string        `json:"category" validate:"required,category"`
	PreviousAnswers []AnswerEvent `json:"previous_answers"`
	QuestionNumber  int           `json:"question_number" validate:"gte=0"`
}

type NextQuestionResponse struct {
	Question   QuizQuestion   `json:"question"`
	Adaptation AdaptedProfile `json:"adaptation"`
}

type SubmitQuizRequest struct {
	Learner     string        `json:"learner" validate:"required"`
	Category    string        `json:"category" validate:"required,category"`
	Answers     []AnswerEvent `json:"answers" validate:"required,min=1,dive"`
	Score       int           `json:"score" validate:"gte=0,ltefield=Total"`
	Total       int           `json:"total" validate:"gte=1"`
	QuestionIDs []string      `json:"question_ids"`
}

type SubmitQuizResponse struct {
	Level          Level   `json:"level"`
	Accuracy       float64 `json:"accuracy"`
	QuizzesTaken   int     `json:"quizzes_taken"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	CoinsAwarded   int     `json:"coins_awarded"`
	Streak         int     `json:"streak"`
}

type PersonalizationSummary struct {
	Learner          string         `json:"learner"`
	Category         string         `json:"category"`
	Level            Level          `json:"level"`
	Accuracy         float64        `json:"accuracy"`
	WeakTopics       []string       `json:"weak_topics"`
	StrongTopics     []string       `json:"strong_topics"`
	CommonMistakes   []string       `json:"common_mistakes"`
	MasteredConcepts []string       `json:"mastered_concepts"`
	QuizzesTaken     int            `json:"quizzes_taken"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
	Adaptation       AdaptedProfile `json:"adaptation"`
}
