package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
	internalEntity "github.com/quizforge/quizforge-be/internal/entity"
	"github.com/quizforge/quizforge-be/internal/pkg/mapper"
)

type QuizUsecase interface {
	GetNextQuestion(ctx context.Context, req entity.NextQuestionRequest) (*entity.NextQuestionResponse, error)
	SubmitQuizResult(ctx context.Context, req entity.SubmitQuizRequest) (*entity.SubmitQuizResponse, error)
	GetPersonalizationSummary(ctx context.Context, learner, category string) (*entity.PersonalizationSummary, error)
}

type QuizConfig struct {
	DB          *gorm.DB
	Generator   TextGenerator // nil disables external generation
	Log         *logrus.Logger
	Config      *viper.Viper
	Performance repository.PerformanceRepository
	Questions   repository.QuestionRepository
	Results     repository.ResultRepository
	Users       repository.UserRepository
	Shop        repository.ShopRepository
}

type quizUsecase struct {
	cfg      QuizConfig
	acquirer *QuestionAcquirer
	rnd      *rand.Rand
}

// Default coin rewards, overridable via config.
const (
	defaultCoinsPerCorrect   = 2
	defaultPerfectScoreBonus = 10
	summaryAdaptationWindow  = 5
)

func NewQuizUsecase(cfg QuizConfig) QuizUsecase {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &quizUsecase{
		cfg: cfg,
		acquirer: &QuestionAcquirer{
			Generator: cfg.Generator,
			Dedupe:    NewPrefixDeduplicator(),
			Log:       cfg.Log,
			Rnd:       rnd,
		},
		rnd: rnd,
	}
}

func (u *quizUsecase) GetNextQuestion(ctx context.Context, req entity.NextQuestionRequest) (*entity.NextQuestionResponse, error) {
	record, _, err := u.getOrCreateRecord(req.Learner, req.Category)
	if err != nil {
		return nil, err
	}

	profile := AdaptProfile(record, req.PreviousAnswers, req.Category, u.rnd)

	historyTexts, err := u.cfg.Questions.FindTextsByLearnerCategory(u.cfg.DB, req.Learner, req.Category)
	if err != nil {
		// History is only used for novelty; serving a repeat beats failing.
		u.cfg.Log.WithError(err).Warn("failed to load question history, skipping dedup")
		historyTexts = nil
	}

	question, err := u.acquirer.Acquire(ctx, req.Category, profile, req.QuestionNumber, historyTexts)
	if err != nil {
		return nil, err
	}

	row, err := mapper.ToGeneratedQuestionRow(question, req.Learner)
	if err != nil {
		return nil, fmt.Errorf("failed to encode question: %w", err)
	}
	if err := u.cfg.Questions.Create(u.cfg.DB, row); err != nil {
		return nil, fmt.Errorf("failed to save question: %w", err)
	}

	return &entity.NextQuestionResponse{
		Question:   question,
		Adaptation: profile,
	}, nil
}

func (u *quizUsecase) SubmitQuizResult(ctx context.Context, req entity.SubmitQuizRequest) (*entity.SubmitQuizResponse, error) {
	record, row, err := u.getOrCreateRecord(req.Learner, req.Category)
	if err != nil {
		return nil, err
	}

	RecordQuizResult(&record, req.Answers, req.Score, req.Total)

	// The persisted level only rises; session-level dips stay ephemeral.
	if reassessed := ReassessLevel(record); reassessed.Rank() > record.Level.Rank() {
		record.Level = reassessed
	}

	if err := mapper.ApplyPerformanceRecord(row, record); err != nil {
		return nil, fmt.Errorf("failed to encode performance record: %w", err)
	}
	if err := u.cfg.Performance.Save(u.cfg.DB, row); err != nil {
		return nil, fmt.Errorf("failed to save performance record: %w", err)
	}

	if err := u.cfg.Results.Create(u.cfg.DB, &internalEntity.QuizResult{
		Learner:  req.Learner,
		Category: req.Category,
		Score:    req.Score,
		Total:    req.Total,
	}); err != nil {
		return nil, fmt.Errorf("failed to log quiz result: %w", err)
	}

	// Secondary effects below must not fail an otherwise-successful
	// submission; they are logged and swallowed.
	u.markQuestionsUsed(req)
	coins, streak := u.applyRewards(req)

	return &entity.SubmitQuizResponse{
		Level:          record.Level,
		Accuracy:       record.Accuracy,
		QuizzesTaken:   record.QuizzesTaken,
		CorrectAnswers: record.CorrectAnswers,
		TotalQuestions: record.TotalQuestions,
		CoinsAwarded:   coins,
		Streak:         streak,
	}, nil
}

func (u *quizUsecase) GetPersonalizationSummary(ctx context.Context, learner, category string) (*entity.PersonalizationSummary, error) {
	record, _, err := u.getOrCreateRecord(learner, category)
	if err != nil {
		return nil, err
	}

	// The diagnostic adaptation block reflects the most recent history window,
	// the same signal the next question request would see mid-quiz.
	recent := make([]entity.AnswerEvent, 0, summaryAdaptationWindow)
	history := record.QuestionHistory
	if n := len(history); n > summaryAdaptationWindow {
		history = history[n-summaryAdaptationWindow:]
	}
	for _, h := range history {
		recent = append(recent, entity.AnswerEvent{
			QuestionID: h.QuestionID,
			Topic:      h.Topic,
			Correct:    h.WasCorrect,
			TimeSpent:  h.TimeSpent,
		})
	}

	return &entity.PersonalizationSummary{
		Learner:          record.Learner,
		Category:         record.Category,
		Level:            record.Level,
		Accuracy:         record.Accuracy,
		WeakTopics:       record.WeakTopics,
		StrongTopics:     record.StrongTopics,
		CommonMistakes:   record.CommonMistakes,
		MasteredConcepts: record.MasteredConcepts,
		QuizzesTaken:     record.QuizzesTaken,
		TotalQuestions:   record.TotalQuestions,
		CorrectAnswers:   record.CorrectAnswers,
		Adaptation:       AdaptProfile(record, recent, category, u.rnd),
	}, nil
}

// getOrCreateRecord loads the (learner, category) record, creating it with
// defaults on first touch. Creation is idempotent at the usecase level; the
// unique index backstops races.
func (u *quizUsecase) getOrCreateRecord(learner, category string) (entity.PerformanceRecord, *internalEntity.PerformanceRecord, error) {
	row, err := u.cfg.Performance.FindByLearnerCategory(u.cfg.DB, learner, category)
	if err != nil {
		return entity.PerformanceRecord{}, nil, fmt.Errorf("failed to load performance record: %w", err)
	}

	if row == nil {
		record := NewPerformanceRecord(learner, category)
		row = &internalEntity.PerformanceRecord{}
		if err := mapper.ApplyPerformanceRecord(row, record); err != nil {
			return entity.PerformanceRecord{}, nil, fmt.Errorf("failed to encode performance record: %w", err)
		}
		if err := u.cfg.Performance.Create(u.cfg.DB, row); err != nil {
			return entity.PerformanceRecord{}, nil, fmt.Errorf("failed to create performance record: %w", err)
		}
		return record, row, nil
	}

	record, err := mapper.ToPerformanceRecord(row)
	if err != nil {
		return entity.PerformanceRecord{}, nil, fmt.Errorf("failed to decode performance record: %w", err)
	}
	return record, row, nil
}

// markQuestionsUsed transitions submitted questions to used. The transition is
// one-way: re-submitting an id does not revert or rewrite it.
func (u *quizUsecase) markQuestionsUsed(req entity.SubmitQuizRequest) {
	outcomes := make(map[string]entity.AnswerEvent, len(req.Answers))
	for _, a := range req.Answers {
		if a.QuestionID != "" {
			outcomes[a.QuestionID] = a
		}
	}

	for _, id := range req.QuestionIDs {
		wasCorrect := false
		timeSpent := 0
		if a, ok := outcomes[id]; ok {
			wasCorrect = a.Correct
			timeSpent = a.TimeSpent
		}
		if err := u.cfg.Questions.MarkUsed(u.cfg.DB, id, wasCorrect, timeSpent); err != nil {
			u.cfg.Log.WithError(err).WithField("question_id", id).Warn("failed to mark question used")
		}
	}
}

// applyRewards awards coins and advances the daily streak for registered
// learners. Unregistered learners simply get no gamification.
func (u *quizUsecase) applyRewards(req entity.SubmitQuizRequest) (int, int) {
	user, err := u.cfg.Users.FindByEmail(u.cfg.DB, req.Learner)
	if err != nil {
		u.cfg.Log.WithError(err).Warn("failed to load user for rewards")
		return 0, 0
	}
	if user == nil {
		return 0, 0
	}

	perCorrect := defaultCoinsPerCorrect
	perfectBonus := defaultPerfectScoreBonus
	if u.cfg.Config != nil {
		if v := u.cfg.Config.GetInt("rewards.coins_per_correct"); v > 0 {
			perCorrect = v
		}
		if v := u.cfg.Config.GetInt("rewards.perfect_score_bonus"); v > 0 {
			perfectBonus = v
		}
	}

	coins := req.Score * perCorrect
	if req.Score == req.Total {
		coins += perfectBonus
	}

	if coins > 0 {
		if err := u.cfg.Users.AddCoins(u.cfg.DB, req.Learner, coins); err != nil {
			u.cfg.Log.WithError(err).Warn("failed to award coins")
			coins = 0
		} else if err := u.cfg.Shop.AppendLedger(u.cfg.DB, &internalEntity.CoinLedger{
			Email:  req.Learner,
			Amount: coins,
			Reason: "quiz-reward",
		}); err != nil {
			u.cfg.Log.WithError(err).Warn("failed to append coin ledger")
		}
	}

	now := time.Now()
	streak := NextStreak(user.Streak, user.LastQuizAt, now)
	if err := u.cfg.Users.UpdateStreak(u.cfg.DB, req.Learner, streak, now); err != nil {
		u.cfg.Log.WithError(err).Warn("failed to update streak")
		streak = user.Streak
	}

	return coins, streak
}

// NextStreak advances a daily streak: same day keeps it, the next calendar day
// increments it, any gap resets to 1.
func NextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	lastDay := last.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	switch today.Sub(lastDay) {
	case 0:
		if current < 1 {
			return 1
		}
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}
