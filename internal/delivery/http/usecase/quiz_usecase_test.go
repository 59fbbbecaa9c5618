package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
	internalEntity "github.com/quizforge/quizforge-be/internal/entity"
	"github.com/quizforge/quizforge-be/internal/pkg/mapper"
)

type fakePerformanceRepo struct {
	rows map[string]*internalEntity.PerformanceRecord
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{rows: map[string]*internalEntity.PerformanceRecord{}}
}

func (f *fakePerformanceRepo) FindByLearnerCategory(db *gorm.DB, learner, category string) (*internalEntity.PerformanceRecord, error) {
	return f.rows[learner+"|"+category], nil
}

func (f *fakePerformanceRepo) Create(db *gorm.DB, record *internalEntity.PerformanceRecord) error {
	f.rows[record.Learner+"|"+record.Category] = record
	return nil
}

func (f *fakePerformanceRepo) Save(db *gorm.DB, record *internalEntity.PerformanceRecord) error {
	f.rows[record.Learner+"|"+record.Category] = record
	return nil
}

type fakeQuestionRepo struct {
	created []*internalEntity.GeneratedQuestion
	texts   []string
	used    map[string]bool
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{used: map[string]bool{}}
}

func (f *fakeQuestionRepo) Create(db *gorm.DB, question *internalEntity.GeneratedQuestion) error {
	f.created = append(f.created, question)
	return nil
}

func (f *fakeQuestionRepo) FindByQuestionID(db *gorm.DB, questionID string) (*internalEntity.GeneratedQuestion, error) {
	for _, q := range f.created {
		if q.QuestionID == questionID {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) FindTextsByLearnerCategory(db *gorm.DB, learner, category string) ([]string, error) {
	return f.texts, nil
}

func (f *fakeQuestionRepo) MarkUsed(db *gorm.DB, questionID string, wasCorrect bool, timeSpent int) error {
	f.used[questionID] = true
	return nil
}

type fakeUserRepo struct {
	user        *internalEntity.User
	coinsAdded  int
	streakSaved int
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *internalEntity.User) error { return nil }

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*internalEntity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) EmailExists(db *gorm.DB, email string) (bool, error) {
	return f.user != nil, nil
}

func (f *fakeUserRepo) AddCoins(db *gorm.DB, email string, amount int) error {
	f.coinsAdded += amount
	return nil
}

func (f *fakeUserRepo) DeductCoins(db *gorm.DB, email string, amount int) (bool, error) {
	return true, nil
}

func (f *fakeUserRepo) UpdateStreak(db *gorm.DB, email string, streak int, lastQuizAt time.Time) error {
	f.streakSaved = streak
	return nil
}

type fakeResultRepo struct {
	results []*internalEntity.QuizResult
}

func (f *fakeResultRepo) Create(db *gorm.DB, result *internalEntity.QuizResult) error {
	f.results = append(f.results, result)
	return nil
}

func (f *fakeResultRepo) Leaderboard(db *gorm.DB, offset, limit int) ([]repository.LeaderboardRow, int64, error) {
	return nil, 0, nil
}

type fakeShopRepo struct {
	ledger []*internalEntity.CoinLedger
}

func (f *fakeShopRepo) FindAllItems(db *gorm.DB) ([]internalEntity.ShopItem, error) { return nil, nil }

func (f *fakeShopRepo) FindItemByCode(db *gorm.DB, code string) (*internalEntity.ShopItem, error) {
	return nil, nil
}

func (f *fakeShopRepo) CountItems(db *gorm.DB) (int64, error) { return 0, nil }

func (f *fakeShopRepo) CreateItem(db *gorm.DB, item *internalEntity.ShopItem) error { return nil }

func (f *fakeShopRepo) AppendLedger(db *gorm.DB, row *internalEntity.CoinLedger) error {
	f.ledger = append(f.ledger, row)
	return nil
}

type quizFixture struct {
	usecase     QuizUsecase
	performance *fakePerformanceRepo
	questions   *fakeQuestionRepo
	users       *fakeUserRepo
	results     *fakeResultRepo
	shop        *fakeShopRepo
}

func newQuizFixture(user *internalEntity.User) *quizFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &quizFixture{
		performance: newFakePerformanceRepo(),
		questions:   newFakeQuestionRepo(),
		users:       &fakeUserRepo{user: user},
		results:     &fakeResultRepo{},
		shop:        &fakeShopRepo{},
	}
	f.usecase = NewQuizUsecase(QuizConfig{
		Log:         log,
		Performance: f.performance,
		Questions:   f.questions,
		Results:     f.results,
		Users:       f.users,
		Shop:        f.shop,
	})
	return f
}

func perfectSubmission(learner string) entity.SubmitQuizRequest {
	return entity.SubmitQuizRequest{
		Learner:  learner,
		Category: "HTML",
		Answers: []entity.AnswerEvent{
			{QuestionID: "q1", Topic: "HTML Basics", Correct: true},
			{QuestionID: "q2", Topic: "HTML Basics", Correct: true},
			{QuestionID: "q3", Topic: "HTML Elements", Correct: true},
			{QuestionID: "q4", Topic: "HTML Elements", Correct: true},
			{QuestionID: "q5", Topic: "HTML Attributes", Correct: true},
		},
		Score:       5,
		Total:       5,
		QuestionIDs: []string{"q1", "q2", "q3", "q4", "q5"},
	}
}

func TestSubmitQuizResultLevelRatchetsUp(t *testing.T) {
	f := newQuizFixture(nil)

	var resp *entity.SubmitQuizResponse
	var err error
	for i := 0; i < 3; i++ {
		resp, err = f.usecase.SubmitQuizResult(context.Background(), perfectSubmission("alice@example.com"))
		require.NoError(t, err)
	}

	assert.Equal(t, entity.LevelAdvanced, resp.Level)
	assert.Equal(t, 3, resp.QuizzesTaken)
	assert.InDelta(t, 1.0, resp.Accuracy, 1e-9)
	assert.Len(t, f.results.results, 3)
	for _, id := range []string{"q1", "q2", "q3", "q4", "q5"} {
		assert.True(t, f.questions.used[id], "question %s not marked used", id)
	}
}

func TestSubmitQuizResultLevelNeverDrops(t *testing.T) {
	f := newQuizFixture(nil)

	seeded := NewPerformanceRecord("alice@example.com", "HTML")
	seeded.Level = entity.LevelAdvanced
	seeded.QuizzesTaken = 5
	seeded.TotalQuestions = 25
	seeded.CorrectAnswers = 20
	row := &internalEntity.PerformanceRecord{}
	require.NoError(t, mapper.ApplyPerformanceRecord(row, seeded))
	require.NoError(t, f.performance.Create(nil, row))

	resp, err := f.usecase.SubmitQuizResult(context.Background(), entity.SubmitQuizRequest{
		Learner:  "alice@example.com",
		Category: "HTML",
		Answers: []entity.AnswerEvent{
			{QuestionID: "q1", Topic: "HTML Forms", Correct: false},
			{QuestionID: "q2", Topic: "HTML Forms", Correct: false},
			{QuestionID: "q3", Topic: "HTML Forms", Correct: false},
		},
		Score: 0,
		Total: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LevelAdvanced, resp.Level)
}

func TestSubmitQuizResultRewardsRegisteredUser(t *testing.T) {
	f := newQuizFixture(&internalEntity.User{Email: "alice@example.com", Streak: 0})

	resp, err := f.usecase.SubmitQuizResult(context.Background(), perfectSubmission("alice@example.com"))
	require.NoError(t, err)

	// 5 correct at 2 coins each plus the perfect-score bonus.
	assert.Equal(t, 20, resp.CoinsAwarded)
	assert.Equal(t, 20, f.users.coinsAdded)
	assert.Equal(t, 1, resp.Streak)
	require.Len(t, f.shop.ledger, 1)
	assert.Equal(t, "quiz-reward", f.shop.ledger[0].Reason)
}

func TestSubmitQuizResultAnonymousLearnerGetsNoRewards(t *testing.T) {
	f := newQuizFixture(nil)

	resp, err := f.usecase.SubmitQuizResult(context.Background(), perfectSubmission("anon-learner"))
	require.NoError(t, err)

	assert.Zero(t, resp.CoinsAwarded)
	assert.Zero(t, resp.Streak)
	assert.Empty(t, f.shop.ledger)
}

func TestGetNextQuestionPersistsServedQuestion(t *testing.T) {
	f := newQuizFixture(nil)

	resp, err := f.usecase.GetNextQuestion(context.Background(), entity.NextQuestionRequest{
		Learner:        "alice@example.com",
		Category:       "HTML",
		QuestionNumber: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProvenanceFallback, resp.Question.Provenance)
	assert.Equal(t, "HTML Basics", resp.Adaptation.FocusTopic)
	require.Len(t, f.questions.created, 1)
	assert.Equal(t, resp.Question.ID, f.questions.created[0].QuestionID)
	assert.Equal(t, string(entity.ProvenanceFallback), f.questions.created[0].GeneratedBy)
}

func TestGetPersonalizationSummaryReflectsRecord(t *testing.T) {
	f := newQuizFixture(nil)

	_, err := f.usecase.SubmitQuizResult(context.Background(), entity.SubmitQuizRequest{
		Learner:  "alice@example.com",
		Category: "HTML",
		Answers: []entity.AnswerEvent{
			{QuestionID: "q1", Topic: "HTML Forms", Correct: false},
			{QuestionID: "q2", Topic: "HTML Forms", Correct: false},
			{QuestionID: "q3", Topic: "HTML Basics", Correct: true},
		},
		Score: 1,
		Total: 3,
	})
	require.NoError(t, err)

	summary, err := f.usecase.GetPersonalizationSummary(context.Background(), "alice@example.com", "HTML")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.QuizzesTaken)
	assert.Contains(t, summary.WeakTopics, "HTML Forms")
	assert.Contains(t, summary.CommonMistakes, "HTML Forms")
	assert.Equal(t, entity.LevelBeginner, summary.Level)
	assert.NotEmpty(t, summary.Adaptation.FocusTopic)
}
