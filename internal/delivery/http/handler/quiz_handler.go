package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/quizforge/quizforge-be/internal/delivery/http/domain"
	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/usecase"
	"github.com/quizforge/quizforge-be/internal/pkg/response"
	"github.com/quizforge/quizforge-be/internal/pkg/validate"
)

type (
	QuizHandler interface {
		NextQuestion(ctx *fiber.Ctx) error
		Submit(ctx *fiber.Ctx) error
		Personalization(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /quiz/next-question
func (h *quizHandler) NextQuestion(ctx *fiber.Ctx) error {
	var req entity.NextQuestionRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_NEXT_QUESTION_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.GetNextQuestion(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_NEXT_QUESTION_FAILED, quizStatusError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_NEXT_QUESTION_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/submit
func (h *quizHandler) Submit(ctx *fiber.Ctx) error {
	var req entity.SubmitQuizRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitQuizResult(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, quizStatusError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/personalization?learner=...&category=...
func (h *quizHandler) Personalization(ctx *fiber.Ctx) error {
	learner := strings.TrimSpace(ctx.Query("learner"))
	category := strings.TrimSpace(ctx.Query("category"))
	if learner == "" || category == "" {
		return response.NewFailed(domain.QUIZ_PERSONALIZATION_FAILED,
			fiber.NewError(fiber.StatusBadRequest, "learner and category are required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.GetPersonalizationSummary(ctx.UserContext(), learner, category)
	if err != nil {
		return response.NewFailed(domain.QUIZ_PERSONALIZATION_FAILED, quizStatusError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_PERSONALIZATION_SUCCESS, result, nil).Send(ctx)
}

// quizStatusError maps engine errors onto HTTP codes: an exhausted fallback
// bank is an upstream-style generation failure, everything else is internal.
func quizStatusError(err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr
	}
	var exhausted *usecase.PoolExhaustedError
	if errors.As(err, &exhausted) {
		return fiber.NewError(fiber.StatusBadGateway, exhausted.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
