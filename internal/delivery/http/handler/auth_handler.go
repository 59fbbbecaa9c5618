package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/quizforge/quizforge-be/internal/delivery/http/domain"
	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/usecase"
	"github.com/quizforge/quizforge-be/internal/pkg/response"
	"github.com/quizforge/quizforge-be/internal/pkg/validate"
)

type (
	AuthHandler interface {
		Register(ctx *fiber.Ctx) error
		Login(ctx *fiber.Ctx) error
	}

	authHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AuthUsecase
	}
)

func NewAuthHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AuthUsecase) AuthHandler {
	return &authHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /auth/register
func (h *authHandler) Register(ctx *fiber.Ctx) error {
	var req entity.RegisterRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Register(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_REGISTER_SUCCESS, result, nil).Send(ctx)
}

// POST /auth/login
func (h *authHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Login(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGIN_SUCCESS, result, nil).Send(ctx)
}
