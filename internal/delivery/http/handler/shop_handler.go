package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/quizforge/quizforge-be/internal/delivery/http/domain"
	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
	"github.com/quizforge/quizforge-be/internal/delivery/http/usecase"
	"github.com/quizforge/quizforge-be/internal/pkg/response"
	"github.com/quizforge/quizforge-be/internal/pkg/validate"
)

type (
	ShopHandler interface {
		ListItems(ctx *fiber.Ctx) error
		Purchase(ctx *fiber.Ctx) error
	}

	shopHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ShopUsecase
	}
)

func NewShopHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ShopUsecase) ShopHandler {
	return &shopHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /shop/items
func (h *shopHandler) ListItems(ctx *fiber.Ctx) error {
	items, err := h.usecase.ListItems(ctx.UserContext())
	if err != nil {
		return response.NewFailed(domain.SHOP_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SHOP_LIST_SUCCESS, items, nil).Send(ctx)
}

// POST /shop/purchase (jwt-protected)
func (h *shopHandler) Purchase(ctx *fiber.Ctx) error {
	email := middleware.AuthenticatedEmail(ctx)
	if email == "" {
		return response.NewFailed(domain.SHOP_PURCHASE_FAILED,
			fiber.NewError(fiber.StatusUnauthorized, "authentication required"), h.logger).Send(ctx)
	}

	var req entity.PurchaseRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.SHOP_PURCHASE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Purchase(ctx.UserContext(), email, req)
	if err != nil {
		return response.NewFailed(domain.SHOP_PURCHASE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SHOP_PURCHASE_SUCCESS, result, nil).Send(ctx)
}
