package usecase

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
	internalEntity "github.com/quizforge/quizforge-be/internal/entity"
)

type ShopUsecase interface {
	ListItems(ctx context.Context) ([]entity.ShopItemView, error)
	Purchase(ctx context.Context, email string, req entity.PurchaseRequest) (*entity.PurchaseResponse, error)
}

type ShopConfig struct {
	DB    *gorm.DB
	Log   *logrus.Logger
	Users repository.UserRepository
	Shop  repository.ShopRepository
}

type shopUsecase struct {
	cfg ShopConfig
}

func NewShopUsecase(cfg ShopConfig) ShopUsecase {
	return &shopUsecase{cfg: cfg}
}

func (u *shopUsecase) ListItems(ctx context.Context) ([]entity.ShopItemView, error) {
	items, err := u.cfg.Shop.FindAllItems(u.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop items: %w", err)
	}

	views := make([]entity.ShopItemView, 0, len(items))
	for _, item := range items {
		views = append(views, entity.ShopItemView{
			Code:        item.Code,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return views, nil
}

func (u *shopUsecase) Purchase(ctx context.Context, email string, req entity.PurchaseRequest) (*entity.PurchaseResponse, error) {
	item, err := u.cfg.Shop.FindItemByCode(u.cfg.DB, req.ItemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop item: %w", err)
	}
	if item == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "unknown shop item")
	}

	// The conditional update is the atomicity guard: it only fires when the
	// balance covers the price.
	ok, err := u.cfg.Users.DeductCoins(u.cfg.DB, email, item.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to deduct coins: %w", err)
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "insufficient coins")
	}

	if err := u.cfg.Shop.AppendLedger(u.cfg.DB, &internalEntity.CoinLedger{
		Email:  email,
		Amount: -item.Price,
		Reason: "purchase:" + item.Code,
	}); err != nil {
		u.cfg.Log.WithError(err).Warn("failed to append coin ledger")
	}

	user, err := u.cfg.Users.FindByEmail(u.cfg.DB, email)
	if err != nil || user == nil {
		return nil, fmt.Errorf("failed to reload user after purchase: %w", err)
	}

	return &entity.PurchaseResponse{
		ItemCode:       item.Code,
		Price:          item.Price,
		RemainingCoins: user.Coins,
	}, nil
}
