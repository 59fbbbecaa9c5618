package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	internalEntity "github.com/quizforge/quizforge-be/internal/entity"
)

type fakeShopStore struct {
	items  []internalEntity.ShopItem
	ledger []*internalEntity.CoinLedger
}

func (f *fakeShopStore) FindAllItems(db *gorm.DB) ([]internalEntity.ShopItem, error) {
	return f.items, nil
}

func (f *fakeShopStore) FindItemByCode(db *gorm.DB, code string) (*internalEntity.ShopItem, error) {
	for i := range f.items {
		if f.items[i].Code == code {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeShopStore) CountItems(db *gorm.DB) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeShopStore) CreateItem(db *gorm.DB, item *internalEntity.ShopItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeShopStore) AppendLedger(db *gorm.DB, row *internalEntity.CoinLedger) error {
	f.ledger = append(f.ledger, row)
	return nil
}

type fakeWallet struct {
	fakeUserStore
	balance int
}

func (f *fakeWallet) DeductCoins(db *gorm.DB, email string, amount int) (bool, error) {
	if f.balance < amount {
		return false, nil
	}
	f.balance -= amount
	return true, nil
}

func (f *fakeWallet) FindByEmail(db *gorm.DB, email string) (*internalEntity.User, error) {
	return &internalEntity.User{Email: email, Coins: f.balance}, nil
}

func (f *fakeWallet) UpdateStreak(db *gorm.DB, email string, streak int, lastQuizAt time.Time) error {
	return nil
}

func newShopFixture(balance int) (ShopUsecase, *fakeShopStore, *fakeWallet) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	shop := &fakeShopStore{items: []internalEntity.ShopItem{
		{Code: "hint-pack", Name: "Hint Pack", Price: 20},
		{Code: "streak-freeze", Name: "Streak Freeze", Price: 30},
	}}
	wallet := &fakeWallet{balance: balance}

	return NewShopUsecase(ShopConfig{
		Log:   log,
		Users: wallet,
		Shop:  shop,
	}), shop, wallet
}

func TestPurchaseHappyPath(t *testing.T) {
	shop, store, wallet := newShopFixture(50)

	resp, err := shop.Purchase(context.Background(), "alice@example.com", entity.PurchaseRequest{ItemCode: "hint-pack"})
	require.NoError(t, err)

	assert.Equal(t, "hint-pack", resp.ItemCode)
	assert.Equal(t, 20, resp.Price)
	assert.Equal(t, 30, resp.RemainingCoins)
	assert.Equal(t, 30, wallet.balance)
	require.Len(t, store.ledger, 1)
	assert.Equal(t, -20, store.ledger[0].Amount)
	assert.Equal(t, "purchase:hint-pack", store.ledger[0].Reason)
}

func TestPurchaseInsufficientCoins(t *testing.T) {
	shop, store, wallet := newShopFixture(10)

	_, err := shop.Purchase(context.Background(), "alice@example.com", entity.PurchaseRequest{ItemCode: "hint-pack"})

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Equal(t, 10, wallet.balance)
	assert.Empty(t, store.ledger)
}

func TestPurchaseUnknownItem(t *testing.T) {
	shop, _, _ := newShopFixture(100)

	_, err := shop.Purchase(context.Background(), "alice@example.com", entity.PurchaseRequest{ItemCode: "no-such-item"})

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestListItems(t *testing.T) {
	shop, _, _ := newShopFixture(0)

	items, err := shop.ListItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "hint-pack", items[0].Code)
	assert.Equal(t, 20, items[0].Price)
}
