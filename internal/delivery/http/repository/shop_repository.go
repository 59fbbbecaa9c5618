package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

// maxLedgerRows bounds per-user ledger growth; older rows are pruned on insert.
const maxLedgerRows = 100

type (
	ShopRepository interface {
		FindAllItems(db *gorm.DB) ([]entity.ShopItem, error)
		FindItemByCode(db *gorm.DB, code string) (*entity.ShopItem, error)
		CountItems(db *gorm.DB) (int64, error)
		CreateItem(db *gorm.DB, item *entity.ShopItem) error
		AppendLedger(db *gorm.DB, row *entity.CoinLedger) error
	}

	shopRepository struct {
		db *gorm.DB
	}
)

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) FindAllItems(db *gorm.DB) ([]entity.ShopItem, error) {
	if db == nil {
		db = r.db
	}
	var items []entity.ShopItem
	err := db.Order("price ASC").Find(&items).Error
	return items, err
}

func (r *shopRepository) FindItemByCode(db *gorm.DB, code string) (*entity.ShopItem, error) {
	if db == nil {
		db = r.db
	}
	var item entity.ShopItem
	err := db.Where("code = ?", code).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shopRepository) CountItems(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.ShopItem{}).Count(&count).Error
	return count, err
}

func (r *shopRepository) CreateItem(db *gorm.DB, item *entity.ShopItem) error {
	if db == nil {
		db = r.db
	}
	return db.Create(item).Error
}

// AppendLedger inserts a ledger row, then prunes rows beyond the retention cap
// for that user. Pruning failure is not fatal to the insert.
func (r *shopRepository) AppendLedger(db *gorm.DB, row *entity.CoinLedger) error {
	if db == nil {
		db = r.db
	}
	if err := db.Create(row).Error; err != nil {
		return err
	}

	var keepIDs []uint
	if err := db.Model(&entity.CoinLedger{}).
		Where("email = ?", row.Email).
		Order("created_at DESC").
		Limit(maxLedgerRows).
		Pluck("id", &keepIDs).Error; err != nil {
		return nil
	}
	if len(keepIDs) < maxLedgerRows {
		return nil
	}
	db.Where("email = ? AND id NOT IN ?", row.Email, keepIDs).Delete(&entity.CoinLedger{})
	return nil
}
