package entity

import (
	"time"

	"gorm.io/gorm"
)

// ShopItem - catalog row seeded at startup.
type ShopItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Code        string         `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int            `gorm:"not null" json:"price"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ShopItem) TableName() string {
	return "shop_items"
}

// CoinLedger - per-user coin movements. Kept bounded: only the most recent
// 100 rows per user are retained, older ones are pruned on insert.
type CoinLedger struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `gorm:"size:255;not null;index" json:"email"`
	Amount    int            `gorm:"not null" json:"amount"` // positive = earned, negative = spent
	Reason    string         `gorm:"size:100;not null" json:"reason"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CoinLedger) TableName() string {
	return "coin_ledger"
}
