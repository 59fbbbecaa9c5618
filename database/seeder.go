package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

var shopCatalog = []entity.ShopItem{
	{Code: "streak-freeze", Name: "Streak Freeze", Description: "Keeps your daily streak alive for one missed day", Price: 30},
	{Code: "hint-pack", Name: "Hint Pack", Description: "Reveals one wrong option on five questions", Price: 20},
	{Code: "double-coins", Name: "Double Coins", Description: "Doubles coin rewards for your next three quizzes", Price: 50},
	{Code: "avatar-astronaut", Name: "Astronaut Avatar", Description: "A spacefaring look for your profile", Price: 80},
	{Code: "avatar-wizard", Name: "Wizard Avatar", Description: "A mystical look for your profile", Price: 80},
	{Code: "theme-midnight", Name: "Midnight Theme", Description: "Dark interface theme", Price: 100},
}

// SeedShopCatalog inserts the default shop items. It is a no-op when the
// catalog already has rows, so repeated startups do not duplicate items.
func SeedShopCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.ShopItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count shop items: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := db.Create(&shopCatalog).Error; err != nil {
		return fmt.Errorf("failed to seed shop catalog: %w", err)
	}

	return nil
}
