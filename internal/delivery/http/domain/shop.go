package domain

var (
	SHOP_LIST_SUCCESS     = "Shop catalog ready"
	SHOP_LIST_FAILED      = "Failed to load shop catalog"
	SHOP_PURCHASE_SUCCESS = "Purchase completed"
	SHOP_PURCHASE_FAILED  = "Failed to complete purchase"

	LEADERBOARD_SUCCESS = "Leaderboard ready"
	LEADERBOARD_FAILED  = "Failed to load leaderboard"
)
