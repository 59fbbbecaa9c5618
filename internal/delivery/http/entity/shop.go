package entity

type ShopItemView struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

type PurchaseRequest struct {
	ItemCode string `json:"item_code" validate:"required"`
}

type PurchaseResponse struct {
	ItemCode       string `json:"item_code"`
	Price          int    `json:"price"`
	RemainingCoins int    `json:"remaining_coins"`
}
