package dto

import "github.com/shopspring/decimal"

type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	OnHand    int             `json:"on_hand"`
	Reserved  int             `json:"reserved"`
	Available int             `json:"available"`
}

type InventoryListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}

type AddProductRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"min=0"`
	Quantity  int             `json:"quantity" validate:"min=0"`
}

type AdjustStockRequest struct {
	// Delta is positive for restock, negative for shrinkage/correction.
	Delta int `json:"delta" validate:"required"`
}
