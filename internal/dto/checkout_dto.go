package dto

import "github.com/shopspring/decimal"

type CheckoutRequest struct {
	// CustomerEmail, when present, triggers an async emailed PDF receipt.
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
}

type TransactionResponse struct {
	ID        int                `json:"id"`
	Items     []CartLineResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Timestamp string             `json:"timestamp"`
}

type CheckoutResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	// SaveError is set when the purchase committed but persisting the
	// inventory snapshot failed; POST /v1/inventory/save retries it.
	SaveError string `json:"save_error,omitempty"`
}
