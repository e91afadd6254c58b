package dto

import (
	"encoding/json"
	"time"
)

// BuyRequest ... credit a user asset bought for a Naira amount
type BuyRequest struct {
	UserID      string      `json:"userId" validate:"required,notblank"`
	AssetSymbol string      `json:"assetSymbol" validate:"required,notblank"`
	AssetName   string      `json:"assetName"`
	Amount      json.Number `json:"amount" validate:"required,positive_amount"`
	NairaAmount json.Number `json:"nairaAmount" validate:"omitempty,positive_amount"`
}

// SellRequest ... debit a user asset sold for a Naira amount
type SellRequest struct {
	UserID      string      `json:"userId" validate:"required,notblank"`
	AssetSymbol string      `json:"assetSymbol" validate:"required,notblank"`
	Amount      json.Number `json:"amount" validate:"required,positive_amount"`
	NairaAmount json.Number `json:"nairaAmount" validate:"omitempty,positive_amount"`
}

// SwapRequest ... exchange FromAmount of one asset for ToAmount of another.
// ToAmount is derived from the price feed when left empty.
type SwapRequest struct {
	UserID          string      `json:"userId" validate:"required,notblank"`
	FromAssetSymbol string      `json:"fromAssetSymbol" validate:"required,notblank"`
	ToAssetSymbol   string      `json:"toAssetSymbol" validate:"required,notblank"`
	ToAssetName     string      `json:"toAssetName"`
	FromAmount      json.Number `json:"fromAmount" validate:"required,positive_amount"`
	ToAmount        json.Number `json:"toAmount" validate:"omitempty,positive_amount"`
}

// DepositRequest ... user initiated deposit of an asset
type DepositRequest struct {
	UserID      string      `json:"userId" validate:"required,notblank"`
	AssetSymbol string      `json:"assetSymbol" validate:"required,notblank"`
	AssetName   string      `json:"assetName"`
	Amount      json.Number `json:"amount" validate:"required,positive_amount"`
}

// DepositWebhookRequest ... externally sourced credit notification
type DepositWebhookRequest struct {
	UserID    string      `json:"userId" validate:"required,notblank"`
	Asset     string      `json:"asset" validate:"required,notblank"`
	Amount    json.Number `json:"amount" validate:"required,positive_amount"`
	AssetName string      `json:"assetName" validate:"required,notblank"`
}

// ActionResult ... uniform outcome of every action. Status is the http status the result maps to.
type ActionResult struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Status  int                 `json:"-"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  []map[string]string `json:"validationErrors,omitempty"`
}

// Asset ... balance record as returned to clients
type Asset struct {
	UserID      string    `json:"userId"`
	AssetSymbol string    `json:"assetSymbol"`
	Name        string    `json:"name"`
	Balance     string    `json:"balance"`
	Value       string    `json:"value"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserAssetResponse ...
type UserAssetResponse struct {
	Assets []Asset `json:"assets"`
}

// Transaction ... transaction record as returned to clients
type Transaction struct {
	ID                 string    `json:"id"`
	Reference          string    `json:"reference"`
	Type               string    `json:"type"`
	Status             string    `json:"status"`
	AssetSymbol        string    `json:"assetSymbol"`
	CounterAssetSymbol string    `json:"counterAssetSymbol,omitempty"`
	Amount             string    `json:"amount"`
	NairaAmount        string    `json:"nairaAmount,omitempty"`
	Date               string    `json:"date"`
	Timestamp          time.Time `json:"timestamp"`
}

// TransactionListResponse ...
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// Price ... entry of the price feed
type Price struct {
	Symbol   string  `json:"symbol"`
	PriceUsd float64 `json:"priceUsd"`
}

// AddressResponse ...
type AddressResponse struct {
	AssetSymbol string `json:"assetSymbol"`
	Address     string `json:"address"`
}
