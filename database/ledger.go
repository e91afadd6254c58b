package database

import (
	"context"
	"wallet-ledger/model"
)

// Ledger ... store holding user balances and their transaction history.
// RunTransaction executes fn as one atomic unit: every write staged through the LedgerTx
// is committed together or not at all. fn may be invoked more than once when a concurrent
// write invalidates what it read, so it must not have side effects outside the LedgerTx.
type Ledger interface {
	RunTransaction(ctx context.Context, fn func(tx LedgerTx) error) error
	FetchAssets(ctx context.Context, userID string) ([]model.UserAsset, error)
	GetAsset(ctx context.Context, userID, assetSymbol string) (model.UserAsset, error)
	FetchTransactions(ctx context.Context, userID string, limit int) ([]model.Transaction, error)
}

// LedgerTx ... operations available inside a ledger transaction. All reads must happen before the first write.
type LedgerTx interface {
	// GetAsset reports false when the user holds no record for the symbol
	GetAsset(userID, assetSymbol string) (model.UserAsset, bool, error)
	SaveAsset(asset *model.UserAsset) error
	AppendTransaction(transaction *model.Transaction) error
}

// IUserRepository ... profile store
type IUserRepository interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
	UpdateBankDetails(ctx context.Context, userID, bankName, accountNumber, accountName string) (model.User, error)
	UpdateRole(ctx context.Context, userID, role string) (model.User, error)
}
