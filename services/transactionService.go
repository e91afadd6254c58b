package services

import (
	"context"
	"wallet-ledger/database"
	"wallet-ledger/dto"
	"wallet-ledger/model"
)

// DefaultHistoryLimit ... records returned when no limit is requested
const DefaultHistoryLimit = 50

//TransactionService ... read side of the transaction log
type TransactionService struct {
	Ledger database.Ledger
}

// NewTransactionService ...
func NewTransactionService(ledger database.Ledger) *TransactionService {
	return &TransactionService{Ledger: ledger}
}

// FetchTransactions ... newest first
func (service *TransactionService) FetchTransactions(ctx context.Context, userID string, limit int) ([]dto.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	records, err := service.Ledger.FetchTransactions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	transactions := make([]dto.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, TransactionResponse(record))
	}
	return transactions, nil
}

// TransactionResponse ...
func TransactionResponse(record model.Transaction) dto.Transaction {
	return dto.Transaction{
		ID:                 record.ID.String(),
		Reference:          record.Reference,
		Type:               record.TransactionType,
		Status:             record.TransactionStatus,
		AssetSymbol:        record.AssetSymbol,
		CounterAssetSymbol: record.CounterAssetSymbol,
		Amount:             record.Amount,
		NairaAmount:        record.NairaAmount,
		Date:               record.Date,
		Timestamp:          record.Timestamp,
	}
}
