package model

import (
	"time"
)

// TxnType ...
type TxnType struct{ BUY, SELL, SWAP, DEPOSIT string }

// TxnStatus ...
type TxnStatus struct{ PENDING, COMPLETED, FAILED string }

var (
	TransactionType = TxnType{
		BUY:     "Buy",
		SELL:    "Sell",
		SWAP:    "Swap",
		DEPOSIT: "Deposit",
	}
	TransactionStatus = TxnStatus{
		PENDING:   "Pending",
		COMPLETED: "Completed",
		FAILED:    "Failed",
	}
)

// TransactionDateLayout ... layout of the human readable Date field
const TransactionDateLayout = "Jan 02, 2006 15:04"

//Transaction ... immutable log entry describing one balance mutation of a user
type Transaction struct {
	BaseModel
	UserID             string    `gorm:"type:VARCHAR(128);not null;index:idx_transactions_user_id" json:"userId"`
	Reference          string    `gorm:"type:VARCHAR(36);not null;unique_index" json:"reference"`
	TransactionType    string    `gorm:"type:VARCHAR(20);not null" json:"type"`
	TransactionStatus  string    `gorm:"type:VARCHAR(20);not null" json:"status"`
	AssetSymbol        string    `gorm:"type:VARCHAR(20);not null" json:"assetSymbol"`
	CounterAssetSymbol string    `gorm:"type:VARCHAR(20)" json:"counterAssetSymbol,omitempty"`
	Amount             string    `gorm:"type:VARCHAR(100);not null" json:"amount"`
	NairaAmount        string    `gorm:"type:VARCHAR(100)" json:"nairaAmount,omitempty"`
	Date               string    `gorm:"type:VARCHAR(40);not null" json:"date"`
	Timestamp          time.Time `gorm:"not null" json:"timestamp"`
}
