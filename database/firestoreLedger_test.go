package database

import (
	"context"
	"os"
	"testing"
	"wallet-ledger/model"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"

	"cloud.google.com/go/firestore"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against the firestore emulator only, e.g. FIRESTORE_EMULATOR_HOST=localhost:8080
func newEmulatorLedger(t *testing.T) *FirestoreLedger {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "wallet-ledger-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return NewFirestoreLedger(client, 3)
}

func TestFirestoreLedgerCreditAndDebit(t *testing.T) {
	ledger := newEmulatorLedger(t)
	ctx := context.Background()
	userID := uuid.NewV4().String()

	err := ledger.RunTransaction(ctx, func(tx LedgerTx) error {
		_, found, err := tx.GetAsset(userID, "ETH")
		if err != nil {
			return err
		}
		assert.False(t, found)
		if err := tx.SaveAsset(&model.UserAsset{UserID: userID, AssetSymbol: "ETH", Name: "Ethereum", Balance: "2", Value: "0"}); err != nil {
			return err
		}
		return tx.AppendTransaction(&model.Transaction{UserID: userID, Reference: uuid.NewV4().String(), TransactionType: "Buy", TransactionStatus: "Completed", AssetSymbol: "ETH", Amount: "+2.00000 ETH"})
	})
	require.NoError(t, err)

	asset, err := ledger.GetAsset(ctx, userID, "ETH")
	require.NoError(t, err)
	assert.Equal(t, "2", asset.Balance)
	assert.Equal(t, "Ethereum", asset.Name)

	transactions, err := ledger.FetchTransactions(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "+2.00000 ETH", transactions[0].Amount)
	assert.False(t, transactions[0].Timestamp.IsZero())

	_, err = ledger.GetAsset(ctx, userID, "BTC")
	assert.True(t, appError.Is(err, errorcode.RECORD_NOT_FOUND))
}
