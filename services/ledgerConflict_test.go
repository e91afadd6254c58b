package services

import (
	"context"
	"regexp"
	"testing"
	"time"
	"wallet-ledger/config"
	"wallet-ledger/database"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectAsset = regexp.QuoteMeta("SELECT * FROM `user_assets`")
	updateAsset = regexp.QuoteMeta("UPDATE `user_assets` SET") + ".*" + regexp.QuoteMeta("WHERE (id = ? AND version = ?)")
)

// newScriptedLedger ... ledger service over sqlmock, each statement of every attempt is scripted
func newScriptedLedger(t *testing.T) (*LedgerService, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open("mysql", sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ledger := database.NewGormLedger(database.Database{Config: config.Data{LedgerMaxAttempts: 3}, DB: db})
	return NewLedgerService(ledger, nil), mock
}

func assetRow(id, assetSymbol, balance, value string, version int64) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "asset_symbol", "name", "balance", "value", "version"}).
		AddRow(id, now, now, "u1", assetSymbol, assetSymbol, balance, value, version)
}

func TestDebitRereadsBalanceAfterLosingRace(t *testing.T) {
	service, mock := newScriptedLedger(t)
	id := uuid.NewV4().String()

	// another debit of 0.6 commits between this unit's read and its write
	mock.ExpectBegin()
	mock.ExpectQuery(selectAsset).WillReturnRows(assetRow(id, "BTC", "1", "0", 1))
	mock.ExpectExec(updateAsset).
		WithArgs("0.4", "BTC", sqlmock.AnyArg(), "0", int64(2), id, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(selectAsset).WillReturnRows(assetRow(id, "BTC", "0.4", "0", 2))
	mock.ExpectRollback()

	_, err := service.Debit(context.Background(), Debit{UserID: "u1", AssetSymbol: "BTC", Amount: dec("0.6")})
	assert.True(t, appError.Is(err, errorcode.INSUFFICIENT_FUNDS))
	assert.EqualError(t, err, "Insufficient BTC balance: available 0.4, requested 0.6")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitGivesUpAfterRepeatedConflicts(t *testing.T) {
	service, mock := newScriptedLedger(t)
	id := uuid.NewV4().String()

	for version := int64(1); version <= 3; version++ {
		mock.ExpectBegin()
		mock.ExpectQuery(selectAsset).WillReturnRows(assetRow(id, "BTC", "10", "0", version))
		mock.ExpectExec(updateAsset).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()
	}

	_, err := service.Debit(context.Background(), Debit{UserID: "u1", AssetSymbol: "BTC", Amount: dec("1")})
	assert.True(t, appError.Is(err, errorcode.STORAGE_CONFLICT))
	assert.Equal(t, 409, appError.Code(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapWritesLegsInSymbolOrder(t *testing.T) {
	service, mock := newScriptedLedger(t)
	ethID, btcID := uuid.NewV4().String(), uuid.NewV4().String()

	mock.ExpectBegin()
	mock.ExpectQuery(selectAsset).WillReturnRows(assetRow(ethID, "ETH", "2", "100", 3))
	mock.ExpectQuery(selectAsset).WillReturnRows(assetRow(btcID, "BTC", "0", "0", 5))
	mock.ExpectExec(updateAsset).
		WithArgs("0.1", "BTC", sqlmock.AnyArg(), "50", int64(6), btcID, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updateAsset).
		WithArgs("1", "ETH", sqlmock.AnyArg(), "50", int64(4), ethID, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `transactions`")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	transaction, err := service.Swap(context.Background(), Swap{UserID: "u1", FromAssetSymbol: "ETH", ToAssetSymbol: "BTC", FromAmount: dec("1"), ToAmount: dec("0.1")})
	require.NoError(t, err)
	assert.Equal(t, "BTC", transaction.CounterAssetSymbol)
	assert.NoError(t, mock.ExpectationsWereMet())
}
