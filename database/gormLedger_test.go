package database

import (
	"context"
	"errors"
	"testing"
	"wallet-ledger/config"
	"wallet-ledger/model"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

//LedgerSuite ...
type LedgerSuite struct {
	suite.Suite
	DB     *gorm.DB
	Ledger *GormLedger
}

func TestGormLedger(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(s.T(), err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(s.T(), db.AutoMigrate(&model.UserAsset{}, &model.Transaction{}, &model.User{}).Error)

	s.DB = db
	s.Ledger = NewGormLedger(Database{Config: config.Data{LedgerMaxAttempts: 3}, DB: db})
}

func (s *LedgerSuite) TearDownTest() {
	s.DB.Close()
}

func (s *LedgerSuite) seed(userID, assetSymbol, balance string) model.UserAsset {
	asset := model.UserAsset{UserID: userID, AssetSymbol: assetSymbol, Name: assetSymbol, Balance: balance, Value: "0", Version: 1}
	require.NoError(s.T(), s.DB.Create(&asset).Error)
	return asset
}

func (s *LedgerSuite) TestNewGormLedgerDefaultsAttempts() {
	ledger := NewGormLedger(Database{DB: s.DB})
	assert.Equal(s.T(), DefaultMaxAttempts, ledger.MaxAttempts)
}

func (s *LedgerSuite) TestCommitsAssetAndTransactionTogether() {
	err := s.Ledger.RunTransaction(context.Background(), func(tx LedgerTx) error {
		_, found, err := tx.GetAsset("u1", "ETH")
		require.NoError(s.T(), err)
		assert.False(s.T(), found)

		asset := model.UserAsset{UserID: "u1", AssetSymbol: "ETH", Name: "Ethereum", Balance: "2", Value: "0"}
		if err := tx.SaveAsset(&asset); err != nil {
			return err
		}
		assert.Equal(s.T(), int64(1), asset.Version)
		return tx.AppendTransaction(&model.Transaction{UserID: "u1", Reference: "ref-1", TransactionType: "Buy", TransactionStatus: "Completed", AssetSymbol: "ETH", Amount: "+2.00000 ETH"})
	})
	require.NoError(s.T(), err)

	asset, err := s.Ledger.GetAsset(context.Background(), "u1", "ETH")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "2", asset.Balance)
	assert.Equal(s.T(), "Ethereum", asset.Name)

	transactions, err := s.Ledger.FetchTransactions(context.Background(), "u1", 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), "+2.00000 ETH", transactions[0].Amount)
	assert.False(s.T(), transactions[0].Timestamp.IsZero())
	assert.NotEmpty(s.T(), transactions[0].Date)
}

func (s *LedgerSuite) TestRollsBackWhenUnitFails() {
	s.seed("u1", "BTC", "1")
	failure := errors.New("boom")

	err := s.Ledger.RunTransaction(context.Background(), func(tx LedgerTx) error {
		asset, _, err := tx.GetAsset("u1", "BTC")
		require.NoError(s.T(), err)
		asset.Balance = "0"
		require.NoError(s.T(), tx.SaveAsset(&asset))
		require.NoError(s.T(), tx.AppendTransaction(&model.Transaction{UserID: "u1", Reference: "ref-2", TransactionType: "Sell", TransactionStatus: "Completed", AssetSymbol: "BTC", Amount: "-1.00000 BTC"}))
		return failure
	})
	assert.Equal(s.T(), failure, err)

	asset, err := s.Ledger.GetAsset(context.Background(), "u1", "BTC")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1", asset.Balance)
	assert.Equal(s.T(), int64(1), asset.Version)

	transactions, err := s.Ledger.FetchTransactions(context.Background(), "u1", 0)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), transactions)
}

func (s *LedgerSuite) TestStaleVersionIsAConflict() {
	stale := s.seed("u1", "BTC", "1")
	require.NoError(s.T(), s.DB.Model(&model.UserAsset{}).Where("id = ?", stale.ID).Update("version", 2).Error)

	err := s.Ledger.runOnce(context.Background(), func(tx LedgerTx) error {
		stale.Balance = "0.5"
		return tx.SaveAsset(&stale)
	})
	assert.True(s.T(), appError.Is(err, errorcode.STORAGE_CONFLICT))

	asset, err := s.Ledger.GetAsset(context.Background(), "u1", "BTC")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "1", asset.Balance)
}

func (s *LedgerSuite) TestDuplicateCreateIsAConflict() {
	s.seed("u1", "BTC", "1")

	err := s.Ledger.runOnce(context.Background(), func(tx LedgerTx) error {
		return tx.SaveAsset(&model.UserAsset{UserID: "u1", AssetSymbol: "BTC", Name: "Bitcoin", Balance: "3", Value: "0"})
	})
	assert.True(s.T(), appError.Is(err, errorcode.STORAGE_CONFLICT))
}

func (s *LedgerSuite) TestRetriesConflictsUntilSuccess() {
	attempts := 0
	err := s.Ledger.RunTransaction(context.Background(), func(tx LedgerTx) error {
		attempts++
		if attempts == 1 {
			return conflictError(errors.New("changed underneath"))
		}
		return nil
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, attempts)
}

func (s *LedgerSuite) TestGivesUpAfterMaxAttempts() {
	attempts := 0
	err := s.Ledger.RunTransaction(context.Background(), func(tx LedgerTx) error {
		attempts++
		return conflictError(errors.New("changed underneath"))
	})
	assert.True(s.T(), appError.Is(err, errorcode.STORAGE_CONFLICT))
	assert.Equal(s.T(), 3, attempts)
}

func (s *LedgerSuite) TestDoesNotRetryOtherErrors() {
	attempts := 0
	err := s.Ledger.RunTransaction(context.Background(), func(tx LedgerTx) error {
		attempts++
		return appError.New(400, errorcode.INSUFFICIENT_FUNDS, "not enough")
	})
	assert.True(s.T(), appError.Is(err, errorcode.INSUFFICIENT_FUNDS))
	assert.Equal(s.T(), 1, attempts)
}

func (s *LedgerSuite) TestStopsWhenContextIsCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Ledger.RunTransaction(ctx, func(tx LedgerTx) error {
		called = true
		return nil
	})
	assert.Equal(s.T(), context.Canceled, err)
	assert.False(s.T(), called)
}

func (s *LedgerSuite) TestGetAssetNotFound() {
	_, err := s.Ledger.GetAsset(context.Background(), "u1", "SOL")
	assert.True(s.T(), appError.Is(err, errorcode.RECORD_NOT_FOUND))
	assert.Equal(s.T(), 404, appError.Code(err))
}

func (s *LedgerSuite) TestFetchAssetsIsScopedToUser() {
	s.seed("u1", "BTC", "1")
	s.seed("u1", "ETH", "2")
	s.seed("u2", "BTC", "5")

	assets, err := s.Ledger.FetchAssets(context.Background(), "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), assets, 2)
	assert.Equal(s.T(), "BTC", assets[0].AssetSymbol)
	assert.Equal(s.T(), "ETH", assets[1].AssetSymbol)
}
