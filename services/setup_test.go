package services

import (
	"testing"
	"time"
	"wallet-ledger/config"
	"wallet-ledger/database"
	"wallet-ledger/model"
	"wallet-ledger/utility/cache"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestLedger ... gorm ledger over a private in-memory sqlite database
func newTestLedger(t *testing.T) (*database.GormLedger, *gorm.DB) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.UserAsset{}, &model.Transaction{}, &model.User{}).Error)
	t.Cleanup(func() { db.Close() })

	return database.NewGormLedger(database.Database{Config: config.Data{}, DB: db}), db
}

func newMockPriceFeed() *PriceFeedService {
	return NewPriceFeedService(cache.Initialize(time.Minute, time.Minute), config.Data{})
}

func seedAsset(t *testing.T, db *gorm.DB, userID, assetSymbol, balance, value string) {
	asset := model.UserAsset{UserID: userID, AssetSymbol: assetSymbol, Name: assetSymbol, Balance: balance, Value: value, Version: 1}
	require.NoError(t, db.Create(&asset).Error)
}

func dec(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return amount
}
