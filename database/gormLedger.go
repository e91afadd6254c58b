package database

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wallet-ledger/model"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"

	"github.com/jinzhu/gorm"
)

// DefaultMaxAttempts ... attempts made by a ledger transaction before a conflict is surfaced
const DefaultMaxAttempts = 5

// GormLedger ... relational Ledger. Balance rows carry a version which every update must match,
// so a unit that read a row later changed by someone else fails at write time and is run again.
type GormLedger struct {
	BaseRepository
	MaxAttempts int
}

// NewGormLedger ...
func NewGormLedger(database Database) *GormLedger {
	maxAttempts := database.Config.LedgerMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &GormLedger{BaseRepository: BaseRepository{Database: database}, MaxAttempts: maxAttempts}
}

// RunTransaction ... runs fn in a database transaction, retrying on version conflicts
func (ledger *GormLedger) RunTransaction(ctx context.Context, fn func(tx LedgerTx) error) error {
	var err error
	for attempt := 1; attempt <= ledger.MaxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = ledger.runOnce(ctx, fn)
		if err == nil || !appError.Is(err, errorcode.STORAGE_CONFLICT) {
			return err
		}
		logger.Warning("Ledger transaction conflict on attempt %d of %d : %s", attempt, ledger.MaxAttempts, err)
	}
	return err
}

func (ledger *GormLedger) runOnce(ctx context.Context, fn func(tx LedgerTx) error) (err error) {
	tx := ledger.DB.BeginTx(ctx, nil)
	if tx.Error != nil {
		return repoError(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(&gormLedgerTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	// a failed commit may still have applied, only conflicts the database rolled back are retried
	if commitErr := tx.Commit().Error; commitErr != nil {
		logger.Error("Ledger transaction commit failed : %s", commitErr)
		return storeError(commitErr)
	}
	return nil
}

// FetchAssets ... all balance records held by a user
func (ledger *GormLedger) FetchAssets(ctx context.Context, userID string) ([]model.UserAsset, error) {
	assets := []model.UserAsset{}
	if err := ledger.DB.Where(model.UserAsset{UserID: userID}).Order("asset_symbol").Find(&assets).Error; err != nil {
		logger.Error("Error with repository FetchAssets : %s", err)
		return nil, repoError(err)
	}
	return assets, nil
}

// GetAsset ... balance record of a user for one asset
func (ledger *GormLedger) GetAsset(ctx context.Context, userID, assetSymbol string) (model.UserAsset, error) {
	asset := model.UserAsset{}
	err := ledger.GetByFieldName(model.UserAsset{UserID: userID, AssetSymbol: assetSymbol}, &asset)
	return asset, err
}

// FetchTransactions ... transaction history of a user, newest first
func (ledger *GormLedger) FetchTransactions(ctx context.Context, userID string, limit int) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	query := ledger.DB.Where(model.Transaction{UserID: userID}).Order("timestamp desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&transactions).Error; err != nil {
		logger.Error("Error with repository FetchTransactions : %s", err)
		return nil, repoError(err)
	}
	return transactions, nil
}

type gormLedgerTx struct {
	tx *gorm.DB
}

func (ltx *gormLedgerTx) GetAsset(userID, assetSymbol string) (model.UserAsset, bool, error) {
	asset := model.UserAsset{}
	err := ltx.tx.Where(model.UserAsset{UserID: userID, AssetSymbol: assetSymbol}).First(&asset).Error
	if gorm.IsRecordNotFoundError(err) {
		return model.UserAsset{}, false, nil
	}
	if err != nil {
		return model.UserAsset{}, false, storeError(err)
	}
	return asset, true, nil
}

// SaveAsset creates the record when its version is zero, otherwise updates it if nobody else did first
func (ltx *gormLedgerTx) SaveAsset(asset *model.UserAsset) error {
	if asset.Version == 0 {
		asset.Version = 1
		if err := ltx.tx.Create(asset).Error; err != nil {
			asset.Version = 0
			// most likely the unique (user, symbol) index, the next attempt reads the winner's row
			return conflictError(err)
		}
		return nil
	}

	result := ltx.tx.Model(&model.UserAsset{}).
		Where("id = ? AND version = ?", asset.ID, asset.Version).
		Updates(map[string]interface{}{
			"name":       asset.Name,
			"balance":    asset.Balance,
			"value":      asset.Value,
			"version":    asset.Version + 1,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return conflictError(fmt.Errorf("%s balance of user %s changed concurrently", asset.AssetSymbol, asset.UserID))
	}
	asset.Version++
	return nil
}

func (ltx *gormLedgerTx) AppendTransaction(transaction *model.Transaction) error {
	if transaction.UserID == "" {
		return repoError(errors.New("transaction without owner"))
	}
	now := time.Now().UTC()
	transaction.Timestamp = now
	if transaction.Date == "" {
		transaction.Date = now.Format(model.TransactionDateLayout)
	}
	if err := ltx.tx.Create(transaction).Error; err != nil {
		return storeError(err)
	}
	return nil
}
