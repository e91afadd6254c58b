package services

import (
	"context"
	"wallet-ledger/database"
	"wallet-ledger/dto"
	"wallet-ledger/model"
	"wallet-ledger/utility"
)

//UserAssetService ... read side of user balances
type UserAssetService struct {
	Ledger database.Ledger
}

// NewUserAssetService ...
func NewUserAssetService(ledger database.Ledger) *UserAssetService {
	return &UserAssetService{Ledger: ledger}
}

// FetchAssets by userId
func (service *UserAssetService) FetchAssets(ctx context.Context, userID string) ([]dto.Asset, error) {
	userAssets, err := service.Ledger.FetchAssets(ctx, userID)
	if err != nil {
		return nil, err
	}
	assets := make([]dto.Asset, 0, len(userAssets))
	for _, userAsset := range userAssets {
		assets = append(assets, normalize(userAsset))
	}
	return assets, nil
}

// GetAsset ... balance of one asset, RECORD_NOT_FOUND when the user never held it
func (service *UserAssetService) GetAsset(ctx context.Context, userID, assetSymbol string) (dto.Asset, error) {
	userAsset, err := service.Ledger.GetAsset(ctx, userID, utility.NormalizeSymbol(assetSymbol))
	if err != nil {
		return dto.Asset{}, err
	}
	return normalize(userAsset), nil
}

func normalize(userAsset model.UserAsset) dto.Asset {
	return dto.Asset{
		UserID:      userAsset.UserID,
		AssetSymbol: userAsset.AssetSymbol,
		Name:        userAsset.Name,
		Balance:     userAsset.Balance,
		Value:       userAsset.Value,
		UpdatedAt:   userAsset.UpdatedAt,
	}
}
