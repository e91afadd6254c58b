package controllers

import (
	"net/http"
	"wallet-ledger/dto"
	"wallet-ledger/utility/logger"

	"github.com/gorilla/mux"
)

// GetUserAssets ... Get all user asset balance
func (controller UserAssetController) GetUserAssets(responseWriter http.ResponseWriter, requestReader *http.Request) {
	userID := mux.Vars(requestReader)["userId"]
	logger.Info("Incoming request details for GetUserAssets : userID : %s", userID)

	assets, err := controller.Assets.FetchAssets(requestReader.Context(), userID)
	if err != nil {
		ReturnRepositoryError(responseWriter, "GetUserAssets", err)
		return
	}
	ReturnSuccess(responseWriter, "GetUserAssets", dto.UserAssetResponse{Assets: assets})
}

// GetUserAsset ... Get the balance of one asset
func (controller UserAssetController) GetUserAsset(responseWriter http.ResponseWriter, requestReader *http.Request) {
	routeParams := mux.Vars(requestReader)
	logger.Info("Incoming request details for GetUserAsset : userID : %s, symbol : %s", routeParams["userId"], routeParams["symbol"])

	asset, err := controller.Assets.GetAsset(requestReader.Context(), routeParams["userId"], routeParams["symbol"])
	if err != nil {
		ReturnRepositoryError(responseWriter, "GetUserAsset", err)
		return
	}
	ReturnSuccess(responseWriter, "GetUserAsset", asset)
}
