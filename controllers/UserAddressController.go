package controllers

import (
	"net/http"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/response"

	"github.com/gorilla/mux"
)

// GetAssetAddress ... deposit address for the asset in the path
func (controller UserAddressController) GetAssetAddress(responseWriter http.ResponseWriter, requestReader *http.Request) {
	routeParams := mux.Vars(requestReader)
	logger.Info("Incoming request details for GetAssetAddress : userID : %s, symbol : %s", routeParams["userId"], routeParams["symbol"])

	address, err := controller.Addresses.GenerateAddress(routeParams["symbol"])
	if err != nil {
		ReturnError(responseWriter, "GetAssetAddress", http.StatusBadRequest, err, response.New().PlainError(errorcode.INPUT_ERR_CODE, err.Error()))
		return
	}
	ReturnSuccess(responseWriter, "GetAssetAddress", address)
}
