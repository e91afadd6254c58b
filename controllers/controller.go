package controllers

import (
	"encoding/json"
	"net/http"
	"wallet-ledger/config"
	"wallet-ledger/dto"
	"wallet-ledger/services"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/response"
)

//Controller : Controller struct
type Controller struct {
	Config config.Data
}

//ActionController : ledger and profile actions
type ActionController struct {
	Config  config.Data
	Actions services.Actions
}

//UserAssetController : user balances
type UserAssetController struct {
	Config config.Data
	Assets *services.UserAssetService
}

//TransactionController : user transaction history
type TransactionController struct {
	Config       config.Data
	Transactions *services.TransactionService
}

//AssetController : asset prices
type AssetController struct {
	Config config.Data
	Prices *services.PriceFeedService
}

//UserAddressController : deposit addresses
type UserAddressController struct {
	Config    config.Data
	Addresses *services.UserAddressService
}

// NewController ... Create a new base controller instance
func NewController(configData config.Data) *Controller {
	return &Controller{Config: configData}
}

// NewActionController ...
func NewActionController(configData config.Data, actions services.Actions) *ActionController {
	return &ActionController{Config: configData, Actions: actions}
}

// NewUserAssetController ...
func NewUserAssetController(configData config.Data, assets *services.UserAssetService) *UserAssetController {
	return &UserAssetController{Config: configData, Assets: assets}
}

// NewTransactionController ...
func NewTransactionController(configData config.Data, transactions *services.TransactionService) *TransactionController {
	return &TransactionController{Config: configData, Transactions: transactions}
}

// NewAssetController ...
func NewAssetController(configData config.Data, prices *services.PriceFeedService) *AssetController {
	return &AssetController{Config: configData, Prices: prices}
}

// NewUserAddressController ...
func NewUserAddressController(configData config.Data, addresses *services.UserAddressService) *UserAddressController {
	return &UserAddressController{Config: configData, Addresses: addresses}
}

//Ping : Ping function
func (c *Controller) Ping(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()

	logger.Info("Ping request successful! Server is up and listening")

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(apiResponse.PlainSuccess(errorcode.SUCCESS, "Ping request successful! Server is up and listening"))
}

// ReturnError ... logs err and writes responseData with the given status
func ReturnError(responseWriter http.ResponseWriter, method string, status int, err interface{}, responseData interface{}) {
	logger.Error("Outgoing response to %s request : %+v", method, err)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(responseData)
}

// ReturnRepositoryError ... maps a lookup error to 404 or a generic 500
func ReturnRepositoryError(responseWriter http.ResponseWriter, method string, err error) {
	apiResponse := response.New()
	switch appError.Type(err) {
	case errorcode.RECORD_NOT_FOUND:
		ReturnError(responseWriter, method, http.StatusNotFound, err, apiResponse.PlainError(errorcode.RECORD_NOT_FOUND, err.Error()))
	case errorcode.PRICE_FEED_ERR:
		ReturnError(responseWriter, method, appError.Code(err), err, apiResponse.PlainError(errorcode.PRICE_FEED_ERR, err.Error()))
	default:
		ReturnError(responseWriter, method, http.StatusInternalServerError, err, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
	}
}

// ReturnResult ... writes an action result with the status it maps to
func ReturnResult(responseWriter http.ResponseWriter, method string, result dto.ActionResult) {
	if result.Success {
		logger.Info("Outgoing response to %s request : %s", method, result.Message)
	} else {
		logger.Info("Outgoing failure to %s request : %s %s", method, result.Code, result.Message)
	}
	status := result.Status
	if status == 0 {
		status = http.StatusOK
	}
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(result)
}

// ReturnSuccess ...
func ReturnSuccess(responseWriter http.ResponseWriter, method string, data interface{}) {
	logger.Debug("Outgoing response to %s request : %+v", method, data)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(response.New().Successful(errorcode.SUCCESS, errorcode.SUCCESS_MESSAGE, data))
}
