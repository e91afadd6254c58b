package controllers

import (
	"encoding/json"
	"net/http"
	"wallet-ledger/dto"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/response"
	"wallet-ledger/utility/session"

	"github.com/gorilla/mux"
)

// decode ... reads the json body into requestData, answering 400 when it is not valid json
func decode(responseWriter http.ResponseWriter, requestReader *http.Request, method string, requestData interface{}) bool {
	if err := json.NewDecoder(requestReader.Body).Decode(requestData); err != nil {
		ReturnError(responseWriter, method, http.StatusBadRequest, err, response.New().PlainError(errorcode.INPUT_ERR_CODE, errorcode.INPUT_ERR))
		return false
	}
	logger.Info("Incoming request details for %s : %+v", method, requestData)
	return true
}

// Buy ... credits a bought asset
func (controller ActionController) Buy(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.BuyRequest{}
	if !decode(responseWriter, requestReader, "Buy", &requestData) {
		return
	}
	ReturnResult(responseWriter, "Buy", controller.Actions.Buy(requestReader.Context(), requestData))
}

// Sell ... debits a sold asset
func (controller ActionController) Sell(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.SellRequest{}
	if !decode(responseWriter, requestReader, "Sell", &requestData) {
		return
	}
	ReturnResult(responseWriter, "Sell", controller.Actions.Sell(requestReader.Context(), requestData))
}

// Swap ... exchanges one asset for another
func (controller ActionController) Swap(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.SwapRequest{}
	if !decode(responseWriter, requestReader, "Swap", &requestData) {
		return
	}
	ReturnResult(responseWriter, "Swap", controller.Actions.Swap(requestReader.Context(), requestData))
}

// Deposit ... credits a user initiated deposit
func (controller ActionController) Deposit(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.DepositRequest{}
	if !decode(responseWriter, requestReader, "Deposit", &requestData) {
		return
	}
	ReturnResult(responseWriter, "Deposit", controller.Actions.Deposit(requestReader.Context(), requestData))
}

// DepositWebhook ... credits a deposit reported by an external service
func (controller ActionController) DepositWebhook(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.DepositWebhookRequest{}
	if !decode(responseWriter, requestReader, "DepositWebhook", &requestData) {
		return
	}
	ReturnResult(responseWriter, "DepositWebhook", controller.Actions.DepositWebhook(requestReader.Context(), requestData))
}

// UpdateBankDetails ... sets the payout bank account of the user in the path, the caller's own unless admin
func (controller ActionController) UpdateBankDetails(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.BankDetailsRequest{}
	if !decode(responseWriter, requestReader, "UpdateBankDetails", &requestData) {
		return
	}
	requestData.UserID = mux.Vars(requestReader)["userId"]

	caller, _ := session.From(requestReader.Context())
	ReturnResult(responseWriter, "UpdateBankDetails", controller.Actions.UpdateBankDetails(requestReader.Context(), caller, requestData))
}

// UpdateRole ... changes the role of the user in the path, admins only
func (controller ActionController) UpdateRole(responseWriter http.ResponseWriter, requestReader *http.Request) {
	requestData := dto.UpdateRoleRequest{}
	if !decode(responseWriter, requestReader, "UpdateRole", &requestData) {
		return
	}
	requestData.UserID = mux.Vars(requestReader)["userId"]

	caller, _ := session.From(requestReader.Context())
	ReturnResult(responseWriter, "UpdateRole", controller.Actions.UpdateRole(requestReader.Context(), caller, requestData))
}
