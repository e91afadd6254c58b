package controllers

import (
	"net/http"
	"strconv"
	"wallet-ledger/dto"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/response"

	"github.com/gorilla/mux"
)

// GetTransactions ... Retrieves the transaction history of a user, newest first
func (controller TransactionController) GetTransactions(responseWriter http.ResponseWriter, requestReader *http.Request) {
	userID := mux.Vars(requestReader)["userId"]

	limit := 0
	if rawLimit := requestReader.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			ReturnError(responseWriter, "GetTransactions", http.StatusBadRequest, err, response.New().PlainError(errorcode.INPUT_ERR_CODE, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	logger.Info("Incoming request details for GetTransactions : userID : %s, limit : %d", userID, limit)

	transactions, err := controller.Transactions.FetchTransactions(requestReader.Context(), userID, limit)
	if err != nil {
		ReturnRepositoryError(responseWriter, "GetTransactions", err)
		return
	}
	ReturnSuccess(responseWriter, "GetTransactions", dto.TransactionListResponse{Transactions: transactions})
}
