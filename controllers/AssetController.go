package controllers

import (
	"net/http"
)

// GetPrices ... current USD price of every supported asset
func (controller AssetController) GetPrices(responseWriter http.ResponseWriter, requestReader *http.Request) {
	prices, err := controller.Prices.GetPrices(requestReader.Context())
	if err != nil {
		ReturnRepositoryError(responseWriter, "GetPrices", err)
		return
	}
	ReturnSuccess(responseWriter, "GetPrices", prices)
}
