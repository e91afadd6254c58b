package routes

import (
	"net/http"
	"time"
	"wallet-ledger/app"
	"wallet-ledger/controllers"
	"wallet-ledger/middlewares"
	"wallet-ledger/utility/permissions"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Register ... Adds router handle to general handler function
func Register(router *mux.Router, application *app.App) {
	config := application.Config

	controller := controllers.NewController(config)
	actionController := controllers.NewActionController(config, application.Actions)
	userAssetController := controllers.NewUserAssetController(config, application.Assets)
	transactionController := controllers.NewTransactionController(config, application.Transactions)
	assetController := controllers.NewAssetController(config, application.Prices)
	userAddressController := controllers.NewUserAddressController(config, application.Addresses)

	apiRouter := router.PathPrefix("").Subrouter()
	router.PathPrefix("/swagger").Handler(httpSwagger.WrapHandler)

	// General Routes
	apiRouter.HandleFunc("/ping", controller.Ping).Methods(http.MethodGet)

	var requestTimeout = time.Duration(config.RequestTimeout) * time.Second

	// Action Routes
	apiRouter.HandleFunc("/actions/buy", middlewares.NewMiddleware(config, actionController.Buy).ValidateAuthToken(permissions.All["BuyAsset"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
	apiRouter.HandleFunc("/actions/sell", middlewares.NewMiddleware(config, actionController.Sell).ValidateAuthToken(permissions.All["SellAsset"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
	apiRouter.HandleFunc("/actions/swap", middlewares.NewMiddleware(config, actionController.Swap).ValidateAuthToken(permissions.All["SwapAsset"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
	apiRouter.HandleFunc("/actions/deposit", middlewares.NewMiddleware(config, actionController.Deposit).ValidateAuthToken(permissions.All["DepositAsset"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
	apiRouter.HandleFunc("/webhooks/deposit", middlewares.NewMiddleware(config, actionController.DepositWebhook).ValidateAuthToken(permissions.All["DepositWebhook"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)

	// User Routes
	apiRouter.HandleFunc("/users/{userId}/bank-details", middlewares.NewMiddleware(config, actionController.UpdateBankDetails).ValidateAuthToken(permissions.All["UpdateProfile"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPut)
	apiRouter.HandleFunc("/users/{userId}/role", middlewares.NewMiddleware(config, actionController.UpdateRole).ValidateAuthToken(permissions.All["UpdateRole"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPut)
	apiRouter.HandleFunc("/users/{userId}/assets", middlewares.NewMiddleware(config, userAssetController.GetUserAssets).ValidateAuthToken(permissions.All["GetUserAssets"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
	apiRouter.HandleFunc("/users/{userId}/assets/{symbol}", middlewares.NewMiddleware(config, userAssetController.GetUserAsset).ValidateAuthToken(permissions.All["GetUserAssets"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
	apiRouter.HandleFunc("/users/{userId}/assets/{symbol}/address", middlewares.NewMiddleware(config, userAddressController.GetAssetAddress).ValidateAuthToken(permissions.All["GetDepositAddress"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
	apiRouter.HandleFunc("/users/{userId}/transactions", middlewares.NewMiddleware(config, transactionController.GetTransactions).ValidateAuthToken(permissions.All["GetTransactions"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)

	// Asset Routes
	apiRouter.HandleFunc("/prices", middlewares.NewMiddleware(config, assetController.GetPrices).ValidateAuthToken(permissions.All["GetPrices"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
}
