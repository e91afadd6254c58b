package permissions

var (
	All = map[string]string{
		"BuyAsset":          "buy-asset",
		"SellAsset":         "sell-asset",
		"SwapAsset":         "swap-asset",
		"DepositAsset":      "deposit-asset",
		"DepositWebhook":    "deposit-webhook",
		"GetUserAssets":     "get-assets",
		"GetTransactions":   "get-transactions",
		"GetPrices":         "get-prices",
		"GetDepositAddress": "get-address",
		"UpdateProfile":     "update-profile",
		"UpdateRole":        "update-role",
	}
)
