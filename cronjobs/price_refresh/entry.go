package main

import (
	"fmt"
	"os"
	"time"
	Config "wallet-ledger/config"
	"wallet-ledger/services"
	"wallet-ledger/tasks"
	"wallet-ledger/utility/cache"
	"wallet-ledger/utility/logger"
)

// Warms the shared price cache once. Only useful when a redis cache is configured.
func main() {
	fmt.Println("Starting price refresh")

	config := Config.Data{}
	config.Init(os.Getenv("WL_CONFIG_DIR"))
	logger.SetLevel(config.LogLevel)

	if config.RedisAddress == "" {
		logger.Info("No redis cache configured, nothing to warm... exiting")
		return
	}
	priceCache, err := cache.InitializeRedis(config.RedisAddress, config.RedisPassword, config.ServiceName+":", time.Duration(config.PriceCacheDuration)*time.Second)
	if err != nil {
		logger.Fatal("Could not connect to redis at %s : %s", config.RedisAddress, err)
	}

	prices := services.NewPriceFeedService(priceCache, config)
	if err := tasks.RefreshPrices(prices, 30*time.Second); err != nil {
		os.Exit(1)
	}
}
