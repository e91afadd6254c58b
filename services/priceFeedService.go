package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	Config "wallet-ledger/config"
	"wallet-ledger/dto"
	"wallet-ledger/utility"
	"wallet-ledger/utility/cache"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const pricesCacheKey = "prices"

// MockPrices ... served when no remote price feed is configured
var MockPrices = []dto.Price{
	{Symbol: "BTC", PriceUsd: 67000},
	{Symbol: "ETH", PriceUsd: 3500},
	{Symbol: "USDT", PriceUsd: 1},
	{Symbol: "BNB", PriceUsd: 600},
	{Symbol: "SOL", PriceUsd: 150},
}

// PriceFeedService ... USD prices of supported assets, cached between refreshes
type PriceFeedService struct {
	Cache  cache.Cache
	Config Config.Data
	Client *resty.Client
}

// NewPriceFeedService ...
func NewPriceFeedService(cache cache.Cache, config Config.Data) *PriceFeedService {
	service := PriceFeedService{
		Cache:  cache,
		Config: config,
	}
	if config.PriceFeedURL != "" {
		service.Client = NewClient(config.PriceFeedURL, 10*time.Second)
	}
	return &service
}

// GetPrices ... cached prices, fetched from the feed on a miss
func (service *PriceFeedService) GetPrices(ctx context.Context) ([]dto.Price, error) {
	if cached, found := service.Cache.Get(pricesCacheKey); found {
		prices := []dto.Price{}
		if err := json.Unmarshal(cached, &prices); err == nil {
			return prices, nil
		}
		logger.Warning("Discarding unreadable cached prices")
	}
	return service.Refresh(ctx)
}

// Refresh ... fetches prices from the feed and replaces the cached copy
func (service *PriceFeedService) Refresh(ctx context.Context) ([]dto.Price, error) {
	prices, err := service.fetch(ctx)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(prices)
	if err != nil {
		return nil, serviceError(http.StatusInternalServerError, errorcode.SERVER_ERR_CODE, "could not encode prices : %s", err)
	}
	service.Cache.Set(pricesCacheKey, encoded)
	return prices, nil
}

func (service *PriceFeedService) fetch(ctx context.Context) ([]dto.Price, error) {
	if service.Client == nil {
		prices := make([]dto.Price, len(MockPrices))
		copy(prices, MockPrices)
		return prices, nil
	}

	prices := []dto.Price{}
	response, err := service.Client.R().SetContext(ctx).SetResult(&prices).Get("")
	if err != nil {
		logger.Error("Error From price feed %s : %s", service.Config.PriceFeedURL, err)
		return nil, serviceError(http.StatusBadGateway, errorcode.PRICE_FEED_ERR, "Price feed is unavailable")
	}
	if response.IsError() {
		logger.Error("Price feed %s responded with %d : %s", service.Config.PriceFeedURL, response.StatusCode(), response.String())
		return nil, serviceError(http.StatusBadGateway, errorcode.PRICE_FEED_ERR, "Price feed is unavailable")
	}
	for i := range prices {
		prices[i].Symbol = utility.NormalizeSymbol(prices[i].Symbol)
	}
	return prices, nil
}

// PriceOf ... USD price of one asset
func (service *PriceFeedService) PriceOf(ctx context.Context, assetSymbol string) (decimal.Decimal, error) {
	prices, err := service.GetPrices(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	assetSymbol = utility.NormalizeSymbol(assetSymbol)
	for _, price := range prices {
		if price.Symbol == assetSymbol && price.PriceUsd > 0 {
			return decimal.NewFromFloat(price.PriceUsd), nil
		}
	}
	return decimal.Zero, serviceError(http.StatusBadRequest, errorcode.PRICE_FEED_ERR, "No price available for %s", assetSymbol)
}
