package tasks

import (
	"context"
	"time"
	Config "wallet-ledger/config"
	"wallet-ledger/dto"
	"wallet-ledger/services"
	"wallet-ledger/utility/logger"

	"github.com/robfig/cron/v3"
)

// PriceFeed ... anything whose cached prices can be refreshed
type PriceFeed interface {
	Refresh(ctx context.Context) ([]dto.Price, error)
}

// RefreshPrices ... reloads the cached price list. Never touches the ledger.
func RefreshPrices(prices PriceFeed, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	refreshed, err := prices.Refresh(ctx)
	if err != nil {
		logger.Error("Error response from price refresh job : %s", err)
		return err
	}
	logger.Debug("Price refresh job cached %d prices", len(refreshed))
	return nil
}

// ExecutePriceRefreshCronJob ... schedules RefreshPrices and returns the running scheduler
func ExecutePriceRefreshCronJob(prices *services.PriceFeedService, config Config.Data) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(config.PriceRefreshSchedule, func() { _ = RefreshPrices(prices, 30*time.Second) }); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
