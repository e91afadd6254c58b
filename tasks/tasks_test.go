package tasks

import (
	"context"
	"errors"
	"testing"
	"time"
	"wallet-ledger/config"
	"wallet-ledger/dto"
	"wallet-ledger/services"
	"wallet-ledger/utility/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	err      error
	deadline bool
}

func (feed *stubFeed) Refresh(ctx context.Context) ([]dto.Price, error) {
	_, feed.deadline = ctx.Deadline()
	return nil, feed.err
}

func TestRefreshPrices(t *testing.T) {
	feed := &stubFeed{}
	require.NoError(t, RefreshPrices(feed, time.Second))
	assert.True(t, feed.deadline)

	feed.err = errors.New("feed down")
	assert.Equal(t, feed.err, RefreshPrices(feed, time.Second))
}

func TestExecutePriceRefreshCronJob(t *testing.T) {
	prices := services.NewPriceFeedService(cache.Initialize(time.Minute, time.Minute), config.Data{})

	_, err := ExecutePriceRefreshCronJob(prices, config.Data{PriceRefreshSchedule: "not a schedule"})
	assert.Error(t, err)

	scheduler, err := ExecutePriceRefreshCronJob(prices, config.Data{PriceRefreshSchedule: "@every 1h"})
	require.NoError(t, err)
	defer scheduler.Stop()
	assert.Len(t, scheduler.Entries(), 1)
}
