package main

import (
	"context"
	"net/http"
	"os"
	"time"
	"wallet-ledger/app"
	Config "wallet-ledger/config"
	"wallet-ledger/middlewares"
	"wallet-ledger/routes"
	"wallet-ledger/tasks"
	"wallet-ledger/utility/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
)

func main() {
	config := Config.Data{}
	config.Init(os.Getenv("WL_CONFIG_DIR"))
	logger.SetLevel(config.LogLevel)

	if config.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: config.SentryDSN, Environment: config.Environment}); err != nil {
			logger.Error("Could not initialise sentry : %s", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	application, err := app.New(context.Background(), config)
	if err != nil {
		logger.Fatal("Could not start %s : %s", config.ServiceName, err)
	}
	defer application.Close()

	priceRefresh, err := tasks.ExecutePriceRefreshCronJob(application.Prices, config)
	if err != nil {
		logger.Fatal("Invalid price refresh schedule %q : %s", config.PriceRefreshSchedule, err)
	}
	defer priceRefresh.Stop()

	router := mux.NewRouter()
	routes.Register(router, application)

	serviceAddress := ":" + config.AppPort

	middleware := middlewares.NewMiddleware(config, router.ServeHTTP).
		LogAPIRequests().
		Build()

	logger.Info("Server started and listening on port %s", config.AppPort)
	if err := http.ListenAndServe(serviceAddress, middleware); err != nil {
		logger.Fatal("Server stopped : %s", err)
	}
}
