package app

import (
	"context"
	"fmt"
	"time"
	Config "wallet-ledger/config"
	"wallet-ledger/database"
	"wallet-ledger/services"
	"wallet-ledger/utility/cache"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/validator"

	"cloud.google.com/go/firestore"
)

//App : app struct. Holds the store clients, built once at start up, and everything wired on top of them.
type App struct {
	Config    Config.Data
	Database  *database.Database
	Firestore *firestore.Client

	Ledger       database.Ledger
	Users        database.IUserRepository
	Cache        cache.Cache
	Validator    *validator.Validator
	Prices       *services.PriceFeedService
	Actions      services.Actions
	Assets       *services.UserAssetService
	Transactions *services.TransactionService
	Addresses    *services.UserAddressService
}

// New ... opens the configured ledger backend and wires the services over it
func New(ctx context.Context, config Config.Data) (*App, error) {
	app := &App{Config: config}

	switch config.LedgerBackend {
	case Config.LedgerBackendFirestore:
		client, err := database.NewFirestoreClient(ctx, config)
		if err != nil {
			return nil, err
		}
		app.Firestore = client
		app.Ledger = database.NewFirestoreLedger(client, config.LedgerMaxAttempts)
		app.Users = &database.FirestoreUserRepository{Client: client}
	default:
		db := &database.Database{Config: config}
		if err := db.LoadDBInstance(); err != nil {
			return nil, err
		}
		if err := db.RunDbMigrations(); err != nil {
			db.CloseDBInstance()
			return nil, err
		}
		app.Database = db
		app.Ledger = database.NewGormLedger(*db)
		app.Users = &database.UserRepository{BaseRepository: database.BaseRepository{Database: *db}}
	}

	priceCache, err := newCache(config)
	if err != nil {
		app.Close()
		return nil, err
	}
	if err := app.Wire(priceCache); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// Wire ... builds the services over the ledger and user store already set on app
func (app *App) Wire(priceCache cache.Cache) error {
	if app.Ledger == nil || app.Users == nil {
		return fmt.Errorf("app has no ledger store to wire")
	}
	requestValidator, err := validator.New()
	if err != nil {
		return err
	}

	app.Cache = priceCache
	app.Validator = requestValidator
	app.Prices = services.NewPriceFeedService(priceCache, app.Config)
	app.Actions = services.NewActionService(services.NewLedgerService(app.Ledger, app.Prices), app.Users, requestValidator)
	app.Assets = services.NewUserAssetService(app.Ledger)
	app.Transactions = services.NewTransactionService(app.Ledger)
	app.Addresses = services.NewUserAddressService()
	return nil
}

func newCache(config Config.Data) (cache.Cache, error) {
	expiry := time.Duration(config.PriceCacheDuration) * time.Second
	if config.RedisAddress != "" {
		redisCache, err := cache.InitializeRedis(config.RedisAddress, config.RedisPassword, config.ServiceName+":", expiry)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis at %s : %s", config.RedisAddress, err)
		}
		logger.Info("Caching prices in redis at %s", config.RedisAddress)
		return redisCache, nil
	}
	return cache.Initialize(expiry, time.Duration(config.PurgeCacheInterval)*time.Second), nil
}

// Close ... releases the store clients
func (app *App) Close() {
	if app.Database != nil && app.Database.DB != nil {
		app.Database.CloseDBInstance()
	}
	if app.Firestore != nil {
		if err := app.Firestore.Close(); err != nil {
			logger.Error("Error closing firestore client : %s", err)
		}
	}
}
