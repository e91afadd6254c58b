package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Ledger backends
const (
	LedgerBackendSQL       = "sql"
	LedgerBackendFirestore = "firestore"
)

//Data : config data
type Data struct {
	AppPort              string `mapstructure:"appPort"  yaml:"appPort,omitempty"`
	ServiceName          string `mapstructure:"serviceName"  yaml:"serviceName,omitempty"`
	Environment          string `mapstructure:"environment"  yaml:"environment,omitempty"`
	LogLevel             string `mapstructure:"logLevel"  yaml:"logLevel,omitempty"`
	RequestTimeout       int    `mapstructure:"requestTimeout"  yaml:"requestTimeout,omitempty"`
	AuthenticatorKey     string `mapstructure:"authenticatorKey"  yaml:"authenticatorKey,omitempty"`
	LedgerBackend        string `mapstructure:"ledgerBackend"  yaml:"ledgerBackend,omitempty"`
	LedgerMaxAttempts    int    `mapstructure:"ledgerMaxAttempts"  yaml:"ledgerMaxAttempts,omitempty"`
	DBDialect            string `mapstructure:"dbDialect"  yaml:"dbDialect,omitempty"`
	DBConnectionString   string `mapstructure:"dbConnectionString"  yaml:"dbConnectionString,omitempty"`
	DBHost               string `mapstructure:"dbHost"  yaml:"dbHost,omitempty"`
	DBUser               string `mapstructure:"dbUser"  yaml:"dbUser,omitempty"`
	DBPassword           string `mapstructure:"dbPassword"  yaml:"dbPassword,omitempty"`
	DBName               string `mapstructure:"dbName"  yaml:"dbName,omitempty"`
	DBMigrationPath      string `mapstructure:"dbMigrationPath"  yaml:"dbMigrationPath,omitempty"`
	MaxIdleConns         int    `mapstructure:"maxIdleConns"  yaml:"maxIdleConns,omitempty"`
	MaxOpenConns         int    `mapstructure:"maxOpenConns"  yaml:"maxOpenConns,omitempty"`
	ConnMaxLifetime      int    `mapstructure:"connMaxLifetime"  yaml:"connMaxLifetime,omitempty"`
	FirebaseProjectID    string `mapstructure:"firebaseProjectId"  yaml:"firebaseProjectId,omitempty"`
	FirebaseCredentials  string `mapstructure:"firebaseCredentialsFile"  yaml:"firebaseCredentialsFile,omitempty"`
	PriceFeedURL         string `mapstructure:"priceFeedURL"  yaml:"priceFeedURL,omitempty"`
	PriceCacheDuration   int    `mapstructure:"priceCacheDuration"  yaml:"priceCacheDuration,omitempty"`
	PurgeCacheInterval   int    `mapstructure:"purgeCacheInterval"  yaml:"purgeCacheInterval,omitempty"`
	PriceRefreshSchedule string `mapstructure:"priceRefreshSchedule"  yaml:"priceRefreshSchedule,omitempty"`
	RedisAddress         string `mapstructure:"redisAddress"  yaml:"redisAddress,omitempty"`
	RedisPassword        string `mapstructure:"redisPassword"  yaml:"redisPassword,omitempty"`
	SentryDSN            string `mapstructure:"sentryDsn"  yaml:"sentryDsn,omitempty"`
}

// SetDefaults ... values applied when neither the config file nor the environment provides one
func SetDefaults() {
	viper.SetDefault("appPort", "9000")
	viper.SetDefault("serviceName", "wallet-ledger")
	viper.SetDefault("environment", "development")
	viper.SetDefault("logLevel", "INFO")
	viper.SetDefault("requestTimeout", 30)
	viper.SetDefault("ledgerBackend", LedgerBackendSQL)
	viper.SetDefault("ledgerMaxAttempts", 5)
	viper.SetDefault("dbDialect", "mysql")
	viper.SetDefault("dbMigrationPath", "./migration")
	viper.SetDefault("maxIdleConns", 25)
	viper.SetDefault("maxOpenConns", 50)
	viper.SetDefault("connMaxLifetime", 300)
	viper.SetDefault("priceCacheDuration", 60)
	viper.SetDefault("purgeCacheInterval", 120)
	viper.SetDefault("priceRefreshSchedule", "@every 1m")
}

//Init : initialize data
func (c *Data) Init(configDir string) {

	dir, dirErr := os.Getwd()
	if dirErr != nil {
		log.Printf("Cannot set default input/output directory to the current working directory >> %s", dirErr)
	}

	SetDefaults()
	viper.SetEnvPrefix("wl") // Prefix all env variable with WL (Wallet Ledger)
	viper.AutomaticEnv()
	for _, key := range []string{"appPort", "authenticatorKey", "dbConnectionString", "dbPassword", "firebaseCredentialsFile", "redisPassword", "sentryDsn"} {
		_ = viper.BindEnv(key)
	}

	viper.SetConfigName("config")
	viper.AddConfigPath("../")
	viper.AddConfigPath(dir)
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
		}
		log.Printf("Configuration file not found, using environment and defaults >> %s", err)
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			if err := viper.ReadInConfig(); err != nil {
				log.Printf("Could not reload changed config file %s >> %s", e.Name, err)
				return
			}
			_ = viper.Unmarshal(c)
			log.Println("Config file changed:", e.Name)
		})
	}

	if err := viper.Unmarshal(c); err != nil {
		panic(fmt.Errorf("\n fatal error: could not decode config >>%s ", err))
	}
	log.Println("App configuration loaded successfully!")
}
