package database

import (
	"context"
	"fmt"
	"time"
	"wallet-ledger/config"
	"wallet-ledger/migration"
	"wallet-ledger/model"
	"wallet-ledger/utility/logger"

	"github.com/jinzhu/gorm"

	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

//Database : database struct
type Database struct {
	Config config.Data
	DB     *gorm.DB
}

// LoadDBInstance... opens the relational store selected by the configured dialect
func (database *Database) LoadDBInstance() error {
	db, err := gorm.Open(database.Config.DBDialect, database.connectionString())
	if err != nil {
		return fmt.Errorf("error creating database connection : %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = db.DB().PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database connection closed : %s", err)
	}

	if database.Config.DBDialect == "sqlite3" {
		// sqlite serialises writers, a single connection keeps in-memory databases shared
		db.DB().SetMaxOpenConns(1)
	} else {
		db.DB().SetMaxIdleConns(database.Config.MaxIdleConns)
		db.DB().SetMaxOpenConns(database.Config.MaxOpenConns)
		db.DB().SetConnMaxLifetime(time.Second * time.Duration(database.Config.ConnMaxLifetime))
	}
	db.LogMode(database.Config.Environment == "development")
	database.DB = db

	logger.Info("Database connection successful!")
	return nil
}

func (database *Database) connectionString() string {
	if database.Config.DBConnectionString != "" {
		return database.Config.DBConnectionString
	}
	switch database.Config.DBDialect {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable", database.Config.DBHost, database.Config.DBUser, database.Config.DBPassword, database.Config.DBName)
	case "sqlite3":
		return ":memory:"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", database.Config.DBUser, database.Config.DBPassword, database.Config.DBHost, database.Config.DBName)
	}
}

// RunDbMigrations ... applies the goose migrations, or auto migrates the models on sqlite
func (database *Database) RunDbMigrations() error {
	if database.Config.DBDialect == "sqlite3" {
		return database.DB.AutoMigrate(&model.UserAsset{}, &model.Transaction{}, &model.User{}).Error
	}
	return migration.Run(database.DB.DB(), database.Config.DBDialect, database.Config.DBMigrationPath)
}

// CloseDBInstance ...
func (database *Database) CloseDBInstance() {
	if err := database.DB.Close(); err != nil {
		logger.Error("Error closing database connection : %s", err)
	}
}
