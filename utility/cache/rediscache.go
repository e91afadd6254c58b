package cache

import (
	"time"
	"wallet-ledger/utility/logger"

	"github.com/go-redis/redis/v7"
)

// Redis ... cache shared between processes, used when a redis address is configured
type Redis struct {
	Client *redis.Client
	Prefix string
	Expiry time.Duration
}

// InitializeRedis ...
func InitializeRedis(address, password, prefix string, expiry time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       0,
	})
	if err := client.Ping().Err(); err != nil {
		return nil, err
	}
	return &Redis{Client: client, Prefix: prefix, Expiry: expiry}, nil
}

// Set ...
func (r *Redis) Set(key string, value []byte) {
	if err := r.Client.Set(r.Prefix+key, value, r.Expiry).Err(); err != nil {
		logger.Error("Error writing %s to redis cache : %s", key, err)
	}
}

// Get ...
func (r *Redis) Get(key string) ([]byte, bool) {
	value, err := r.Client.Get(r.Prefix + key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Error("Error reading %s from redis cache : %s", key, err)
		return nil, false
	}
	return value, true
}
