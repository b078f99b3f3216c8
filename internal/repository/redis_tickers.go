package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTickerRepository stores the watchlist as a Redis list. Overwrite is a
// transactional DEL + RPUSH so readers never observe a half-written list.
type RedisTickerRepository struct {
	client *redis.Client
	key    string
}

func NewRedisTickerRepository(client *redis.Client, key string) *RedisTickerRepository {
	if key == "" {
		key = "stockdash:tickers"
	}
	return &RedisTickerRepository{client: client, key: key}
}

// NewRedisClient connects and pings a Redis server.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *RedisTickerRepository) Read(ctx context.Context) ([]string, error) {
	tickers, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read tickers list: %w", err)
	}
	return tickers, nil
}

func (r *RedisTickerRepository) Overwrite(ctx context.Context, tickers []string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key)
	if len(tickers) > 0 {
		vals := make([]interface{}, len(tickers))
		for i, t := range tickers {
			vals[i] = t
		}
		pipe.RPush(ctx, r.key, vals...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("overwrite tickers list: %w", err)
	}
	return nil
}
