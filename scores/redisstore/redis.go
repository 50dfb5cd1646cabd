// Package redisstore keeps the high score table in a redis hash.
package redisstore

import (
	"context"
	"strconv"

	"github.com/battlesnakeio/classic/scores"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// Key is the hash holding one field per difficulty.
const Key = "snakeHighScores"

// Store is a redis backed scores.Store.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}

// Load reads the table. A missing hash reads as an all zero table.
func (rs *Store) Load(ctx context.Context) (scores.Table, error) {
	fields, err := rs.client.HGetAll(Key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read high scores")
	}

	raw := make(map[string]int, len(fields))
	for k, v := range fields {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid high score for %s", k)
		}
		raw[k] = n
	}
	return scores.FromMap(raw)
}

// Save replaces the hash with the full table in a single transaction.
func (rs *Store) Save(ctx context.Context, t scores.Table) error {
	fields := make(map[string]interface{}, len(t))
	for k, v := range t.ToMap() {
		fields[k] = v
	}

	pipe := rs.client.TxPipeline()
	pipe.Del(Key)
	if len(fields) > 0 {
		pipe.HMSet(Key, fields)
	}
	_, err := pipe.Exec()
	return errors.Wrap(err, "unable to write high scores")
}
