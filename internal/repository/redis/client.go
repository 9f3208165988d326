package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/codec"
	"github.com/iamasit07/lineup/internal/domain"
)

const keyPrefix = "lineup:save:"

// NewClient connects and pings the server.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "could not connect to redis at %s", addr)
	}
	return client, nil
}

// Store keeps each save slot as one string key. A zero TTL never expires.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{client: client, ttl: ttl, logger: logger.With(zap.String("component", "redis"))}
}

func Key(slot string) string {
	return keyPrefix + slot
}

func (s *Store) Save(ctx context.Context, slot string, g *domain.Game) error {
	data, err := codec.Marshal(g)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, Key(slot), data, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "set %s", Key(slot))
	}
	s.logger.Debug("save key written", zap.String("key", Key(slot)), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *Store) Load(ctx context.Context, slot string) (*domain.Game, error) {
	data, err := s.client.Get(ctx, Key(slot)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNoSavedGame
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", Key(slot))
	}

	g, err := codec.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", Key(slot))
	}
	return g, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
