package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/fastays/fastays/config"
	"github.com/fastays/fastays/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the complete booking list as one JSON value under a
// single key. Every save writes the full snapshot, so writes are
// idempotent given identical input.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg config.RedisConfig, key string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		key:    key,
	}
}

// Load reads the persisted list. An absent key or an undecodable payload
// yields an empty list; only transport errors are returned.
func (s *RedisStore) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []domain.Booking{}, nil
		}
		return nil, err
	}
	return decodeBookings(data), nil
}

func (s *RedisStore) Save(ctx context.Context, bookings []domain.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, payload, 0).Err()
}

func decodeBookings(data []byte) []domain.Booking {
	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("discarding undecodable bookings payload: %v", err)
		return []domain.Booking{}
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings
}
