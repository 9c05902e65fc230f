package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisJobStore struct {
	client    *redis.Client
	keyPrefix string
}

var _ JobStore = (*RedisJobStore)(nil)

func NewRedisJobStore(url, keyPrefix string) (*RedisJobStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisJobStore{
		client:    client,
		keyPrefix: keyPrefix,
	}, nil
}

func (s *RedisJobStore) Save(ctx context.Context, record *JobRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal job record: %w", err)
	}

	// SetNX rejects duplicates the same way the memory store does
	ok, err := s.client.SetNX(ctx, s.key(record.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save job record: %w", err)
	}
	if !ok {
		return fmt.Errorf("job with ID %s already exists", record.ID)
	}

	return nil
}

func (s *RedisJobStore) Get(ctx context.Context, id string) (*JobRecord, error) {
	data, err := s.client.Get(ctx, s.key(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("job with ID %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job record: %w", err)
	}

	var record JobRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job record: %w", err)
	}

	return &record, nil
}

func (s *RedisJobStore) UpdateStatus(ctx context.Context, id string, status string) error {
	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	record.Status = status

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal job record: %w", err)
	}

	return s.client.Set(ctx, s.key(id), data, 0).Err()
}

func (s *RedisJobStore) Close() error {
	return s.client.Close()
}

func (s *RedisJobStore) key(id string) string {
	return s.keyPrefix + ":" + id
}
