package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo-manager/backend/internal/models"
)

const defaultSnapshotKey = "todo:snapshot"

// RedisStore keeps the whole snapshot as a JSON blob under a single key,
// standing in for a remote object store.
type RedisStore struct {
	client *redis.Client
	key    string
	ctx    context.Context
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	Key          string
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		Key:          defaultSnapshotKey,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

func NewRedisStore(config *RedisConfig) *RedisStore {
	if config == nil {
		config = DefaultRedisConfig()
	}
	if config.Key == "" {
		config.Key = defaultSnapshotKey
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	return &RedisStore{
		client: rdb,
		key:    config.Key,
		ctx:    context.Background(),
	}
}

func (s *RedisStore) Load() (models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(s.ctx, 3*time.Second)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return models.EmptySnapshot(), nil
		}
		return models.Snapshot{}, fmt.Errorf("failed to load snapshot from redis: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return snapshot, nil
}

func (s *RedisStore) Save(snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(s.ctx, 3*time.Second)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Name() string {
	return "redis"
}

func (s *RedisStore) Ping() error {
	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()

	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
