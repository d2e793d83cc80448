// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is where the catalog document is published by default.
const DefaultRedisKey = "catalog:records"

// Getter is the subset of [redis.Client] the redis source needs.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource reads the catalog document (JSON) stored under a single key.
type RedisSource struct {
	client Getter
	key    string
}

// NewRedisSource constructs a [RedisSource]; an empty key uses [DefaultRedisKey].
func NewRedisSource(client Getter, key string) *RedisSource {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSource{client: client, key: key}
}

// Name implements [Source].
func (source *RedisSource) Name() string { return "redis" }

// Load implements [Source].
func (source *RedisSource) Load(ctx context.Context) ([]Record, error) {
	payload, err := source.client.Get(ctx, source.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis key %q is not set", source.key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading redis key %q: %w", source.key, err)
	}

	return DecodeRecords(payload, FormatJSON)
}
