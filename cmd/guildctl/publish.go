// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/taibuivan/guildboard/internal/catalog"
	redisstore "github.com/taibuivan/guildboard/internal/platform/redis"
)

// setter is the subset of [redis.Client] publish needs.
type setter interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

func publishCmd() *cobra.Command {
	var (
		file     string
		redisURL string
		key      string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Validate a data file and store it under the redis catalog key",
		Long: `Publish decodes a JSON or YAML data file and stores it, re-encoded as JSON,
under the key read by servers running with CATALOG_SOURCE=redis. Servers pick the
new catalog up on their next load (POST /api/v1/catalog/reload).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			client, err := redisstore.NewClient(cmd.Context(), redisURL, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			count, err := publish(cmd.Context(), client, key, file)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "published %d records to %s\n", count, key)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "./data/data.json", "catalog data file (.json, .yaml or .yml)")
	flags.StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"), "redis connection URL")
	flags.StringVar(&key, "key", catalog.DefaultRedisKey, "redis key holding the catalog")
	return cmd
}

// publish stores the records of file under key and returns how many there are.
func publish(ctx context.Context, client setter, key, file string) (int, error) {
	records, err := catalog.NewFileSource(file).Load(ctx)
	if err != nil {
		return 0, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("encoding records: %w", err)
	}

	if err := client.Set(ctx, key, payload, 0).Err(); err != nil {
		return 0, fmt.Errorf("writing redis key %q: %w", key, err)
	}
	return len(records), nil
}
