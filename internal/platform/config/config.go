// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles service settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
struct, then checks cross-field rules (a postgres source needs a DATABASE_URL,
and so on) before anything is wired.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/guildboard/internal/platform/validate"
)

// Catalog source kinds.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

// # Configuration Schema

// Config holds all runtime configuration of the catalog server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Catalog data source
	CatalogSource   string        `env:"CATALOG_SOURCE"    envDefault:"file"`
	CatalogFile     string        `env:"CATALOG_FILE"      envDefault:"./data/data.json"`
	CatalogURL      string        `env:"CATALOG_URL"`
	CatalogWatch    bool          `env:"CATALOG_WATCH"     envDefault:"false"`
	CatalogRedisKey string        `env:"CATALOG_REDIS_KEY" envDefault:"catalog:records"`
	LoadTimeout     time.Duration `env:"LOAD_TIMEOUT"      envDefault:"10s"`

	// Relational Database (PostgreSQL), only for the postgres source
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value store (Redis), only for the redis source
	RedisURL string `env:"REDIS_URL"`

	// Public key verifying operator tokens; reloads are disabled without it
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH"`

	// Cross-Origin Resource Sharing outside development
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks the rules env tags cannot express.
func (c *Config) Validate() error {
	validator := &validate.Validator{}
	validator.
		Required("SERVER_PORT", c.ServerPort).
		OneOf("CATALOG_SOURCE", c.CatalogSource, SourceFile, SourceHTTP, SourcePostgres, SourceRedis).
		Custom("LOAD_TIMEOUT", c.LoadTimeout <= 0, "Must be a positive duration")

	switch c.CatalogSource {
	case SourceFile:
		validator.Required("CATALOG_FILE", c.CatalogFile)
	case SourceHTTP:
		validator.Required("CATALOG_URL", c.CatalogURL).URL("CATALOG_URL", c.CatalogURL)
	case SourcePostgres:
		validator.Required("DATABASE_URL", c.DatabaseURL)
	case SourceRedis:
		validator.Required("REDIS_URL", c.RedisURL)
	}

	validator.Custom("CATALOG_WATCH", c.CatalogWatch && c.CatalogSource != SourceFile,
		"Only supported with the file source")

	return validator.Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigin reports whether a browser origin may call the API.
func (c *Config) AllowedOrigin(origin string) bool {
	return c.AllowedOriginSuffix != "" && strings.HasSuffix(origin, c.AllowedOriginSuffix)
}

// ReloadEnabled reports whether operator tokens can be verified.
func (c *Config) ReloadEnabled() bool {
	return c.JWTPubKeyPath != ""
}
