// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PublicURL is the externally reachable base URL of the API. Files stored
	// on local disk are served under PublicURL + "/uploads/".
	PublicURL string

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache and build queue)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	CacheTTL       time.Duration

	// BuildCommand is the external site generator run by the build worker.
	// Empty means build requests are only queued and logged.
	BuildCommand string
	BuildDir     string

	// Upload storage. With S3Endpoint empty, uploads go to UploadDir.
	UploadDir   string
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(envOrDefault("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8000"),
		Env:       envOrDefault("APP_ENV", "development"),
		PublicURL: strings.TrimRight(envOrDefault("APP_PUBLIC_URL", "http://localhost:8000"), "/"),

		CORSOrigins: splitList(envOrDefault("CORS_ORIGINS", "http://localhost:5173")),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "staticcms"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "staticcms"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		CacheTTL:       ttl,

		BuildCommand: os.Getenv("BUILD_COMMAND"),
		BuildDir:     envOrDefault("BUILD_DIR", "."),

		UploadDir:   envOrDefault("UPLOAD_DIR", "output/uploads"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "staticcms-uploads"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.UseS3() && (cfg.S3AccessKey == "" || cfg.S3SecretKey == "") {
			return nil, fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY must be set when S3_ENDPOINT is configured")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UseS3 reports whether uploads go to object storage instead of local disk.
func (c *Config) UseS3() bool {
	return c.S3Endpoint != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
