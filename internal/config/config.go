package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host           string `yaml:"host"`
		Port           string `yaml:"port"`
		Name           string `yaml:"name"`
		User           string `yaml:"user"`
		Password       string `yaml:"password"`
		ConnectTimeout string `yaml:"connect_timeout"`
		TxTimeout      string `yaml:"tx_timeout"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Seed struct {
		DryRun bool `yaml:"dry_run"`
	} `yaml:"seed"`
}

// Load reads YAML config from path (the file is optional) and applies
// environment overrides: DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS,
// DB_CONNECT_TIMEOUT, DB_TX_TIMEOUT, SEED_LOG_LEVEL, SEED_DRY_RUN.
func Load(path string) (Config, error) {
	cfg := Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.Name = "learnhub"
	cfg.Database.User = "learnhub"
	cfg.Log.Level = "info"

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Env-only configuration is the common deployment mode.
	default:
		return cfg, err
	}

	cfg.Database.Host = envStr("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = envStr("DB_PORT", cfg.Database.Port)
	cfg.Database.Name = envStr("DB_NAME", cfg.Database.Name)
	cfg.Database.User = envStr("DB_USER", cfg.Database.User)
	cfg.Database.Password = envStr("DB_PASS", cfg.Database.Password)
	cfg.Database.ConnectTimeout = envStr("DB_CONNECT_TIMEOUT", cfg.Database.ConnectTimeout)
	cfg.Database.TxTimeout = envStr("DB_TX_TIMEOUT", cfg.Database.TxTimeout)
	cfg.Log.Level = envStr("SEED_LOG_LEVEL", cfg.Log.Level)
	if v := os.Getenv("SEED_DRY_RUN"); v != "" {
		cfg.Seed.DryRun = Truthy(v)
	}

	return cfg, nil
}

// DSN assembles the postgres connection string from the database settings.
func (c Config) DSN() string {
	host := c.Database.Host + ":" + c.Database.Port
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     host,
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=disable",
	}
	if c.Database.Password == "" {
		u.User = url.User(c.Database.User)
	}
	return u.String()
}

// ConnectTimeout returns the connection-acquisition timeout, default 5s.
func (c Config) ConnectTimeout() time.Duration {
	return Duration(c.Database.ConnectTimeout, 5*time.Second)
}

// TxTimeout returns the per-bundle transaction timeout; zero means indefinite.
func (c Config) TxTimeout() time.Duration {
	return Duration(c.Database.TxTimeout, 0)
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// Truthy interprets the loose boolean convention used by SEED_DRY_RUN.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
