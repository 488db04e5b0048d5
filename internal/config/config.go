// Package config loads application configuration from an optional YAML file,
// the environment and built-in defaults, in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"` // postgres:// URL or SQLite file path
}

// RedisConfig configures the leaderboard store. An empty Address disables it.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
	BcryptCost         int    `mapstructure:"bcrypt_cost"`
	PasswordPepper     string `mapstructure:"password_pepper"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig points at an external catalog directory. Empty uses the embedded catalog.
type CatalogConfig struct {
	Dir string `mapstructure:"dir"`
}

type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	DefaultLimit  int           `mapstructure:"default_limit"`
	DefaultWindow time.Duration `mapstructure:"default_window"`
	Whitelist     []string      `mapstructure:"whitelist"`
	Blacklist     []string      `mapstructure:"blacklist"`
}

var defaults = map[string]any{
	"server.port":               8080,
	"server.shutdown_timeout":   "10s",
	"database.url":              "file:pathfinder.db",
	"redis.address":             "",
	"redis.password":            "",
	"redis.db":                  0,
	"auth.jwt_secret":           "",
	"auth.jwt_expiration_hours": 24,
	"auth.bcrypt_cost":          12,
	"auth.password_pepper":      "",
	"logging.level":             "info",
	"logging.format":            "json",
	"catalog.dir":               "",
	"ratelimit.enabled":         true,
	"ratelimit.default_limit":   1000,
	"ratelimit.default_window":  "1m",
	"ratelimit.whitelist":       []string{},
	"ratelimit.blacklist":       []string{},
}

// envNames maps config keys to the environment variables that override them.
var envNames = map[string]string{
	"server.port":               "PORT",
	"database.url":              "DATABASE_URL",
	"redis.address":             "REDIS_ADDRESS",
	"redis.password":            "REDIS_PASSWORD",
	"redis.db":                  "REDIS_DB",
	"auth.jwt_secret":           "JWT_SECRET",
	"auth.jwt_expiration_hours": "JWT_EXPIRATION_HOURS",
	"auth.bcrypt_cost":          "BCRYPT_COST",
	"auth.password_pepper":      "PASSWORD_PEPPER",
	"logging.level":             "LOG_LEVEL",
	"logging.format":            "LOG_FORMAT",
	"catalog.dir":               "CATALOG_DIR",
	"ratelimit.enabled":         "RATE_LIMIT_ENABLED",
	"ratelimit.default_limit":   "RATE_LIMIT_DEFAULT",
	"ratelimit.default_window":  "RATE_LIMIT_WINDOW",
	"ratelimit.whitelist":       "RATE_LIMIT_WHITELIST",
	"ratelimit.blacklist":       "RATE_LIMIT_BLACKLIST",
}

// Load reads configuration. When path is empty, config.yaml is looked up in . and ./configs
// and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges. A missing JWT secret is only reported by JWT, since commands
// other than serve do not need one.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if err := (&PasswordConfig{BcryptCost: c.Auth.BcryptCost}).normalize(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console; got %q", c.Logging.Format)
	}
	if c.RateLimit.Enabled && (c.RateLimit.DefaultLimit < 1 || c.RateLimit.DefaultWindow <= 0) {
		return fmt.Errorf("ratelimit requires a positive default_limit and default_window")
	}
	return nil
}

// JWT returns the validated token configuration.
func (c *Config) JWT() (*JWTConfig, error) {
	return NewJWTConfig(c.Auth.JWTSecret, c.Auth.JWTExpirationHours)
}

// Password returns the validated password hashing configuration.
func (c *Config) Password() (*PasswordConfig, error) {
	return NewPasswordConfig(c.Auth.BcryptCost, c.Auth.PasswordPepper)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
