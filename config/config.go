package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Reservation store (read-only).
	DatabaseURL           string        `mapstructure:"DATABASE_URL"`
	DatabaseUsername      string        `mapstructure:"DATABASE_USERNAME"`
	DatabaseKey           string        `mapstructure:"DATABASE_KEY"`
	ReservationDatabaseID string        `mapstructure:"RESERVATION_DATABASE_ID"`
	ReservationCollection string        `mapstructure:"RESERVATION_COLLECTION_ID"`
	QueryTimeout          time.Duration `mapstructure:"QUERY_TIMEOUT"`
	Timezone              string        `mapstructure:"TIMEZONE"`

	// Staff authorization.
	JWTSecret    string        `mapstructure:"JWT_SECRET"`
	StaffRoles   string        `mapstructure:"STAFF_ROLES"`
	AuthCacheTTL time.Duration `mapstructure:"AUTH_CACHE_TTL"`

	// Redis configuration. Leave RedisAddr empty to run without a verdict cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
}

// ConfigurationError reports a required setting that is missing or unusable.
// It is fatal at startup.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Key, e.Reason)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_USERNAME", "")
	v.SetDefault("DATABASE_KEY", "")
	v.SetDefault("RESERVATION_DATABASE_ID", "reservation-db")
	v.SetDefault("RESERVATION_COLLECTION_ID", "reservations")
	v.SetDefault("QUERY_TIMEOUT", "10s")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("STAFF_ROLES", "staff,admin")
	v.SetDefault("AUTH_CACHE_TTL", "5m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_AUTH_DB", 1)
}

// Load reads config.yaml from "." or "./config" when present, then lets
// environment variables override it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return &ConfigurationError{Key: "DATABASE_URL", Reason: "is required"}
	}
	if c.ReservationDatabaseID == "" {
		return &ConfigurationError{Key: "RESERVATION_DATABASE_ID", Reason: "must not be empty"}
	}
	if c.ReservationCollection == "" {
		return &ConfigurationError{Key: "RESERVATION_COLLECTION_ID", Reason: "must not be empty"}
	}
	if c.QueryTimeout <= 0 {
		return &ConfigurationError{Key: "QUERY_TIMEOUT", Reason: "must be positive"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigurationError{Key: "TIMEZONE", Reason: err.Error()}
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return &ConfigurationError{Key: "JWT_SECRET", Reason: "is required in production"}
	}
	return nil
}

// Location resolves TIMEZONE, the calendar used for "today" in the dashboard.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Roles returns the staff roles as a list.
func (c *Config) Roles() []string {
	var roles []string
	for _, r := range strings.Split(c.StaffRoles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// AllowedOrigins returns the CORS origins as a list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
