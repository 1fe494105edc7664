package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Storage configuration
	StorageBackend string
	DBAutoMigrate  bool

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	DBStatsInterval     time.Duration

	// Identity tokens
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	CORSAllowedOrigins []string

	// Comment throttling
	CommentRateWindow  time.Duration
	RateLimitCacheSize int

	// Moderation
	ModerationAllowStaff bool

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// loader resolves a key from the environment first, then from the optional
// config file, then from the default.
type loader struct {
	file map[string]string
}

// Load loads configuration from environment variables, on top of the YAML
// file named by CONFIG_FILE when set.
func Load() (*Config, error) {
	l := &loader{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		file, err := readFile(path)
		if err != nil {
			return nil, err
		}
		l.file = file
	}

	cfg := &Config{
		ServerPort:           l.getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          l.getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:         l.getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:          l.getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:      l.getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		StorageBackend:       l.getEnv("STORAGE_BACKEND", StoragePostgres),
		DBAutoMigrate:        l.getEnvBool("DB_AUTO_MIGRATE", false),
		DBHost:               l.getEnv("DB_HOST", "localhost"),
		DBPort:               l.getEnvInt("DB_PORT", 5432),
		DBUser:               l.getEnv("DB_USER", "postgres"),
		DBPassword:           l.getEnv("DB_PASSWORD", "postgres"),
		DBName:               l.getEnv("DB_NAME", "dotapost"),
		DBSSLMode:            l.getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:           int32(l.getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:           int32(l.getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:    l.getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    l.getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  l.getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		DBStatsInterval:      l.getEnvDuration("DB_STATS_INTERVAL", 15*time.Second),
		JWTSecret:            l.getEnv("JWT_SECRET", ""),
		JWTIssuer:            l.getEnv("JWT_ISSUER", "dotapost"),
		TokenTTL:             l.getEnvDuration("TOKEN_TTL", 24*time.Hour),
		CORSAllowedOrigins:   l.getEnvList("CORS_ALLOWED_ORIGINS", nil),
		CommentRateWindow:    l.getEnvDuration("COMMENT_RATE_WINDOW", 10*time.Second),
		RateLimitCacheSize:   l.getEnvInt("RATE_LIMIT_CACHE_SIZE", 10000),
		ModerationAllowStaff: l.getEnvBool("MODERATION_ALLOW_STAFF", false),
		LogLevel:             l.getEnv("LOG_LEVEL", "info"),
		LogFormat:            l.getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.StorageBackend {
	case StoragePostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q", StoragePostgres, StorageMemory)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.CommentRateWindow <= 0 {
		return fmt.Errorf("COMMENT_RATE_WINDOW must be positive")
	}
	if c.RateLimitCacheSize < 1 {
		return fmt.Errorf("RATE_LIMIT_CACHE_SIZE must be at least 1")
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// readFile reads a flat YAML mapping whose keys are the lower-cased
// environment variable names.
func readFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		key := strings.ToUpper(k)
		switch val := v.(type) {
		case nil:
		case []any:
			parts := make([]string, 0, len(val))
			for _, p := range val {
				parts = append(parts, fmt.Sprint(p))
			}
			out[key] = strings.Join(parts, ",")
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return out, nil
}

func (l *loader) lookup(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return l.file[key]
}

// getEnv gets an environment variable with a default value.
func (l *loader) getEnv(key, defaultValue string) string {
	if value := l.lookup(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func (l *loader) getEnvInt(key string, defaultValue int) int {
	if value := l.lookup(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func (l *loader) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := l.lookup(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func (l *loader) getEnvBool(key string, defaultValue bool) bool {
	if value := l.lookup(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated value, dropping blanks.
func (l *loader) getEnvList(key string, defaultValue []string) []string {
	value := l.lookup(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
