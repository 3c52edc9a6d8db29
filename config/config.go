package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Database Configuration
	Postgres PostgresConfig

	// Cache & Pub/Sub Configuration
	Redis RedisConfig

	// Storage Configuration
	MinIO  MinIOConfig
	Report ReportConfig

	// WebSocket Configuration
	WebSocket WebSocketConfig

	// Authentication & Security Configuration
	JWT JWTConfig

	// Forecasting Configuration
	Engine        EngineConfig
	ExternalModel ExternalModelConfig
	Advisor       AdvisorConfig
	Scheduler     SchedulerConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the API server
type HTTPServerConfig struct {
	Host           string   `env:"HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"APP_PORT" envDefault:"8080"`
	Mode           string   `env:"API_MODE" envDefault:"release"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"pulse"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis
// Note: Only standalone mode is supported
type RedisConfig struct {
	Host         string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port         int           `env:"REDIS_PORT" envDefault:"6379"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

// MinIOConfig is the configuration for MinIO. Reports are disabled when
// Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region    string `env:"MINIO_REGION" envDefault:"us-east-1"`
}

type ReportConfig struct {
	Bucket    string        `env:"REPORT_BUCKET" envDefault:"pulse-reports"`
	URLExpiry time.Duration `env:"REPORT_URL_EXPIRY" envDefault:"24h"`
}

// WebSocketConfig is the configuration for WebSocket connections
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"512"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// EngineConfig overrides the pipeline constants.
type EngineConfig struct {
	Horizon            int           `env:"ENGINE_HORIZON" envDefault:"7"`
	HistoryWindow      int           `env:"ENGINE_HISTORY_WINDOW" envDefault:"90"`
	LengthOfStayFactor float64       `env:"ENGINE_LENGTH_OF_STAY_FACTOR" envDefault:"0.4"`
	StaffRatio         float64       `env:"ENGINE_STAFF_RATIO" envDefault:"0.2"`
	MinExternalPoints  int           `env:"ENGINE_MIN_EXTERNAL_POINTS" envDefault:"30"`
	CacheTTL           time.Duration `env:"ENGINE_CACHE_TTL" envDefault:"6h"`
	ModelVersion       string        `env:"ENGINE_MODEL_VERSION" envDefault:"trend-v1"`
}

// ExternalModelConfig points at the optional time-series forecaster.
type ExternalModelConfig struct {
	Enabled    bool          `env:"EXTERNAL_MODEL_ENABLED" envDefault:"false"`
	BaseURL    string        `env:"EXTERNAL_MODEL_URL"`
	Timeout    time.Duration `env:"EXTERNAL_MODEL_TIMEOUT" envDefault:"10s"`
	RetryCount int           `env:"EXTERNAL_MODEL_RETRY_COUNT" envDefault:"1"`
}

// AdvisorConfig points at the optional narrative advisor.
type AdvisorConfig struct {
	Enabled   bool          `env:"ADVISOR_ENABLED" envDefault:"false"`
	BaseURL   string        `env:"ADVISOR_URL"`
	APIKey    string        `env:"ADVISOR_API_KEY"`
	Model     string        `env:"ADVISOR_MODEL" envDefault:"gpt-4o-mini"`
	MaxTokens int           `env:"ADVISOR_MAX_TOKENS" envDefault:"512"`
	Timeout   time.Duration `env:"ADVISOR_TIMEOUT" envDefault:"20s"`
}

// SchedulerConfig drives cmd/worker. Scopes is a comma separated list of
// HOSPITAL:DEPARTMENT pairs, e.g. "H1:ED,H1:ICU".
type SchedulerConfig struct {
	Interval    time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"6h"`
	Concurrency int           `env:"SCHEDULER_CONCURRENCY" envDefault:"4"`
	Horizon     int           `env:"SCHEDULER_HORIZON" envDefault:"7"`
	RunTimeout  time.Duration `env:"SCHEDULER_RUN_TIMEOUT" envDefault:"2m"`
	Scopes      []string      `env:"SCHEDULER_SCOPES" envSeparator:","`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.JWT.SecretKey == "" {
		return errors.New("config: JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return errors.New("config: JWT_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Postgres.Host == "" || cfg.Postgres.DBName == "" {
		return errors.New("config: POSTGRES_HOST and POSTGRES_DB are required")
	}
	if cfg.Redis.Host == "" {
		return errors.New("config: REDIS_HOST is required")
	}
	if cfg.ExternalModel.Enabled && cfg.ExternalModel.BaseURL == "" {
		return errors.New("config: EXTERNAL_MODEL_URL is required when the external model is enabled")
	}
	if cfg.Advisor.Enabled && (cfg.Advisor.BaseURL == "" || cfg.Advisor.APIKey == "") {
		return errors.New("config: ADVISOR_URL and ADVISOR_API_KEY are required when the advisor is enabled")
	}
	if cfg.Scheduler.Concurrency <= 0 {
		return errors.New("config: SCHEDULER_CONCURRENCY must be positive")
	}
	for _, s := range cfg.Scheduler.Scopes {
		if _, _, ok := strings.Cut(strings.TrimSpace(s), ":"); !ok {
			return fmt.Errorf("config: SCHEDULER_SCOPES entry %q must be HOSPITAL:DEPARTMENT", s)
		}
	}
	return nil
}
