package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Cipher    CipherConfig    `yaml:"cipher"`
	Threshold ThresholdConfig `yaml:"threshold"`
	Redis     RedisConfig     `yaml:"redis"`
	Hawl      HawlConfig      `yaml:"hawl"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Jobs      JobsConfig      `yaml:"jobs"`
}

// ServerConfig holds the operational HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	QueryTimeout    time.Duration `yaml:"query_timeout"      env:"DATABASE_QUERY_TIMEOUT"      env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AuthConfig holds operator token settings for the ops endpoints.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"zakat-tracker"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"1h"`
}

// CipherConfig holds field encryption settings.
type CipherConfig struct {
	Secret string `yaml:"secret" env:"CIPHER_SECRET" env-required:"true"`
	Salt   string `yaml:"salt"   env:"CIPHER_SALT"   env-required:"true"`
}

// ThresholdConfig holds nisab price source and fallback settings.
type ThresholdConfig struct {
	BaseURL  string        `yaml:"base_url"  env:"THRESHOLD_BASE_URL"  env-default:"https://www.goldapi.io/api"`
	APIKey   string        `yaml:"api_key"   env:"THRESHOLD_API_KEY"`
	Currency string        `yaml:"currency"  env:"THRESHOLD_CURRENCY"  env-default:"USD"`
	Timeout  time.Duration `yaml:"timeout"   env:"THRESHOLD_TIMEOUT"   env-default:"5s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"THRESHOLD_CACHE_TTL" env-default:"24h"`
	// CacheBackend is "memory" or "redis".
	CacheBackend string `yaml:"cache_backend" env:"THRESHOLD_CACHE_BACKEND" env-default:"memory"`

	GoldGramsRaw           string `yaml:"gold_grams"            env:"THRESHOLD_GOLD_GRAMS"            env-default:"87.48"`
	SilverGramsRaw         string `yaml:"silver_grams"          env:"THRESHOLD_SILVER_GRAMS"          env-default:"612.36"`
	FallbackGoldPriceRaw   string `yaml:"fallback_gold_price"   env:"THRESHOLD_FALLBACK_GOLD_PRICE"   env-default:"65.00"`
	FallbackSilverPriceRaw string `yaml:"fallback_silver_price" env:"THRESHOLD_FALLBACK_SILVER_PRICE" env-default:"0.75"`

	// Parsed from the raw fields during validation.
	GoldGrams           decimal.Decimal `yaml:"-" env:"-"`
	SilverGrams         decimal.Decimal `yaml:"-" env:"-"`
	FallbackGoldPrice   decimal.Decimal `yaml:"-" env:"-"`
	FallbackSilverPrice decimal.Decimal `yaml:"-" env:"-"`
}

// SourceConfigured reports whether a live price source can be queried.
func (c ThresholdConfig) SourceConfigured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// RedisConfig holds settings for the shared price cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Prefix   string `yaml:"prefix"   env:"REDIS_PREFIX"   env-default:"zakat:threshold:"`
}

// HawlConfig holds waiting-period scheduler settings.
type HawlConfig struct {
	BatchSize  int `yaml:"batch_size"  env:"HAWL_BATCH_SIZE"  env-default:"200"`
	MaxRetries int `yaml:"max_retries" env:"HAWL_MAX_RETRIES" env-default:"3"`
}

// ReminderConfig holds reminder generation settings.
type ReminderConfig struct {
	Lookahead      time.Duration `yaml:"lookahead"        env:"REMINDER_LOOKAHEAD"        env-default:"720h"`
	DedupeWindow   time.Duration `yaml:"dedupe_window"    env:"REMINDER_DEDUPE_WINDOW"    env-default:"168h"`
	UnlockedAfter  time.Duration `yaml:"unlocked_after"   env:"REMINDER_UNLOCKED_AFTER"   env-default:"168h"`
	DefaultSnooze  time.Duration `yaml:"default_snooze"   env:"REMINDER_DEFAULT_SNOOZE"   env-default:"24h"`
	HighPriorityIn time.Duration `yaml:"high_priority_in" env:"REMINDER_HIGH_PRIORITY_IN" env-default:"168h"`
	BatchSize      int           `yaml:"batch_size"       env:"REMINDER_BATCH_SIZE"       env-default:"200"`
}

// AnalyticsConfig holds comparison and metric cache settings.
type AnalyticsConfig struct {
	TrendThresholdRaw string        `yaml:"trend_threshold"  env:"ANALYTICS_TREND_THRESHOLD"  env-default:"5"`
	TrendSeriesTTL    time.Duration `yaml:"trend_series_ttl" env:"ANALYTICS_TREND_SERIES_TTL" env-default:"60m"`
	BreakdownTTL      time.Duration `yaml:"breakdown_ttl"    env:"ANALYTICS_BREAKDOWN_TTL"    env-default:"30m"`
	DefaultTTL        time.Duration `yaml:"default_ttl"      env:"ANALYTICS_DEFAULT_TTL"      env-default:"15m"`
	RegenBatchSize    int           `yaml:"regen_batch_size" env:"ANALYTICS_REGEN_BATCH_SIZE" env-default:"100"`

	// TrendThreshold is the percentage parsed from TrendThresholdRaw.
	TrendThreshold decimal.Decimal `yaml:"-" env:"-"`
}

// JobsConfig holds orchestrator settings and per-job schedules.
type JobsConfig struct {
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"JOBS_SHUTDOWN_TIMEOUT" env-default:"30s"`

	HawlSchedule     string `yaml:"hawl_schedule"     env:"JOBS_HAWL_SCHEDULE"     env-default:"@daily"`
	HawlEnabled      bool   `yaml:"hawl_enabled"      env:"JOBS_HAWL_ENABLED"      env-default:"true"`
	ReminderSchedule string `yaml:"reminder_schedule" env:"JOBS_REMINDER_SCHEDULE" env-default:"@daily"`
	ReminderEnabled  bool   `yaml:"reminder_enabled"  env:"JOBS_REMINDER_ENABLED"  env-default:"true"`
	SummarySchedule  string `yaml:"summary_schedule"  env:"JOBS_SUMMARY_SCHEDULE"  env-default:"@hourly"`
	SummaryEnabled   bool   `yaml:"summary_enabled"   env:"JOBS_SUMMARY_ENABLED"   env-default:"true"`
	CleanupSchedule  string `yaml:"cleanup_schedule"  env:"JOBS_CLEANUP_SCHEDULE"  env-default:"@every 30m"`
	CleanupEnabled   bool   `yaml:"cleanup_enabled"   env:"JOBS_CLEANUP_ENABLED"   env-default:"true"`
}
