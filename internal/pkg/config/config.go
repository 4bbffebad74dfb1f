package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timeouts, TTLs, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the remote spa backend that owns all persistent state.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type StoreConfig struct {
	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	TransactionTTL  time.Duration `envconfig:"TRANSACTION_IDLE_TTL" default:"2h"`
	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"15m"`
	SubmissionTTL   time.Duration `envconfig:"SUBMISSION_RECEIPT_TTL" default:"24h"`
	CleanupInterval time.Duration `envconfig:"STORE_CLEANUP_INTERVAL" default:"10m"`
}

type RateLimitConfig struct {
	VoucherPerSecond float64 `envconfig:"VOUCHER_RATE_LIMIT" default:"1"`
	VoucherBurst     int     `envconfig:"VOUCHER_RATE_BURST" default:"5"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type MetricsConfig struct {
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"spa_pos"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://127.0.0.1:8002/api",
			Timeout: 2 * time.Second,
		},
		Store: StoreConfig{
			SessionTTL:      time.Hour,
			TransactionTTL:  time.Hour,
			CatalogCacheTTL: time.Minute,
			SubmissionTTL:   time.Hour,
			CleanupInterval: time.Minute,
		},
		RateLimit: RateLimitConfig{
			VoucherPerSecond: 100,
			VoucherBurst:     100,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Metrics: MetricsConfig{
			Namespace: "spa_pos_test",
		},
	}
}
