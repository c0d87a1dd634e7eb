package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	Dynamo    DynamoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Payment   PaymentConfig
	Messaging MessagingConfig
	HTTP      HTTPConfig
	Metrics   MetricsConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name         string
	Env          string
	Port         string
	PublicOrigin string // e.g. https://os.kingofcell.com.br, used in share links
	StoreName    string
	TimeZone     string // IANA zone for month/day buckets
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// DynamoConfig holds DynamoDB connection settings and table names
type DynamoConfig struct {
	Region            string
	Endpoint          string
	AccessKeyID       string
	SecretAccessKey   string
	OrdersTable       string
	ResalesTable      string
	OrderSharesTable  string
	ResaleSharesTable string
}

// RedisConfig holds settings for the share snapshot cache. Empty Addr
// disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	UseTLS   bool
	ShareTTL time.Duration
}

// JWTConfig holds JWT settings
type JWTConfig struct {
	Secret                string
	Issuer                string
	AccessTokenExpiration time.Duration
}

// PaymentConfig holds Mercado Pago settings
type PaymentConfig struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

// Sandbox reports whether the access token is a Mercado Pago test token.
func (p PaymentConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.AccessToken), "TEST-")
}

// MessagingConfig holds the deep-link hand-off settings
type MessagingConfig struct {
	Scheme      string
	CountryCode string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	RequestTimeout  time.Duration
	PublicRateLimit float64 // requests per second per client IP on public routes
	PublicRateBurst int
	TrustedProxies  []string
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Namespace string
}

// legacyEnv maps config keys to the unprefixed variable names the service
// has always accepted. The APP_ form wins when both are set.
var legacyEnv = map[string]string{
	"app.env":                  "APP_ENV",
	"app.port":                 "PORT",
	"dynamo.region":            "AWS_REGION",
	"dynamo.endpoint":          "DYNAMODB_ENDPOINT",
	"dynamo.access_key_id":     "AWS_ACCESS_KEY_ID",
	"dynamo.secret_access_key": "AWS_SECRET_ACCESS_KEY",
	"dynamo.orders_table":      "ORDERS_TABLE",
	"dynamo.resales_table":     "RESALES_TABLE",
	"payment.access_token":     "MERCADOPAGO_ACCESS_TOKEN",
	"payment.mock":             "PAYMENT_GATEWAY_MOCK",
	"payment.test_payer_email": "MERCADOPAGO_TEST_PAYER_EMAIL",
	"payment.test_payer_user":  "MERCADOPAGO_TEST_PAYER_USER_ID",
	"redis.addr":               "REDIS_ADDR",
	"jwt.secret":               "JWT_SECRET",
}

// Load reads configuration from the environment.
//
// Priority (highest to lowest):
// 1. Environment variables with APP_ prefix (e.g., APP_DYNAMO_ORDERS_TABLE)
// 2. Legacy unprefixed variables (e.g., AWS_REGION, MERCADOPAGO_ACCESS_TOKEN)
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "APP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:         v.GetString("app.name"),
			Env:          v.GetString("app.env"),
			Port:         v.GetString("app.port"),
			PublicOrigin: v.GetString("app.public_origin"),
			StoreName:    v.GetString("app.store_name"),
			TimeZone:     v.GetString("app.time_zone"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Dynamo: DynamoConfig{
			Region:            v.GetString("dynamo.region"),
			Endpoint:          v.GetString("dynamo.endpoint"),
			AccessKeyID:       v.GetString("dynamo.access_key_id"),
			SecretAccessKey:   v.GetString("dynamo.secret_access_key"),
			OrdersTable:       v.GetString("dynamo.orders_table"),
			ResalesTable:      v.GetString("dynamo.resales_table"),
			OrderSharesTable:  v.GetString("dynamo.order_shares_table"),
			ResaleSharesTable: v.GetString("dynamo.resale_shares_table"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			UseTLS:   v.GetBool("redis.use_tls"),
			ShareTTL: v.GetDuration("redis.share_ttl"),
		},
		JWT: JWTConfig{
			Secret:                v.GetString("jwt.secret"),
			Issuer:                v.GetString("jwt.issuer"),
			AccessTokenExpiration: v.GetDuration("jwt.access_token_expiration"),
		},
		Payment: PaymentConfig{
			AccessToken:     v.GetString("payment.access_token"),
			Mock:            isTruthy(v.GetString("payment.mock")),
			TestPayerEmail:  v.GetString("payment.test_payer_email"),
			TestPayerUserID: v.GetString("payment.test_payer_user"),
		},
		Messaging: MessagingConfig{
			Scheme:      v.GetString("messaging.scheme"),
			CountryCode: v.GetString("messaging.country_code"),
		},
		HTTP: HTTPConfig{
			RequestTimeout:  v.GetDuration("http.request_timeout"),
			PublicRateLimit: v.GetFloat64("http.public_rate_limit"),
			PublicRateBurst: v.GetInt("http.public_rate_burst"),
			TrustedProxies:  v.GetStringSlice("http.trusted_proxies"),
		},
		Metrics: MetricsConfig{
			Namespace: v.GetString("metrics.namespace"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "assistencia-os"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.PublicOrigin == "" {
		cfg.App.PublicOrigin = "http://localhost:" + cfg.App.Port
	}
	cfg.App.PublicOrigin = strings.TrimRight(cfg.App.PublicOrigin, "/")
	if cfg.App.StoreName == "" {
		cfg.App.StoreName = "KING OF CELL"
	}
	if cfg.App.TimeZone == "" {
		cfg.App.TimeZone = "America/Sao_Paulo"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Dynamo.Region == "" {
		cfg.Dynamo.Region = "us-east-1"
	}
	if cfg.Dynamo.AccessKeyID == "" {
		cfg.Dynamo.AccessKeyID = "local"
	}
	if cfg.Dynamo.SecretAccessKey == "" {
		cfg.Dynamo.SecretAccessKey = "local"
	}
	if cfg.Dynamo.OrdersTable == "" {
		cfg.Dynamo.OrdersTable = "orders"
	}
	if cfg.Dynamo.ResalesTable == "" {
		cfg.Dynamo.ResalesTable = "resales"
	}
	if cfg.Dynamo.OrderSharesTable == "" {
		cfg.Dynamo.OrderSharesTable = "order_shares"
	}
	if cfg.Dynamo.ResaleSharesTable == "" {
		cfg.Dynamo.ResaleSharesTable = "resale_shares"
	}
	if cfg.Redis.ShareTTL == 0 {
		cfg.Redis.ShareTTL = 24 * time.Hour
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = cfg.App.Name
	}
	if cfg.JWT.AccessTokenExpiration == 0 {
		cfg.JWT.AccessTokenExpiration = 12 * time.Hour
	}
	if cfg.Messaging.Scheme == "" {
		cfg.Messaging.Scheme = "whatsapp"
	}
	if cfg.Messaging.CountryCode == "" {
		cfg.Messaging.CountryCode = "55"
	}
	if cfg.HTTP.RequestTimeout == 0 {
		cfg.HTTP.RequestTimeout = 10 * time.Second
	}
	if cfg.HTTP.PublicRateLimit == 0 {
		cfg.HTTP.PublicRateLimit = 5
	}
	if cfg.HTTP.PublicRateBurst == 0 {
		cfg.HTTP.PublicRateBurst = 20
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "assistencia_os"
	}
}

func (c *Config) validate() error {
	if c.App.Env == "production" {
		if c.JWT.Secret == "" {
			return errors.New("jwt secret is required in production")
		}
		if len(c.JWT.Secret) < 32 {
			return errors.New("jwt secret must be at least 32 characters in production")
		}
	}
	if _, err := time.LoadLocation(c.App.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.App.TimeZone, err)
	}
	if c.HTTP.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	return nil
}

// Location returns the configured zone. validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
