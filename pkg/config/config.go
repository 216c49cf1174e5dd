package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is passed to envconfig; individual fields carry fully-qualified
// variable names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	RateCards RateCardsConfig
	GCP       GCPConfig
	PubSub    PubSubConfig
	Outbox    OutboxConfig
	RateLimit RateLimitConfig
	Flags     FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OUTFAST_APP_ENV" required:"true"`
	Port         string `envconfig:"OUTFAST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"OUTFAST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OUTFAST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"OUTFAST_DB_DSN"`
	Driver string `envconfig:"OUTFAST_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"OUTFAST_DB_HOST"`
	Port     int    `envconfig:"OUTFAST_DB_PORT" default:"5432"`
	User     string `envconfig:"OUTFAST_DB_USER"`
	Password string `envconfig:"OUTFAST_DB_PASSWORD"`
	Name     string `envconfig:"OUTFAST_DB_NAME"`
	SSLMode  string `envconfig:"OUTFAST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"OUTFAST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"OUTFAST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"OUTFAST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"OUTFAST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"OUTFAST_REDIS_URL"`
	Address      string        `envconfig:"OUTFAST_REDIS_ADDR"`
	Password     string        `envconfig:"OUTFAST_REDIS_PASSWORD"`
	DB           int           `envconfig:"OUTFAST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OUTFAST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OUTFAST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OUTFAST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OUTFAST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OUTFAST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"OUTFAST_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"OUTFAST_JWT_ISSUER" default:"outfast"`
}

// PricingConfig carries the business-rule constants. They were once scattered
// as literals across every surface that priced a campaign; any change must be
// a single edit here.
type PricingConfig struct {
	VolumeDiscountPeriodThreshold int     `envconfig:"OUTFAST_PRICING_VOLUME_DISCOUNT_PERIOD_THRESHOLD" default:"3"`
	VolumeDiscountRate            float64 `envconfig:"OUTFAST_PRICING_VOLUME_DISCOUNT_RATE" default:"0.10"`
	VATRatePercent                float64 `envconfig:"OUTFAST_PRICING_VAT_RATE_PERCENT" default:"20"`
	DefaultCreativeUnitCost       float64 `envconfig:"OUTFAST_PRICING_DEFAULT_CREATIVE_UNIT_COST" default:"85"`
	Currency                      string  `envconfig:"OUTFAST_PRICING_CURRENCY" default:"GBP"`
}

type RateCardsConfig struct {
	CacheTTL time.Duration `envconfig:"OUTFAST_RATE_CARDS_CACHE_TTL" default:"10m"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"OUTFAST_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	QuotesTopic string `envconfig:"OUTFAST_PUBSUB_QUOTES_TOPIC" default:"outfast-quote-events"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"OUTFAST_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"OUTFAST_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"OUTFAST_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

// RateLimitConfig throttles quote submissions, the only endpoint that writes
// on behalf of anonymous traffic.
type RateLimitConfig struct {
	SubmitWindow       time.Duration `envconfig:"OUTFAST_RATE_LIMIT_SUBMIT_WINDOW" default:"1m"`
	SubmitIPLimit      int           `envconfig:"OUTFAST_RATE_LIMIT_SUBMIT_IP_LIMIT" default:"10"`
	SubmitSessionLimit int           `envconfig:"OUTFAST_RATE_LIMIT_SUBMIT_SESSION_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"OUTFAST_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	components := map[string]string{
		"OUTFAST_DB_HOST": db.Host,
		"OUTFAST_DB_USER": db.User,
		"OUTFAST_DB_NAME": db.Name,
	}
	for _, name := range []string{"OUTFAST_DB_HOST", "OUTFAST_DB_USER", "OUTFAST_DB_NAME"} {
		if components[name] == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either OUTFAST_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
