package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Catalog       CatalogConfig
	Cart          CartConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	Admin         AdminConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KARTZY_APP_ENV" default:"development"`
	Port         string `envconfig:"KARTZY_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"KARTZY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KARTZY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	DefaultPageSize int `envconfig:"KARTZY_CATALOG_DEFAULT_PAGE_SIZE" default:"12"`
	MaxPageSize     int `envconfig:"KARTZY_CATALOG_MAX_PAGE_SIZE" default:"100"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"KARTZY_CART_SNAPSHOT_TTL" default:"720h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KARTZY_REDIS_URL"`
	Address      string        `envconfig:"KARTZY_REDIS_ADDR"`
	Password     string        `envconfig:"KARTZY_REDIS_PASSWORD"`
	DB           int           `envconfig:"KARTZY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KARTZY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KARTZY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KARTZY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KARTZY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KARTZY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint is configured at all. The API
// degrades to in-process behavior (memory cart store, no rate limiting,
// no idempotency records) when it is not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"KARTZY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KARTZY_JWT_ISSUER" default:"kartzy"`
	ExpirationMinutes int    `envconfig:"KARTZY_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KARTZY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KARTZY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KARTZY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KARTZY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KARTZY_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"KARTZY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"KARTZY_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"KARTZY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"KARTZY_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"KARTZY_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"KARTZY_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"KARTZY_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// AdminConfig seeds a single admin account at startup so the product
// mutation endpoints are reachable out of the box. Left blank, no admin
// is seeded.
type AdminConfig struct {
	Name     string `envconfig:"KARTZY_ADMIN_NAME" default:"Kartzy Admin"`
	Email    string `envconfig:"KARTZY_ADMIN_EMAIL"`
	Password string `envconfig:"KARTZY_ADMIN_PASSWORD"`
}
