package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Admin        AdminConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	Chat         ChatConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"BAYTKUM_APP_ENV" required:"true"`
	Port         string `envconfig:"BAYTKUM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BAYTKUM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BAYTKUM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BAYTKUM_DB_DSN"`
	Driver string `envconfig:"BAYTKUM_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"BAYTKUM_DB_HOST"`
	Port     int    `envconfig:"BAYTKUM_DB_PORT" default:"5432"`
	User     string `envconfig:"BAYTKUM_DB_USER"`
	Password string `envconfig:"BAYTKUM_DB_PASSWORD"`
	Name     string `envconfig:"BAYTKUM_DB_NAME"`
	SSLMode  string `envconfig:"BAYTKUM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BAYTKUM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BAYTKUM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BAYTKUM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BAYTKUM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BAYTKUM_REDIS_URL"`
	Address      string        `envconfig:"BAYTKUM_REDIS_ADDR"`
	Password     string        `envconfig:"BAYTKUM_REDIS_PASSWORD"`
	DB           int           `envconfig:"BAYTKUM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BAYTKUM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BAYTKUM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BAYTKUM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BAYTKUM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BAYTKUM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"BAYTKUM_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BAYTKUM_JWT_ISSUER" default:"baytkum"`
	ExpirationMinutes int    `envconfig:"BAYTKUM_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// AdminConfig carries the back-office credential pair. The password is stored
// as an argon2id hash produced by pkg/security.
type AdminConfig struct {
	Email        string `envconfig:"BAYTKUM_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"BAYTKUM_ADMIN_PASSWORD_HASH" required:"true"`
}

type CartConfig struct {
	SessionCookie string        `envconfig:"BAYTKUM_CART_SESSION_COOKIE" default:"cart_session"`
	TTL           time.Duration `envconfig:"BAYTKUM_CART_TTL" default:"720h"`
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `envconfig:"BAYTKUM_CHECKOUT_IDEMPOTENCY_TTL" default:"24h"`
	SubmitTimeout  time.Duration `envconfig:"BAYTKUM_CHECKOUT_SUBMIT_TIMEOUT" default:"15s"`
}

type ChatConfig struct {
	BaseURL        string        `envconfig:"BAYTKUM_CHAT_BASE_URL" default:"https://api.openai.com/v1"`
	APIKey         string        `envconfig:"BAYTKUM_CHAT_API_KEY"`
	Model          string        `envconfig:"BAYTKUM_CHAT_MODEL" default:"gpt-4o-mini"`
	SystemPromptEN string        `envconfig:"BAYTKUM_CHAT_SYSTEM_PROMPT_EN" default:"You are a helpful assistant for a home services company in Kuwait. Answer in English."`
	SystemPromptAR string        `envconfig:"BAYTKUM_CHAT_SYSTEM_PROMPT_AR" default:"أنت مساعد لشركة خدمات منزلية في الكويت. أجب باللغة العربية."`
	Timeout        time.Duration `envconfig:"BAYTKUM_CHAT_TIMEOUT" default:"30s"`
	RateLimit      int           `envconfig:"BAYTKUM_CHAT_RATE_LIMIT" default:"20"`
	RateWindow     time.Duration `envconfig:"BAYTKUM_CHAT_RATE_WINDOW" default:"1m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BAYTKUM_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BAYTKUM_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if parts[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
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
