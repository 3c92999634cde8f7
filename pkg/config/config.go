package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "PRICETRACKER"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Upload       UploadConfig
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
	Env      string `envconfig:"PRICETRACKER_APP_ENV" default:"dev"`
	Port     string `envconfig:"PRICETRACKER_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"PRICETRACKER_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PRICETRACKER_DB_DSN"`
	Driver string `envconfig:"PRICETRACKER_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"PRICETRACKER_DB_HOST"`
	Port     int    `envconfig:"PRICETRACKER_DB_PORT" default:"5432"`
	User     string `envconfig:"PRICETRACKER_DB_USER"`
	Password string `envconfig:"PRICETRACKER_DB_PASSWORD"`
	Name     string `envconfig:"PRICETRACKER_DB_NAME"`
	SSLMode  string `envconfig:"PRICETRACKER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PRICETRACKER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PRICETRACKER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PRICETRACKER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PRICETRACKER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret string `envconfig:"PRICETRACKER_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"PRICETRACKER_JWT_ISSUER" default:"pricetracker"`
	// Tokens stay valid for seven days by default.
	ExpirationMinutes int `envconfig:"PRICETRACKER_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TokenTTL returns the session token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PRICETRACKER_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PRICETRACKER_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PRICETRACKER_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PRICETRACKER_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PRICETRACKER_ARGON_KEY_LEN" default:"32"`
}

type UploadConfig struct {
	MaxUploadMB int `envconfig:"PRICETRACKER_MAX_UPLOAD_MB" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PRICETRACKER_AUTO_MIGRATE" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if strings.EqualFold(db.Driver, "sqlite") {
		return fmt.Errorf("PRICETRACKER_DB_DSN is required for the sqlite driver")
	}

	missing := []string{}
	for _, pair := range []struct {
		envVar string
		value  string
	}{
		{"PRICETRACKER_DB_HOST", db.Host},
		{"PRICETRACKER_DB_USER", db.User},
		{"PRICETRACKER_DB_NAME", db.Name},
	} {
		if pair.value == "" {
			missing = append(missing, pair.envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either PRICETRACKER_DB_DSN or %s are required", strings.Join(missing, ", "))
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
