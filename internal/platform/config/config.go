package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrupa la configuración del proceso. Cada campo se puede setear en YAML
// o por env var; la env var gana.
type Config struct {
	// Environment: development | production
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"1m" yaml:"idleTimeout"`
		MetricsPath       string        `env:"METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// TrustProxy: solo detrás de un proxy propio; habilita X-Forwarded-For / X-Real-IP.
		TrustProxy        bool          `env:"HTTP_TRUST_PROXY" env-default:"false" yaml:"trustProxy"`
	} `yaml:"http"`

	Database struct {
		// DSN vacío => repos in-memory (modo dev).
		DSN                string        `env:"DB_DSN" yaml:"dsn"`
		MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"5" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DB_CONNECTION_MAX_LIFETIME" env-default:"30m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DB_CONNECTION_MAX_IDLE_TIME" env-default:"5m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	Session struct {
		Secret        string        `env:"SESSION_SECRET" env-default:"dev-secret-key-change-in-production" yaml:"secret"`
		TTL           time.Duration `env:"SESSION_TTL" env-default:"24h" yaml:"ttl"`
		PurgeSchedule string        `env:"SESSION_PURGE_SCHEDULE" env-default:"@hourly" yaml:"purgeSchedule"`
		SecureCookie  bool          `env:"SESSION_SECURE_COOKIE" env-default:"false" yaml:"secureCookie"`
	} `yaml:"session"`

	Login struct {
		RatePerSecond float64 `env:"LOGIN_RATE_PER_SECOND" env-default:"1" yaml:"ratePerSecond"`
		Burst         int     `env:"LOGIN_RATE_BURST" env-default:"5" yaml:"burst"`
	} `yaml:"login"`

	Admin struct {
		Username string `env:"ADMIN_USERNAME" env-default:"admin" yaml:"username"`
		Password string `env:"ADMIN_PASSWORD" env-default:"admin123" yaml:"password"`
		Email    string `env:"ADMIN_EMAIL" env-default:"admin@dogyears.com" yaml:"email"`
	} `yaml:"admin"`

	Log struct {
		Level  string `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
		Format string `env:"LOG_FORMAT" env-default:"text" yaml:"format"`
		App    string `env:"APP_NAME" env-default:"dog-years" yaml:"app"`
	} `yaml:"log"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

const defaultSecret = "dev-secret-key-change-in-production"

// Load lee el YAML si existe y luego aplica env vars.
// Si path está vacío o el archivo no existe, solo usa env + defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	path = strings.TrimSpace(path)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}
			return &cfg, cfg.Validate()
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env: %w", err)
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.IsProduction() && c.Session.Secret == defaultSecret {
		return errors.New("SESSION_SECRET must be set in production")
	}
	if c.Login.RatePerSecond <= 0 || c.Login.Burst <= 0 {
		return errors.New("LOGIN_RATE_PER_SECOND and LOGIN_RATE_BURST must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
