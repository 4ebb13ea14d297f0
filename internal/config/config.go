package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Telegram TelegramConfig
	Auth     AuthConfig
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":5000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST,required"`
	Port            int           `env:"DB_PORT,required"`
	User            string        `env:"DB_USER,required"`
	Password        string        `env:"DB_PASSWORD,required"`
	Name            string        `env:"DB_NAME,required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"2m"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,required"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"24h"`
}

// SMTPConfig is optional: an empty Host disables email dispatch.
type SMTPConfig struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" envDefault:"587"`
	User       string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASSWORD"`
	FromName   string `env:"SMTP_FROM_NAME" envDefault:"SK Printers Website"`
	AdminEmail string `env:"ADMIN_EMAIL"`
	SiteURL    string `env:"SITE_URL" envDefault:"https://skprinters.in"`
}

// TelegramConfig is optional: a zero ChatID disables the channel entirely.
type TelegramConfig struct {
	Token  string `env:"TELEGRAM_TOKEN"`
	ChatID int64  `env:"TELEGRAM_ADMIN_CHAT_ID"`
}

// Seed* provision an initial admin account on startup when no user with
// that email exists yet. There is no public registration.
type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET,required"`
	TokenTTL     time.Duration `env:"JWT_TOKEN_TTL" envDefault:"24h"`
	SeedEmail    string        `env:"ADMIN_SEED_EMAIL"`
	SeedPassword string        `env:"ADMIN_SEED_PASSWORD"`
	SeedName     string        `env:"ADMIN_SEED_NAME" envDefault:"Administrator"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SMTP.Host != "" && cfg.SMTP.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required when SMTP is configured")
	}
	if cfg.Auth.SeedEmail != "" && cfg.Auth.SeedPassword == "" {
		return nil, fmt.Errorf("ADMIN_SEED_PASSWORD is required when ADMIN_SEED_EMAIL is set")
	}

	return &cfg, nil
}
