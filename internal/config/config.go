package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"glamping/internal/modules/rates"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "glamping.db"
	defaultAdminUser   = "admin"
	defaultAdminPass   = "change-me-admin-pass"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultSessionTTL  = "4h"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret     string
	SessionTTL    time.Duration
	AdminUser     string
	AdminPassHash []byte

	MaxCabins int
	Pricing   rates.Pricing

	Mail MailConfig
}

type MailConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.AdminUser = strings.TrimSpace(getEnv("ADMIN_USER", defaultAdminUser))

	adminPass := getEnv("ADMIN_PASS", defaultAdminPass)
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing ADMIN_PASS: %w", err)
	}
	cfg.AdminPassHash = hash

	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.MaxCabins, err = parseIntEnv("MAX_CABINS", 2)
	if err != nil {
		return nil, err
	}

	p := rates.DefaultPricing()
	if p.StandardNight, err = parseInt64Env("RATE_STANDARD_NIGHT", p.StandardNight); err != nil {
		return nil, err
	}
	if p.HighNight, err = parseInt64Env("RATE_HIGH_NIGHT", p.HighNight); err != nil {
		return nil, err
	}
	if p.ExtraPersonNight, err = parseInt64Env("RATE_EXTRA_PERSON", p.ExtraPersonNight); err != nil {
		return nil, err
	}
	if p.DecorationFee, err = parseInt64Env("RATE_DECORATION", p.DecorationFee); err != nil {
		return nil, err
	}
	cfg.Pricing = p

	cfg.Mail = MailConfig{
		Enabled:  parseBoolEnv("MAIL_ENABLED", os.Getenv("MAIL_USER") != ""),
		Host:     getEnv("MAIL_HOST", "smtp.gmail.com"),
		Port:     getEnv("MAIL_PORT", "587"),
		Username: os.Getenv("MAIL_USER"),
		Password: os.Getenv("MAIL_PASS"),
		From:     getEnv("MAIL_FROM", os.Getenv("MAIL_USER")),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.MaxCabins <= 0 {
		return fmt.Errorf("MAX_CABINS must be > 0")
	}
	if cfg.Pricing.StandardNight <= 0 || cfg.Pricing.HighNight <= 0 {
		return fmt.Errorf("nightly rates must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if os.Getenv("ADMIN_PASS") == "" || os.Getenv("ADMIN_PASS") == defaultAdminPass {
			return fmt.Errorf("in prod/release ADMIN_PASS must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, v, err)
	}
	return n, nil
}

func parseInt64Env(name string, fallback int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, v, err)
	}
	return n, nil
}

func parseBoolEnv(name string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
