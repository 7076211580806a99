package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	Env            string
	Port           string
	DB             DBConfig
	JWTSecret      string
	JWTTTL         time.Duration
	AllowOrigins   []string
	RequestTimeout time.Duration
	RedisAddr      string
	RedisPassword  string
	LoginRateLimit int
	LoginWindow    time.Duration
	Admin          AdminSeed
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the postgres connection url.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type AdminSeed struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

const minJWTSecretLength = 32

// LoadAppConfig reads the process environment. Call godotenv.Load first
// when a .env file should be honoured.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Env:  getEnv("APP_ENV", "production"),
		Port: getEnv("APP_PORT", "8080"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,
		AllowOrigins:   splitList(getEnv("ALLOW_ORIGINS", "*")),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 10),
		LoginWindow:    15 * time.Minute,
		Admin: AdminSeed{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     getEnv("ADMIN_NAME", "Administrator"),
			Phone:    getEnv("ADMIN_PHONE", "0000000"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	if len(cfg.JWTSecret) < minJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters, generate one with: openssl rand -base64 32", minJWTSecretLength)
	}
	if cfg.JWTTTL <= 0 {
		return nil, errors.New("JWT_TTL_MINUTES must be positive")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	return cfg, nil
}

func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
