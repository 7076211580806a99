package config

import (
	"testing"
	"time"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_TTL_MINUTES", "")
	t.Setenv("ALLOW_ORIGINS", "")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "")
	t.Setenv("LOGIN_RATE_LIMIT", "")

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port: got=%s want=8080", cfg.Port)
	}
	if cfg.JWTTTL != time.Hour {
		t.Fatalf("ttl: got=%v want=1h", cfg.JWTTTL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("timeout: got=%v want=10s", cfg.RequestTimeout)
	}
	if cfg.LoginRateLimit != 10 {
		t.Fatalf("login limit: got=%d want=10", cfg.LoginRateLimit)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "*" {
		t.Fatalf("origins: got=%v", cfg.AllowOrigins)
	}
}

func TestLoadAppConfigRejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")
	if _, err := LoadAppConfig(); err == nil {
		t.Fatalf("expected error for short secret")
	}

	t.Setenv("JWT_SECRET", "")
	if _, err := LoadAppConfig(); err == nil {
		t.Fatalf("expected error for missing secret")
	}
}

func TestLoadAppConfigOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("origins: got=%v", cfg.AllowOrigins)
	}
}

func TestDBConfigDSN(t *testing.T) {
	d := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "edtech", SSLMode: "disable"}
	want := "postgres://u:p@db:5432/edtech?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("dsn: got=%s want=%s", got, want)
	}
}
