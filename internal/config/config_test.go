package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SEED_USERS_JSON", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.SessionBackend != "memory" {
		t.Fatalf("expected default session backend memory, got %s", cfg.SessionBackend)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected default session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.SeedUsersJSON != "" {
		t.Fatalf("expected empty seed users JSON, got %s", cfg.SeedUsersJSON)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_BACKEND", " Redis ")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://radiancespa.example, https://www.radiancespa.example ,")
	t.Setenv("SEED_USERS_JSON", `[{"email":"user@example.com","username":"user","password":"pw"}]`)

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.SessionBackend != "redis" {
		t.Fatalf("expected normalized session backend, got %q", cfg.SessionBackend)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("expected session TTL override, got %s", cfg.SessionTTL)
	}
	if !cfg.RedisTLS {
		t.Fatal("expected redis TLS enabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://www.radiancespa.example" {
		t.Fatalf("expected trimmed origin, got %q", cfg.CORSAllowedOrigins[1])
	}
	if cfg.SeedUsersJSON == "" {
		t.Fatal("expected seed users JSON to be set")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	cfg := Load()
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected fallback TTL on parse failure, got %s", cfg.SessionTTL)
	}
}
