package config

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_TTL_HOURS", "nope")
	t.Setenv("AUTO_MIGRATE", "yes")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env, got %q", cfg.AppEnv)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("expected default ttl, got %v", cfg.JWTTTL)
	}
	if !cfg.AutoMigrate {
		t.Fatal("expected AUTO_MIGRATE to be parsed as true")
	}
}

func TestFeatureFlagsFollowKeys(t *testing.T) {
	cfg := &Config{}
	if cfg.BillingEnabled() || cfg.ChatbotEnabled() {
		t.Fatal("expected billing and chatbot disabled without keys")
	}
	cfg.StripeSecretKey = "sk_test"
	cfg.GeminiAPIKey = "key"
	if !cfg.BillingEnabled() || !cfg.ChatbotEnabled() {
		t.Fatal("expected billing and chatbot enabled with keys")
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"Local":   "development",
		" prod ":  "production",
		"stage":   "staging",
		"testing": "test",
		"QA":      "qa",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDocsEnabledOnlyInDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "production", EnableDocs: true}
	if cfg.DocsEnabled() {
		t.Fatal("expected docs disabled outside development")
	}
	cfg.AppEnv = "development"
	if !cfg.DocsEnabled() {
		t.Fatal("expected docs enabled in development")
	}
}
