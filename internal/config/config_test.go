package config

import "testing"

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("Load should fail without JWT_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_DATABASE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != "3001" {
		t.Errorf("Expected default port 3001, got %s", cfg.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected default host localhost, got %s", cfg.Database.Host)
	}
	if cfg.Database.Database != "pantrygo" {
		t.Errorf("Expected default database pantrygo, got %s", cfg.Database.Database)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_PASSWORD", "hunter2")
	t.Setenv("CLOUD_ENDPOINT", "https://cloud.example.com/graphql")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Password != "hunter2" {
		t.Errorf("Database overrides not applied: %+v", cfg.Database)
	}
	if cfg.Cloud.Endpoint != "https://cloud.example.com/graphql" {
		t.Errorf("Cloud endpoint override not applied: %s", cfg.Cloud.Endpoint)
	}
}
