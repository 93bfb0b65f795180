package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "elatco_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "testsecret123456789012345678901234")
	os.Setenv("ADMIN_EMAIL", "admin@test.local")
	os.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Admin.Email != "admin@test.local" || cfg.Admin.Password != "s3cret" {
		t.Fatalf("admin config not loaded: %+v", cfg.Admin)
	}
	if cfg.Document.ArtifactPrefix != "will" {
		t.Fatalf("unexpected artifact prefix: %q", cfg.Document.ArtifactPrefix)
	}
}
