package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Database.URLEnv != "MONGODB_URL" {
		t.Errorf("Expected database url_env to be 'MONGODB_URL', got '%s'", cfg.Database.URLEnv)
	}

	if cfg.Install.DefaultCollation != "en" {
		t.Errorf("Expected default collation to be 'en', got '%s'", cfg.Install.DefaultCollation)
	}

	if cfg.Install.Version == "" {
		t.Error("Expected install version to be set")
	}

	if cfg.SampleData.ReviewSkipModulus != 4 {
		t.Errorf("Expected review_skip_modulus to be 4, got %d", cfg.SampleData.ReviewSkipModulus)
	}

	if cfg.SampleData.ReviewMinRating != 4 || cfg.SampleData.ReviewMaxRating != 5 {
		t.Errorf("Expected review ratings bounded to 4..5, got %d..%d",
			cfg.SampleData.ReviewMinRating, cfg.SampleData.ReviewMaxRating)
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := Default()

	os.Unsetenv("MONGODB_URL")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected error when MONGODB_URL is unset, got nil")
	}

	os.Setenv("MONGODB_URL", "mongodb://localhost:27017/storefront")
	defer os.Unsetenv("MONGODB_URL")

	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if url != "mongodb://localhost:27017/storefront" {
		t.Errorf("Unexpected database URL: %s", url)
	}
}
