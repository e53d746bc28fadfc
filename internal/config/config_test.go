package config

import "testing"

func validConfig() Config {
	cfg := Config{
		HTTP:  HTTPConfig{Port: 8080},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingMongoURI(t *testing.T) {
	cfg := validConfig()
	cfg.Mongo.URI = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing mongo uri")
	}
}

func TestValidate_FuzzyThresholdAboveOne(t *testing.T) {
	cfg := validConfig()
	cfg.Search.FuzzyThreshold = 1.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for fuzzy threshold above 1")
	}
}

func TestValidate_DefaultLimitAboveMax(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultLimit = 5000
	cfg.Search.MaxLimit = 1000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for default limit above max limit")
	}
}

func TestValidate_OfficerBaseURLScheme(t *testing.T) {
	cfg := validConfig()
	cfg.Officer.BaseURL = "ftp://admin.example.com"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-http officer base url")
	}

	cfg.Officer.BaseURL = "https://admin.example.com"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for https base url: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Mongo.Database != "homestay" {
		t.Errorf("expected database 'homestay', got %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.Collection != "Homestays Collection" {
		t.Errorf("expected collection 'Homestays Collection', got %q", cfg.Mongo.Collection)
	}
	if cfg.Cache.KeyPrefix != "homestay:" {
		t.Errorf("expected KeyPrefix='homestay:', got %q", cfg.Cache.KeyPrefix)
	}
	if cfg.Cache.TTLSec != 60 {
		t.Errorf("expected TTLSec=60, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Search.FuzzyThreshold != 0.8 {
		t.Errorf("expected FuzzyThreshold=0.8, got %g", cfg.Search.FuzzyThreshold)
	}
	if cfg.Search.DefaultStatus != "approved" {
		t.Errorf("expected DefaultStatus='approved', got %q", cfg.Search.DefaultStatus)
	}
	if cfg.Search.MaxLimit != 1000 {
		t.Errorf("expected MaxLimit=1000, got %d", cfg.Search.MaxLimit)
	}
	if cfg.Search.Schema.Attractions != "features.localAttractions" {
		t.Errorf("expected schema defaults to be applied, got %q", cfg.Search.Schema.Attractions)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Mongo:  MongoConfig{Database: "custom", Collection: "homestays", ReadinessTimeout: 15},
		Cache:  CacheConfig{KeyPrefix: "custom:", TTLSec: 300},
		Search: SearchConfig{FuzzyThreshold: 0.9, DefaultStatus: "pending", MaxLimit: 200},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Mongo.Database != "custom" {
		t.Errorf("expected database 'custom', got %q", cfg.Mongo.Database)
	}
	if cfg.Cache.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Cache.KeyPrefix)
	}
	if cfg.Search.FuzzyThreshold != 0.9 {
		t.Errorf("expected FuzzyThreshold=0.9, got %g", cfg.Search.FuzzyThreshold)
	}
	if cfg.Search.DefaultStatus != "pending" {
		t.Errorf("expected DefaultStatus='pending', got %q", cfg.Search.DefaultStatus)
	}
}

func TestCacheConfigEnabled(t *testing.T) {
	if (CacheConfig{}).Enabled() {
		t.Error("cache without addrs must be disabled")
	}
	if !(CacheConfig{Addrs: []string{"localhost:6379"}}).Enabled() {
		t.Error("cache with addrs must be enabled")
	}
}
