package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/query"
)

// Config holds the homestay API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Cache   CacheConfig   `yaml:"cache"`
	Officer OfficerConfig `yaml:"officer"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI              string `yaml:"uri"`
	Database         string `yaml:"database"`
	Collection       string `yaml:"collection"`
	ReadinessTimeout int    `yaml:"readiness_timeout_sec"`
}

// CacheConfig holds the count/statistics cache settings. The cache is
// optional; with no addresses configured the service runs uncached.
type CacheConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Enabled reports whether a cache backend is configured.
func (c CacheConfig) Enabled() bool { return len(c.Addrs) > 0 }

// OfficerConfig holds the upstream officer administration API settings.
type OfficerConfig struct {
	BaseURL    string `yaml:"base_url"`
	AuthToken  string `yaml:"auth_token"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// SearchConfig tunes the filter-resolution pipeline.
type SearchConfig struct {
	FuzzyThreshold  float64      `yaml:"fuzzy_threshold"`
	DefaultStatus   string       `yaml:"default_status"`
	DefaultLimit    int64        `yaml:"default_limit"`
	MaxLimit        int64        `yaml:"max_limit"`
	QueryTimeoutSec int          `yaml:"query_timeout_sec"`
	HighWater       int64        `yaml:"high_water"`
	Schema          query.Schema `yaml:"schema"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "homestay"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "Homestays Collection"
	}
	if c.Mongo.ReadinessTimeout <= 0 {
		c.Mongo.ReadinessTimeout = 10
	}
	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = "homestay:"
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 60
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
	if c.Officer.TimeoutSec <= 0 {
		c.Officer.TimeoutSec = 15
	}
	if c.Search.FuzzyThreshold <= 0 {
		c.Search.FuzzyThreshold = 0.8
	}
	if c.Search.DefaultStatus == "" {
		c.Search.DefaultStatus = "approved"
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = 100
	}
	if c.Search.MaxLimit <= 0 {
		c.Search.MaxLimit = 1000
	}
	if c.Search.QueryTimeoutSec <= 0 {
		c.Search.QueryTimeoutSec = 10
	}
	if c.Search.HighWater <= 0 {
		c.Search.HighWater = 100
	}
	c.Search.Schema.ApplyDefaults()
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Search.FuzzyThreshold > 1 {
		return fmt.Errorf("search.fuzzy_threshold must be in (0, 1], got %g", c.Search.FuzzyThreshold)
	}
	if c.Search.DefaultLimit > c.Search.MaxLimit {
		return fmt.Errorf(
			"search.default_limit %d exceeds search.max_limit %d",
			c.Search.DefaultLimit, c.Search.MaxLimit,
		)
	}
	if c.Officer.BaseURL != "" && !strings.HasPrefix(c.Officer.BaseURL, "http") {
		return fmt.Errorf("officer.base_url must be an http(s) URL, got %q", c.Officer.BaseURL)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
