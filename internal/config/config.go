package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/cmsdash/internal/util/ident"
)

// Config holds the cmsdash configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Listing   ListingConfig   `yaml:"listing"`
	IDs       IDsConfig       `yaml:"ids"`
	Stats     StatsConfig     `yaml:"stats"`
	Assistant AssistantConfig `yaml:"assistant"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // valkey, redis (default: redis)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ListingConfig holds list pagination settings.
type ListingConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// IDsConfig selects how new content ids are generated.
type IDsConfig struct {
	Strategy string `yaml:"strategy"` // short (default) | uuid
}

// StatsConfig holds dashboard statistics refresh settings.
type StatsConfig struct {
	RefreshIntervalMs int `yaml:"refresh_interval_ms"`
	InvalidateDelayMs int `yaml:"invalidate_delay_ms"`
	ComputeTimeoutSec int `yaml:"compute_timeout_sec"`
}

// AssistantConfig holds the writing assistant provider settings.
// The assistant is disabled when APIKey is empty.
type AssistantConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Prompt      string  `yaml:"prompt"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	// CacheTTLSec keeps suggestions for identical content. Negative disables the cache.
	CacheTTLSec int `yaml:"cache_ttl_sec"`
}

// Enabled reports whether excerpt suggestions are configured.
func (a AssistantConfig) Enabled() bool { return a.APIKey != "" }

// CacheTTL returns how long a suggestion stays cached, zero when caching is off.
func (a AssistantConfig) CacheTTL() time.Duration {
	if a.CacheTTLSec <= 0 {
		return 0
	}
	return time.Duration(a.CacheTTLSec) * time.Second
}

// RefreshInterval returns the stats throttle window.
func (s StatsConfig) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalMs) * time.Millisecond
}

// InvalidateDelay returns the stats debounce delay.
func (s StatsConfig) InvalidateDelay() time.Duration {
	return time.Duration(s.InvalidateDelayMs) * time.Millisecond
}

// ComputeTimeout returns the deadline for one recompute.
func (s StatsConfig) ComputeTimeout() time.Duration {
	return time.Duration(s.ComputeTimeoutSec) * time.Second
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML with ${VAR} expansion, then applies defaults and validates.
func Parse(data []byte) (Config, error) {
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
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Listing.DefaultPageSize <= 0 {
		c.Listing.DefaultPageSize = 20
	}
	if c.Listing.MaxPageSize <= 0 {
		c.Listing.MaxPageSize = 100
	}
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = string(ident.StrategyShort)
	}
	if c.Stats.RefreshIntervalMs <= 0 {
		c.Stats.RefreshIntervalMs = 5000
	}
	if c.Stats.InvalidateDelayMs <= 0 {
		c.Stats.InvalidateDelayMs = 500
	}
	if c.Stats.ComputeTimeoutSec <= 0 {
		c.Stats.ComputeTimeoutSec = 10
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gpt-4o-mini"
	}
	if c.Assistant.CacheTTLSec == 0 {
		c.Assistant.CacheTTLSec = 86400
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "redis", "valkey":
	default:
		return fmt.Errorf("database.driver must be \"redis\" or \"valkey\", got %q", c.Database.Driver)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	for i, addr := range c.Database.Addrs {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("database.addrs[%d] is empty", i)
		}
	}
	if c.Listing.DefaultPageSize > c.Listing.MaxPageSize {
		return fmt.Errorf("listing.default_page_size (%d) exceeds listing.max_page_size (%d)",
			c.Listing.DefaultPageSize, c.Listing.MaxPageSize)
	}
	if _, err := ident.ParseStrategy(c.IDs.Strategy); err != nil {
		return fmt.Errorf("ids.strategy: %w", err)
	}
	if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 2 {
		return fmt.Errorf("assistant.temperature must be between 0 and 2, got %g", c.Assistant.Temperature)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// Relative to the source file, for tests run from a package directory.
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// envVarRegex matches ${VAR} and ${VAR:-default}.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
