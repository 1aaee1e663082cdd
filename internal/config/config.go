// Package config loads boundcache settings from flags, environment and
// an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/emmaagwu/boundcache"
	"github.com/emmaagwu/boundcache/internal/logging"
)

// ErrInvalidCapacity indicates a non-positive cache capacity.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

// EnvPrefix prefixes environment variables, e.g. BOUNDCACHE_CACHE_POLICY.
const EnvPrefix = "BOUNDCACHE"

// Config is the complete configuration.
type Config struct {
	Cache CacheConfig `mapstructure:"cache"`
	Log   LogConfig   `mapstructure:"log"`
}

// CacheConfig configures the cache.
type CacheConfig struct {
	Capacity int    `mapstructure:"capacity"`
	Policy   string `mapstructure:"policy"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Capacity: boundcache.DefaultCapacity,
			Policy:   string(boundcache.FIFO),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// NewViper returns a viper instance with defaults and environment
// bindings for every key.
func NewViper() *viper.Viper {
	v := viper.New()

	defaults := Default()
	v.SetDefault("cache.capacity", defaults.Cache.Capacity)
	v.SetDefault("cache.policy", defaults.Cache.Policy)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file, if not empty, into v and returns the validated configuration.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Cache.Capacity)
	}

	if _, err := boundcache.ParsePolicy(c.Cache.Policy); err != nil {
		return fmt.Errorf("invalid cache.policy: %w", err)
	}

	return nil
}

// CacheOptions returns the cache options described by the configuration.
// The configuration must be valid.
func (c Config) CacheOptions() []boundcache.Option {
	policy, _ := boundcache.ParsePolicy(c.Cache.Policy)

	return []boundcache.Option{
		boundcache.WithCapacity(c.Cache.Capacity),
		boundcache.WithPolicy(policy),
	}
}

// Logging returns the logging configuration.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	return cfg
}
