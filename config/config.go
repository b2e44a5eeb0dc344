// Package config defines the top level client configuration and its loading
// from a config file.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/parlorchat/parlor/keyrecovery"
)

// Config is the top level configuration of a parlor client.
type Config struct {
	BaseConfig  `mapstructure:"main"`
	KeyRecovery keyrecovery.Config `mapstructure:"key-recovery"`
}

// BaseConfig defines the default configuration options for the client.
type BaseConfig struct {
	// LogLevel is the minimum level emitted by the client logger.
	LogLevel string `mapstructure:"log-level"`

	CollectMetrics bool `mapstructure:"metrics"`
	MetricsPort    int  `mapstructure:"metrics-port"`
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: BaseConfig{
			LogLevel:       "info",
			CollectMetrics: false,
			MetricsPort:    1010,
		},
		KeyRecovery: keyrecovery.DefaultConfig(),
	}
}

// Load reads the config file at path, if any, and unmarshals it over the
// defaults. An empty path yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		withIgnoreUntagged(),
		withErrorUnused(),
	}
	if err := v.Unmarshal(&cfg, opts...); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func withIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func withErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}
