package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type benchConfig struct {
	Concurrency int         `mapstructure:"concurrency"`
	Bulk        bulkConfig  `mapstructure:"bulk"`
	Assess      phaseConfig `mapstructure:"assess"`
	Redis       redisConfig `mapstructure:"redis"`
	History     bool        `mapstructure:"history"`
	LogLevel    string      `mapstructure:"log_level"`
	Metrics     bool        `mapstructure:"metrics"`
}

type bulkConfig struct {
	Batches int `mapstructure:"batches"`
	Size    int `mapstructure:"size"`
	Length  int `mapstructure:"length"`
}

type phaseConfig struct {
	Ops int `mapstructure:"ops"`
}

type redisConfig struct {
	Addr   string `mapstructure:"addr"`
	Prefix string `mapstructure:"prefix"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("concurrency", 64)
	v.SetDefault("bulk.batches", 2000)
	v.SetDefault("bulk.size", 100)
	v.SetDefault("bulk.length", 16)
	v.SetDefault("assess.ops", 200000)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.prefix", "pg:bench:")
	v.SetDefault("history", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics", false)
}

// loadConfig reads an optional file, then PASSGEN_* environment variables,
// e.g. PASSGEN_BULK_SIZE or PASSGEN_REDIS_ADDR.
func loadConfig(path string) (benchConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PASSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return benchConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg benchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return benchConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return benchConfig{}, err
	}
	return cfg, nil
}

func (c benchConfig) validate() error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0")
	}
	if c.Bulk.Batches < 0 || c.Assess.Ops < 0 {
		return fmt.Errorf("bulk.batches and assess.ops must be >= 0")
	}
	if c.Bulk.Size <= 0 {
		return fmt.Errorf("bulk.size must be > 0")
	}
	return nil
}
