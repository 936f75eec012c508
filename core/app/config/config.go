// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the settings of the binobj tools from YAML or TOML
// files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iburinoc/binobj/core/log"
)

// Config is the root configuration structure.
type Config struct {
	Codec   CodecConfig   `yaml:"codec" toml:"codec"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// CodecConfig selects how objects are encoded.
type CodecConfig struct {
	Codec         string `yaml:"codec" toml:"codec"`                 // "fixed" or "vle"
	ByteOrder     string `yaml:"byte_order" toml:"byte_order"`       // "little" or "big"
	Discriminator string `yaml:"discriminator" toml:"discriminator"` // "hash" or "name"
	Compress      bool   `yaml:"compress" toml:"compress"`           // zstd compress captures
}

// LogConfig configures logging.
type LogConfig struct {
	Level      string `yaml:"level" toml:"level"`   // "debug", "info", "warn", "error"
	Format     string `yaml:"format" toml:"format"` // "console" or "json"
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// MetricsConfig configures the metrics snapshot.
type MetricsConfig struct {
	Out string `yaml:"out" toml:"out"` // Prometheus textfile written on exit
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a file, choosing the format by extension.
// Environment variables in the file are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	data = []byte(os.ExpandEnv(string(data)))

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, errors.Errorf("unknown config format %q", ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the default configuration if path is
// empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyEnvOverrides applies BINOBJ_* environment variables to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BINOBJ_CODEC"); v != "" {
		cfg.Codec.Codec = v
	}
	if v := os.Getenv("BINOBJ_DISCRIMINATOR"); v != "" {
		cfg.Codec.Discriminator = v
	}
	if v := os.Getenv("BINOBJ_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BINOBJ_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("BINOBJ_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Codec.Codec == "" {
		cfg.Codec.Codec = "fixed"
	}
	if cfg.Codec.ByteOrder == "" {
		cfg.Codec.ByteOrder = "little"
	}
	if cfg.Codec.Discriminator == "" {
		cfg.Codec.Discriminator = "hash"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func validate(cfg *Config) error {
	if _, err := log.ParseSeverity(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "console", "json":
	default:
		return errors.Errorf("unknown log format %q", cfg.Log.Format)
	}
	return nil
}

// Zap returns the settings of the zap log handler.
func (c *Config) Zap() (log.ZapConfig, error) {
	level, err := log.ParseSeverity(c.Log.Level)
	if err != nil {
		return log.ZapConfig{}, err
	}
	return log.ZapConfig{
		Level:      level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}, nil
}
