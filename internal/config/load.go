// SPDX-License-Identifier: MIT
package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides: CODA_TRANSFORM_BASE=2.
const EnvPrefix = "CODA"

// New returns a viper instance with defaults and environment binding.
// Flags can be bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Load reads the optional config file at path into v and unmarshals the result.
// The format follows the extension (.yaml, .yml, .toml).
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			v.SetConfigType("yaml")
		case ".toml":
			v.SetConfigType("toml")
		default:
			return nil, errors.WithHint(
				errors.Newf("unsupported config format %q", filepath.Ext(path)),
				"use a .yaml or .toml file")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// LoadFromFile is Load on a fresh instance.
func LoadFromFile(path string) (*Config, error) {
	return Load(New(), path)
}
