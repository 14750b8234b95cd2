// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// parseFile reads the config file at path. The format is taken from the
// file extension (json, yaml, yml, toml, ...). Keys follow the mapstructure
// tags of [StructuredConfig]; durations are written as "30m", "5s".
func parseFile(path string) (*StructuredConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	cfg.ConfigFilePath = ""

	return cfg, nil
}
