// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. Config file (JSON, YAML or TOML)
//
// Startup fails when the token signing secret is missing or weak; there is no
// built-in fallback secret. The main entry point is [GetStructuredConfig].
package config
