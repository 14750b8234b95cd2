// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// MinSecretLength is the minimum size in bytes of the token signing secret.
const MinSecretLength = 32

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	DefaultTokenIssuer      = "sayansi_yathu"
	DefaultTokenTTL         = 30 * time.Minute
	DefaultLockoutThreshold = 5
	DefaultLockoutDuration  = 5 * time.Minute
	DefaultPasswordCost     = 12
	DefaultHTTPAddress      = ":8080"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultLogLevel         = "info"

	defaultDBHost = "localhost"
	defaultDBPort = 5432
	defaultDBName = "sayansi_yathu"
	defaultDBUser = "sayansi_user"
)

// placeholderSecrets were shipped as fallbacks by the legacy backend and are
// public knowledge.
var placeholderSecrets = map[string]struct{}{
	"change_this_dev_secret_to_a_strong_random_value": {},
	"your_secret_key_here":                            {},
}

// applyDefaults fills the fields no source has set. The signing secret and
// the database password never get a default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.PasswordCost == 0 {
		cfg.App.PasswordCost = DefaultPasswordCost
	}

	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = DefaultTokenTTL
	}

	if cfg.Lockout.Threshold == 0 {
		cfg.Lockout.Threshold = DefaultLockoutThreshold
	}
	if cfg.Lockout.Duration == 0 {
		cfg.Lockout.Duration = DefaultLockoutDuration
	}

	db := &cfg.Storage.DB
	if db.Driver == "" {
		db.Driver = DriverPostgres
	}
	if db.Driver == DriverPostgres {
		if db.Host == "" {
			db.Host = defaultDBHost
		}
		if db.Port == 0 {
			db.Port = defaultDBPort
		}
		if db.Name == "" {
			db.Name = defaultDBName
		}
		if db.User == "" {
			db.User = defaultDBUser
		}
		if db.SSLMode == "" {
			db.SSLMode = "disable"
		}
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All violations are
// reported at once.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Auth.validate(),
		cfg.Lockout.validate(),
		cfg.Storage.DB.validate(),
		cfg.Server.validate(),
		cfg.App.validate(),
	)
}

func (a Auth) validate() error {
	if a.Secret == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAuthConfigs, ErrMissingTokenSecret)
	}
	if _, ok := placeholderSecrets[a.Secret]; ok {
		return fmt.Errorf("%w: %w", ErrInvalidAuthConfigs, ErrPlaceholderTokenSecret)
	}
	if len(a.Secret) < MinSecretLength {
		return fmt.Errorf("%w: %w (got %d bytes, need %d)", ErrInvalidAuthConfigs, ErrWeakTokenSecret, len(a.Secret), MinSecretLength)
	}
	if a.Issuer == "" || a.TokenTTL <= 0 {
		return fmt.Errorf("%w: issuer and a positive token ttl are required", ErrInvalidAuthConfigs)
	}
	return nil
}

func (l Lockout) validate() error {
	if l.Threshold < 1 || l.Duration <= 0 {
		return fmt.Errorf("%w: threshold=%d duration=%s", ErrInvalidLockoutConfigs, l.Threshold, l.Duration)
	}
	return nil
}

func (d DB) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" && d.Host == "" {
			return fmt.Errorf("%w: host or dsn is required", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if d.DSN == "" {
			return fmt.Errorf("%w: sqlite3 requires a dsn", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, d.Driver)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" && s.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (a App) validate() error {
	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if a.PasswordCost < bcrypt.MinCost || a.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost %d out of range", ErrInvalidAppConfigs, a.PasswordCost)
	}
	return nil
}

// ConnectionString returns DSN when set, otherwise a postgres URL composed
// from the individual connection fields.
func (d DB) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else if d.User != "" {
		u.User = url.User(d.User)
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}

	return u.String()
}
