// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is an operator tool for a running authentication service.
//
//	client [-server URL] [-timeout D] [-password P] login <identifier>
//	client [-server URL] me <token>
//	client [-server URL] health
//
// The login password falls back to $SY_PASSWORD. Results are printed as JSON
// on stdout; any failure exits with status 1.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/adapter"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

const passwordEnv = "SY_PASSWORD"

var (
	errUsage           = errors.New("usage: client [-server URL] [-timeout D] [-password P] login <identifier> | me <token> | health")
	errMissingPassword = errors.New("password is required: pass -password or set " + passwordEnv)
)

type clientFactory func(address string, timeout time.Duration) (adapter.AuthClient, error)

func main() {
	log := logger.NewStderrLogger("sayansi-auth-client")

	newClient := func(address string, timeout time.Duration) (adapter.AuthClient, error) {
		return adapter.NewHTTPAuthClient(address, timeout, log)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Getenv, newClient); err != nil {
		log.Error().Err(err).Msg("client command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, getenv func(string) string, newClient clientFactory) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	address := fs.String("server", "http://localhost:8080", "base URL of the authentication service")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	password := fs.String("password", "", "login password (default $"+passwordEnv+")")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	client, err := newClient(*address, *timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	var result any
	switch command := rest[0]; {
	case command == "login" && len(rest) == 2:
		secret := *password
		if secret == "" {
			secret = getenv(passwordEnv)
		}
		if secret == "" {
			return errMissingPassword
		}
		result, err = client.Login(ctx, models.LoginRequest{Identifier: rest[1], Password: secret})
	case command == "me" && len(rest) == 2:
		client.SetToken(rest[1])
		result, err = client.Me(ctx)
	case command == "health" && len(rest) == 1:
		result, err = client.Health(ctx)
	default:
		return errUsage
	}
	if err != nil {
		return fmt.Errorf("%s: %w", rest[0], err)
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
