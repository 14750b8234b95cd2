// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/sayansi-yathu/auth-service/internal/validators"
	"github.com/sayansi-yathu/auth-service/models"
)

// AuthServiceWrapper decorates an AuthService with extra behavior such as
// request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuthValidationService checks request structure before handing it to the
// wrapped AuthService. Violations are reported as ErrInvalidDataProvided.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req, client)
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, *models.StudentIdentity, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

// Authenticate has no request body to validate.
func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string, roles ...models.Role) (models.User, *models.StudentIdentity, error) {
	return v.inner.Authenticate(ctx, tokenString, roles...)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
