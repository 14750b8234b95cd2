// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sayansi-yathu/auth-service/internal/mock"
	"github.com/sayansi-yathu/auth-service/models"
)

func TestAuthValidationService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "juma"}, models.ClientInfo{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	req := models.LoginRequest{Identifier: "juma", Password: "pw"}
	inner.EXPECT().Login(gomock.Any(), req, models.ClientInfo{}).Return(models.LoginResult{Token: models.Token{SignedString: "t"}}, nil)

	res, err := svc.Login(context.Background(), req, models.ClientInfo{})
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token.SignedString)
}

func TestAuthValidationService_LoginLongFingerprintPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	req := models.LoginRequest{Identifier: "juma", Password: "pw", RememberDevice: true, DeviceFingerprint: strings.Repeat("f", 300)}
	inner.EXPECT().Login(gomock.Any(), req, models.ClientInfo{}).Return(models.LoginResult{Token: models.Token{SignedString: "t"}}, nil)

	res, err := svc.Login(context.Background(), req, models.ClientInfo{})
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token.SignedString)
}

func TestAuthValidationService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, _, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Contains(t, err.Error(), "email")

	req := models.RegisterRequest{Name: "A", Email: "a@b.tz", Password: "supersecret"}
	inner.EXPECT().Register(gomock.Any(), req).Return(models.User{UserID: 1}, nil, nil)

	user, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthValidationService_AuthenticatePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	inner.EXPECT().Authenticate(gomock.Any(), "tok", models.RoleAdmin).Return(models.User{UserID: 3}, nil, nil)

	user, _, err := svc.Authenticate(context.Background(), "tok", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
}
