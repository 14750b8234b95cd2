// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/service"
	"github.com/sayansi-yathu/auth-service/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type fakeAuthService struct {
	loginFn        func(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error)
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, *models.StudentIdentity, error)
	authenticateFn func(ctx context.Context, token string, roles ...models.Role) (models.User, *models.StudentIdentity, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error) {
	return f.loginFn(ctx, req, client)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, *models.StudentIdentity, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string, roles ...models.Role) (models.User, *models.StudentIdentity, error) {
	return f.authenticateFn(ctx, token, roles...)
}

// fakeAppInfoService returns fixed version and health values.
type fakeAppInfoService struct {
	version string
	health  models.HealthResponse
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Health(_ context.Context) models.HealthResponse {
	return f.health
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router over the given AuthService.
func newTestRouter(t *testing.T, auth service.AuthService) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		AppInfoService: &fakeAppInfoService{
			version: "test-version",
			health:  models.HealthResponse{Status: "ok", Service: service.ServiceName, Database: "up"},
		},
	}
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{CORSAllowedOrigins: []string{"https://sayansi.example"}}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/register"},
		// session middleware answers 401, which still proves the route exists
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/health"},
		{http.MethodGet, "/api/version"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgNotFound, decodeError(t, rec).Message)
}

func TestInit_WrongMethodReturnsJSON405(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPut, "/api/auth/login"},
		{http.MethodPost, "/api/health"},
		{http.MethodDelete, "/api/auth/me"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, msgMethodNotAllowed, decodeError(t, rec).Message)
	}
}

func TestInit_PreflightReturns204(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	for _, path := range []string{"/api/auth/login", "/api/auth/register", "/api/auth/me", "/api/health"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://app.sayansi.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Empty(t, rec.Body.String())
	}
}

func TestInit_PlainOptionsReturns204(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCorsOptions_ConfiguredOrigins(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{CORSAllowedOrigins: []string{"https://a.example"}}, logger.Nop())

	opts := h.corsOptions()

	assert.Equal(t, []string{"https://a.example"}, opts.AllowedOrigins)
	assert.True(t, opts.AllowCredentials)
	assert.True(t, opts.OptionsPassthrough)
}

func TestCorsOptions_DefaultAllowsAnyOriginWithoutCredentials(t *testing.T) {
	opts := NewHandler(&service.Services{}, config.Server{}, logger.Nop()).corsOptions()

	assert.Equal(t, []string{"*"}, opts.AllowedOrigins)
	assert.False(t, opts.AllowCredentials)
}

func TestInit_TraceIDEchoed(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// health / version
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, service.ServiceName, body.Service)
	assert.Equal(t, "up", body.Database)
}

func TestHealth_DegradedIsStill200(t *testing.T) {
	svcs := &service.Services{AppInfoService: &fakeAppInfoService{
		health: models.HealthResponse{Status: "degraded", Database: "down"},
	}}
	router := NewHandler(svcs, config.Server{}, logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"down"`)
}

func TestVersion(t *testing.T) {
	router := newTestRouter(t, &fakeAuthService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rec.Body.String())
}
