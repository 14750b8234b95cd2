// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/sayansi-yathu/auth-service/internal/logger"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

// makeRequest creates a test request whose context logger writes to buf.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return injectLogger(req, zerolog.New(buf).With().Timestamp().Logger())
}

func loggingHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "successful login",
			method:          http.MethodPost,
			path:            "/api/auth/login",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"message":"ok"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/api/auth/login"`,
				`"status":200`,
				`"duration":`,
				`"size":16`,
			},
		},
		{
			name:            "registration",
			method:          http.MethodPost,
			path:            "/api/auth/register",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/api/auth/register"`,
				`"status":201`,
			},
		},
		{
			name:          "preflight without body",
			method:        http.MethodOptions,
			path:          "/api/auth/login",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"OPTIONS"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "lockout",
			method:          http.MethodPost,
			path:            "/api/auth/login",
			handlerStatus:   http.StatusTooManyRequests,
			handlerResponse: `{"locked":true}`,
			checkLogContains: []string{
				`"status":429`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/api/auth/me?role=teacher",
			handlerStatus:   http.StatusForbidden,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/api/auth/me?role=teacher"`,
				`"status":403`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			loggingHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			assert.NotEmpty(t, logOutput, "log should not be empty")
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected, "log should contain: %s", expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	loggingHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/api/health", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationObserved(t *testing.T) {
	delay := 40 * time.Millisecond
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	loggingHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/health", &logBuf))

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		loggingHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &bytes.Buffer{}))
	}, "withLogging should not recover panics")
}

func TestWithLogging_NoContextLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		loggingHandler().withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
