// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sayansi-yathu/auth-service/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_EmptyStruct(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, struct{}{}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "{}" {
		t.Errorf("expected body '{}', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_Slice(t *testing.T) {
	w := httptest.NewRecorder()
	data := []int{1, 2, 3}

	_, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_ErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ErrorResponse{Message: "Too many failed attempts. Please try again after a few minutes.", Locked: true}, http.StatusTooManyRequests)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"locked":true`) {
		t.Errorf("expected locked flag in body, got %s", w.Body.String())
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "10.1.2.3:51234", want: "10.1.2.3"},
		{name: "remote addr without port", remoteAddr: "10.1.2.3", want: "10.1.2.3"},
		{name: "ipv6 remote addr", remoteAddr: "[::1]:8080", want: "::1"},
		{name: "client ip wins", headers: map[string]string{"Client-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"}, remoteAddr: "10.0.0.1:1", want: "1.1.1.1"},
		{name: "first forwarded element", headers: map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.2"}, remoteAddr: "10.0.0.1:1", want: "203.0.113.9"},
		{name: "cluster header", headers: map[string]string{"X-Cluster-Client-IP": "198.51.100.4"}, want: "198.51.100.4"},
		{name: "empty first element skipped", headers: map[string]string{"X-Forwarded-For": " ,10.0.0.2"}, remoteAddr: "10.0.0.1:1", want: "10.0.0.1"},
		{name: "nothing known", want: UnknownClientIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := ClientIP(r); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTruncateUserAgent(t *testing.T) {
	short := "Mozilla/5.0 (X11; Linux x86_64)"
	if got := TruncateUserAgent(short); got != short {
		t.Errorf("short user agent changed: %q", got)
	}

	long := strings.Repeat("a", 300)
	if got := TruncateUserAgent(long); len(got) != MaxUserAgentLength {
		t.Errorf("expected %d bytes, got %d", MaxUserAgentLength, len(got))
	}

	// a two-byte rune straddling the limit is dropped whole
	multibyte := strings.Repeat("a", MaxUserAgentLength-1) + "é" + "tail"
	got := TruncateUserAgent(multibyte)
	if len(got) != MaxUserAgentLength-1 {
		t.Errorf("expected %d bytes, got %d", MaxUserAgentLength-1, len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("truncated user agent is not valid UTF-8")
	}
}
