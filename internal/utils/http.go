// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"
)

// UnknownClientIP is recorded when no client address can be determined.
const UnknownClientIP = "unknown"

// MaxUserAgentLength bounds the user agent stored with security events and
// devices.
const MaxUserAgentLength = 255

// clientIPHeaders are consulted in order before falling back to RemoteAddr.
// Their values are client supplied and are recorded for audit only.
var clientIPHeaders = []string{
	"Client-IP",
	"X-Forwarded-For",
	"X-Forwarded",
	"X-Cluster-Client-IP",
	"Forwarded-For",
	"Forwarded",
}

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.ErrorResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ClientIP returns the first non-empty address among the proxy headers and
// the connection's remote address. For list-valued headers only the first
// comma separated element is used. Returns UnknownClientIP when nothing is
// available.
func ClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if value := r.Header.Get(header); value != "" {
			first, _, _ := strings.Cut(value, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}

	if r.RemoteAddr == "" {
		return UnknownClientIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// TruncateUserAgent cuts ua to MaxUserAgentLength bytes without splitting a
// UTF-8 sequence.
func TruncateUserAgent(ua string) string {
	if len(ua) <= MaxUserAgentLength {
		return ua
	}
	cut := MaxUserAgentLength
	for cut > 0 && !utf8.RuneStart(ua[cut]) {
		cut--
	}
	return ua[:cut]
}
