// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a wrapping [http.ResponseWriter] that intercepts
// WriteHeader and Write calls to record the status code and number of body
// bytes for the access log. The status is written to the underlying writer
// at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code written via WriteHeader, or
	// [http.StatusOK] when Write is called first.
	status int

	// wroteHeader guards against writing the status twice.
	wroteHeader bool

	// size is the total number of body bytes written so far.
	size int
}

// WriteHeader records statusCode and forwards it to the underlying
// ResponseWriter. Subsequent calls are silently ignored.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends b to the client, implying 200 OK if no status was written.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
