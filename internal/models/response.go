// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package models

// Two response shapes coexist on the wire and both are part of the frontend
// contract:
//
//   - Envelope: {success, message, data, timestamp} for all /api business and
//     auth endpoints. Logical failures keep HTTP 200 with success=false; only
//     malformed JSON (400) and failed login (401) signal through the status
//     code.
//   - Legacy bare objects for the root, health, test, status, and captcha
//     endpoints, each with its own fixed field set.

// Envelope is the versioned-API response wrapper.
//
// Error carries the literal "Not Found" marker on unmatched paths; Total is
// only populated by the category listing, which reports its count beside the
// data array rather than inside it. Both quirks are frontend contract.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Data      any    `json:"data,omitempty"`
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// EchoResponse acknowledges a POST to any path without a dedicated handler,
// echoing the parsed body back to the caller.
type EchoResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ReceivedData any    `json:"received_data"`
	Timestamp    string `json:"timestamp"`
}

// RootStatus is the legacy-shape body of GET /.
type RootStatus struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthStatus is the legacy-shape body of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// TestStatus is the legacy-shape body of GET /api/test.
type TestStatus struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// BackendStatus is the legacy-shape body of GET /api/status.
type BackendStatus struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Port     int    `json:"port"`
	Language string `json:"language"`
}

// CaptchaResponse is the legacy-shape body of GET /api/auth/captcha.
// The code field mimics the upstream captcha service, not the HTTP status.
type CaptchaResponse struct {
	Code int         `json:"code"`
	Data CaptchaData `json:"data"`
}

// CaptchaData carries the fixed mock captcha: a stable ID and a 1x1 PNG.
type CaptchaData struct {
	CaptchaID    string `json:"captchaId"`
	CaptchaImage string `json:"captchaImage"`
}
