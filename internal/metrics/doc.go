// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package metrics defines the Prometheus instrumentation for the API:
// request counts, latency histograms, in-flight gauges, and auth outcomes.
// Metrics are served on GET /metrics.
package metrics
