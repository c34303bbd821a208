// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package models defines the wire types of the mock archive-management API:
// user and session records, synthetic archive/category/statistics payloads,
// request bodies, and both response envelope shapes.
//
// Field names are part of the frontend contract and must not change; the
// camelCase json tags mirror what the dashboard consumes.
package models
