// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package mockdata generates the synthetic payloads served by the API: the
// archive list, the category table, and the dashboard statistics.
//
// Everything here is a pure function. Archive records derive every field from
// the record index, so repeated requests return byte-identical data within a
// process and across processes. The one clock-dependent output, the seven-day
// borrow trend, takes its reference time as a parameter.
package mockdata
