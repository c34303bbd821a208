// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tabularium/internal/mockdata"
)

// The dashboard endpoints feed the frontend's charts and widgets. All counts
// are fixed; only the borrow-trend dates track the clock.

// BorrowTrend handles GET /api/system/statistics/borrow-trend.
func (h *Handler) BorrowTrend(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, "query successful", mockdata.BorrowTrendFor(time.Now()))
}

// UserActivity handles GET /api/system/statistics/user-activity.
func (h *Handler) UserActivity(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, "query successful", mockdata.UserActivityStats())
}

// RecentActivities handles GET /api/system/activities/recent.
func (h *Handler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, "query successful", mockdata.RecentActivities())
}

// PendingTodos handles GET /api/system/todos/pending.
func (h *Handler) PendingTodos(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, "query successful", mockdata.PendingTodos())
}
