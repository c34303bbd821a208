// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/tabularium/internal/config"
	"github.com/tomtom215/tabularium/internal/middleware"
)

// NewRouter assembles the Chi router: the global middleware stack, every
// business route including its unversioned alias, and the echo/not-found
// fallback for everything else.
//
// Route precedence rides on chi's radix trie: a literal path always beats a
// wildcard at the same depth, which is how /api/v1/archives/statistics
// reaches the statistics handler while /api/v1/archives/anything-else falls
// into the list wildcard. The order of registration below does not matter.
func NewRouter(cfg *config.Config, h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RecoverEnvelope)
	r.Use(allowAllOrigins)
	r.Use(corsMiddleware(cfg))
	r.Use(middleware.PrometheusMetrics)

	// Legacy bare-shape endpoints.
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/api/test", h.APITest)
	r.Get("/api/status", h.APIStatus)

	// Business endpoints answer on both the versioned and the bare prefix;
	// the frontend migrated to /api/v1 in pieces and both generations are
	// still in the field. The wildcards accept any sub-path with the same
	// payload as the collection root.
	for _, base := range []string{"/api/v1", "/api"} {
		r.Get(base+"/archives/statistics", h.ArchiveStats)
		r.Get(base+"/archives", h.Archives)
		r.Get(base+"/archives/*", h.Archives)
		r.Get(base+"/categories", h.Categories)
		r.Get(base+"/categories/*", h.Categories)
		r.Get(base+"/statistics", h.SystemStats)
		r.Get(base+"/statistics/*", h.SystemStats)
	}

	// Auth endpoints sit behind the per-IP rate limiter.
	rl := rateLimiter(cfg)
	r.With(rl).Get("/api/auth/captcha", h.Captcha)
	r.With(rl).Get("/api/auth/user", h.CurrentUser)
	r.With(rl).Post("/api/auth/login", h.Login)
	r.With(rl).Post("/api/auth/logout", h.Logout)
	r.With(rl).Post("/api/auth/register", h.Register)
	r.With(rl).Post("/api/auth/wechat/mock-login", h.WechatLogin)
	r.With(rl).Post("/api/auth/qq/mock-login", h.QQLogin)

	// Dashboard widgets.
	r.Get("/api/system/statistics/borrow-trend", h.BorrowTrend)
	r.Get("/api/system/statistics/user-activity", h.UserActivity)
	r.Get("/api/system/activities/recent", h.RecentActivities)
	r.Get("/api/system/todos/pending", h.PendingTodos)

	// Operational surface, outside the frontend contract.
	r.Handle("/metrics", promhttp.Handler())

	// Unmatched path or method both land in the same fallback; the split
	// between echo and not-found happens on the request method, not on
	// which hook fired.
	r.NotFound(h.Fallback)
	r.MethodNotAllowed(h.Fallback)

	return r
}
