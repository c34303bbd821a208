// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/tomtom215/tabularium/internal/logging"
	"github.com/tomtom215/tabularium/internal/metrics"
	"github.com/tomtom215/tabularium/internal/models"
)

// captchaImage is the fixed 1x1 transparent PNG served as the mock captcha.
// The frontend only checks that the field renders as an <img>.
const captchaImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// Login handles POST /api/auth/login. A failed credential check is the one
// logical failure that surfaces as a non-200 status: the frontend's axios
// interceptor keys its redirect-to-login on 401.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondFailure(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.directory.Authenticate(req.Username, req.Password)
	if err != nil {
		metrics.RecordLogin(false)
		logging.Ctx(r.Context()).Warn().
			Str("username", req.Username).
			Msg("Login failed")
		respondFailure(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := h.sessions.Create(user.Username)
	metrics.RecordLogin(true)
	metrics.SetActiveSessions(h.sessions.Len())

	logging.Ctx(r.Context()).Info().
		Str("username", user.Username).
		Msg("Login successful")

	respondData(w, r, "login successful", models.LoginData{
		Token: session.Token,
		User:  user.Public(),
	})
}

// Logout handles POST /api/auth/logout. It succeeds unconditionally: with a
// valid bearer token the session is removed, without one there is nothing to
// remove and the outcome is the same.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, err := bearerToken(r); err == nil {
		h.sessions.Delete(token)
		metrics.SetActiveSessions(h.sessions.Len())
	}

	respondData(w, r, "logout successful", nil)
}

// Register handles POST /api/auth/register. Registration is a stub: the body
// is parsed (so malformed JSON still yields a 400) and then discarded. The
// directory never grows; the frontend only needs the flow to complete.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		respondFailure(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	respondData(w, r, "registration successful, please log in", nil)
}

// CurrentUser handles GET /api/auth/user. The three failure modes - missing
// bearer token, dead token, and a session whose user left the directory -
// each carry their own message but all keep HTTP 200.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		respondFailure(w, r, http.StatusOK, "unauthorized")
		return
	}

	session, err := h.sessions.Resolve(token)
	if err != nil {
		respondFailure(w, r, http.StatusOK, "invalid token")
		return
	}

	user, err := h.directory.Lookup(session.Username)
	if err != nil {
		respondFailure(w, r, http.StatusOK, "user not found")
		return
	}

	respondData(w, r, "user profile retrieved", user.Public())
}

// Captcha handles GET /api/auth/captcha. The response is the upstream captcha
// service's bare shape, not the envelope; its code field is the service's own
// status, fixed at 200.
func (h *Handler) Captcha(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.CaptchaResponse{
		Code: 200,
		Data: models.CaptchaData{
			CaptchaID:    "mock-captcha-id",
			CaptchaImage: captchaImage,
		},
	})
}

// WechatLogin handles POST /api/auth/wechat/mock-login. It fabricates a user
// from the submitted profile and mints a token. The token is returned but
// never stored, so it will not resolve on /api/auth/user; the mock mirrors
// the social flows only as far as the frontend exercises them.
func (h *Handler) WechatLogin(w http.ResponseWriter, r *http.Request) {
	var req models.WechatLoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondFailure(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	respondData(w, r, "wechat login successful", models.LoginData{
		Token: uuid.New().String(),
		User:  socialProfile("wechat", req.Nickname, "WeChat User", req.AvatarURL),
	})
}

// QQLogin handles POST /api/auth/qq/mock-login. Same contract as WechatLogin.
func (h *Handler) QQLogin(w http.ResponseWriter, r *http.Request) {
	var req models.QQLoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondFailure(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	respondData(w, r, "qq login successful", models.LoginData{
		Token: uuid.New().String(),
		User:  socialProfile("qq", req.Nickname, "QQ User", req.AvatarURL),
	})
}

// socialProfile builds the ephemeral user returned by the social login stubs.
func socialProfile(provider, nickname, fallback, avatar string) models.PublicUser {
	if nickname == "" {
		nickname = fallback
	}
	now := timestamp()

	return models.PublicUser{
		ID:          fmt.Sprintf("%s_%s", provider, uuid.New().String()),
		Username:    nickname,
		Name:        nickname,
		Email:       "",
		Role:        "user",
		Avatar:      avatar,
		Permissions: []string{"read", "write"},
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
