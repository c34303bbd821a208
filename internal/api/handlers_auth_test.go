// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tabularium/internal/models"
)

// login authenticates against the router and returns the minted token.
func login(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	body := strings.NewReader(`{"username":"` + username + `","password":"` + password + `"}`)
	w := do(t, router, http.MethodPost, "/api/auth/login", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", w.Code)
	}

	envelope := decodeEnvelope(t, w)
	if !envelope.Success {
		t.Fatalf("login failed: %q", envelope.Message)
	}

	token, ok := dataMap(t, envelope)["token"].(string)
	if !ok || token == "" {
		t.Fatal("login response carries no token")
	}
	return token
}

// authedGet performs a GET with a bearer token.
func authedGet(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestLoginLogoutLifecycle walks the full session arc: login mints a token
// that resolves on /api/auth/user, logout kills it, and the dead token is
// rejected with the invalid-token message afterwards.
func TestLoginLogoutLifecycle(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	token := login(t, router, "admin", "admin123")

	w := authedGet(t, router, "/api/auth/user", token)
	envelope := decodeEnvelope(t, w)
	if !envelope.Success {
		t.Fatalf("fresh token rejected: %q", envelope.Message)
	}
	user := dataMap(t, envelope)
	if user["username"] != "admin" {
		t.Errorf("username = %v, want admin", user["username"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password leaked into the user payload")
	}
	if user["role"] != "admin" {
		t.Errorf("role = %v, want admin", user["role"])
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)
	if msg := decodeEnvelope(t, lw).Message; msg != "logout successful" {
		t.Errorf("logout message = %q", msg)
	}

	w = authedGet(t, router, "/api/auth/user", token)
	if w.Code != http.StatusOK {
		t.Fatalf("dead-token status = %d, want 200", w.Code)
	}
	envelope = decodeEnvelope(t, w)
	if envelope.Success || envelope.Message != "invalid token" {
		t.Errorf("dead token: success=%v message=%q", envelope.Success, envelope.Message)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"nope"}`},
		{"unknown user", `{"username":"ghost","password":"admin123"}`},
		{"empty body", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := do(t, router, http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			envelope := decodeEnvelope(t, w)
			if envelope.Success || envelope.Message != "invalid username or password" {
				t.Errorf("success=%v message=%q", envelope.Success, envelope.Message)
			}
		})
	}
}

func TestLoginRejectsMalformedJSON(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if msg := decodeEnvelope(t, w).Message; msg != "Invalid JSON" {
		t.Errorf("message = %q, want \"Invalid JSON\"", msg)
	}
}

func TestLogoutWithoutTokenStillSucceeds(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if !envelope.Success || envelope.Message != "logout successful" {
		t.Errorf("success=%v message=%q", envelope.Success, envelope.Message)
	}
}

func TestCurrentUserWithoutToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := authedGet(t, router, "/api/auth/user", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; auth failures stay in the envelope", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope.Success || envelope.Message != "unauthorized" {
		t.Errorf("success=%v message=%q", envelope.Success, envelope.Message)
	}
}

func TestCurrentUserWithUnknownToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := authedGet(t, router, "/api/auth/user", "never-issued")
	envelope := decodeEnvelope(t, w)
	if envelope.Success || envelope.Message != "invalid token" {
		t.Errorf("success=%v message=%q", envelope.Success, envelope.Message)
	}
}

func TestRegisterIsAStub(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	body := strings.NewReader(`{"username":"newbie","password":"pw","name":"New User"}`)
	w := do(t, router, http.MethodPost, "/api/auth/register", body)

	envelope := decodeEnvelope(t, w)
	if !envelope.Success || envelope.Message != "registration successful, please log in" {
		t.Fatalf("success=%v message=%q", envelope.Success, envelope.Message)
	}

	// The directory must not have grown: the new account cannot log in.
	lw := do(t, router, http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"newbie","password":"pw"}`))
	if lw.Code != http.StatusUnauthorized {
		t.Errorf("registered stub account logged in; status = %d", lw.Code)
	}
}

func TestCaptchaShape(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/auth/captcha", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var captcha models.CaptchaResponse
	if err := json.Unmarshal(w.Body.Bytes(), &captcha); err != nil {
		t.Fatalf("body is not a captcha response: %v", err)
	}
	if captcha.Code != 200 {
		t.Errorf("code = %d, want 200", captcha.Code)
	}
	if captcha.Data.CaptchaID != "mock-captcha-id" {
		t.Errorf("captchaId = %q", captcha.Data.CaptchaID)
	}
	if !strings.HasPrefix(captcha.Data.CaptchaImage, "data:image/png;base64,") {
		t.Errorf("captchaImage is not a data URL: %q", captcha.Data.CaptchaImage)
	}
}

// TestSocialLoginMintsEphemeralToken covers both social stubs: the response
// carries a token and a fabricated profile, but the token is never stored and
// must not resolve on /api/auth/user.
func TestSocialLoginMintsEphemeralToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	cases := []struct {
		name     string
		path     string
		body     string
		idPrefix string
		username string
		message  string
	}{
		{
			name:     "wechat with profile",
			path:     "/api/auth/wechat/mock-login",
			body:     `{"nickname":"Wen","headimgurl":"http://img.example/w.png"}`,
			idPrefix: "wechat_",
			username: "Wen",
			message:  "wechat login successful",
		},
		{
			name:     "wechat default nickname",
			path:     "/api/auth/wechat/mock-login",
			body:     `{}`,
			idPrefix: "wechat_",
			username: "WeChat User",
			message:  "wechat login successful",
		},
		{
			name:     "qq with profile",
			path:     "/api/auth/qq/mock-login",
			body:     `{"nickname":"Qiu","figureurl_qq_1":"http://img.example/q.png"}`,
			idPrefix: "qq_",
			username: "Qiu",
			message:  "qq login successful",
		},
		{
			name:     "qq default nickname",
			path:     "/api/auth/qq/mock-login",
			body:     ``,
			idPrefix: "qq_",
			username: "QQ User",
			message:  "qq login successful",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := do(t, router, http.MethodPost, tc.path, strings.NewReader(tc.body))
			envelope := decodeEnvelope(t, w)
			if !envelope.Success || envelope.Message != tc.message {
				t.Fatalf("success=%v message=%q", envelope.Success, envelope.Message)
			}

			data := dataMap(t, envelope)
			token, _ := data["token"].(string)
			if token == "" {
				t.Fatal("no token minted")
			}

			user, ok := data["user"].(map[string]any)
			if !ok {
				t.Fatalf("user payload is %T, want object", data["user"])
			}
			if id, _ := user["id"].(string); !strings.HasPrefix(id, tc.idPrefix) {
				t.Errorf("id = %q, want %s prefix", id, tc.idPrefix)
			}
			if user["username"] != tc.username {
				t.Errorf("username = %v, want %q", user["username"], tc.username)
			}
			if user["role"] != "user" {
				t.Errorf("role = %v, want user", user["role"])
			}

			// The social token is response-only state.
			uw := authedGet(t, router, "/api/auth/user", token)
			resolved := decodeEnvelope(t, uw)
			if resolved.Success || resolved.Message != "invalid token" {
				t.Errorf("social token resolved: success=%v message=%q",
					resolved.Success, resolved.Message)
			}
		})
	}
}

func TestSocialLoginTokensAreUnique(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	seen := make(map[string]bool)
	for range 5 {
		w := do(t, router, http.MethodPost, "/api/auth/wechat/mock-login", strings.NewReader(`{}`))
		token, _ := dataMap(t, decodeEnvelope(t, w))["token"].(string)
		if seen[token] {
			t.Fatalf("token %q minted twice", token)
		}
		seen[token] = true
	}
}
