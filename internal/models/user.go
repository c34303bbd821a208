// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package models

import "time"

// UserRecord is a directory entry for a mock user account.
//
// The password is plaintext because the whole account system is a development
// mock; it must never reach a client. Serialization therefore goes through
// Public(), which strips the credential instead of relying on a json tag that
// a future refactor could silently drop.
type UserRecord struct {
	ID          string
	Username    string
	Password    string
	Name        string
	Email       string
	Role        string
	Avatar      string
	Permissions []string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// PublicUser is the client-facing projection of a UserRecord. It carries every
// directory field except the password.
type PublicUser struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Public returns the client-facing projection of the record.
func (u *UserRecord) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Avatar:      u.Avatar,
		Permissions: u.Permissions,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Session is one live login. Created by a successful login, destroyed by
// logout or process exit; there is no expiry.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest is the body of POST /api/auth/login. Missing fields decode to
// empty strings and fail credential matching rather than validation.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginData is the success payload of the login and social-login endpoints.
type LoginData struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// RegisterRequest is the body of POST /api/auth/register. The endpoint is a
// stub that accepts anything and persists nothing, so the fields are optional.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// WechatLoginRequest is the body of POST /api/auth/wechat/mock-login.
// Field names follow the WeChat OAuth profile payload the frontend mimics.
type WechatLoginRequest struct {
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"headimgurl"`
}

// QQLoginRequest is the body of POST /api/auth/qq/mock-login.
// Field names follow the QQ Connect profile payload the frontend mimics.
type QQLoginRequest struct {
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"figureurl_qq_1"`
}
