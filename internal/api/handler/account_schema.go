package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Declared here for the swagger annotations; the actual rendering
// happens in the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// accountRequest is the create/update payload. Password is a pointer: on
// update, a missing password means "keep the existing hash".
type accountRequest struct {
	Username string   `json:"username" validate:"required"`
	Password *string  `json:"password,omitempty" validate:"omitempty,min=1"`
	Enabled  bool     `json:"enabled"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,required"`
}

// accountResponse mirrors the wire contract of the account registry:
// timestamp carries the last modification time, roles are exposed as a list,
// and created_at is never exposed.
type accountResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Enabled   bool      `json:"enabled"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
}

type authenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// updateStatusResponse is returned with 202 Accepted when an update request
// is recognised as a no-op and nothing was written.
type updateStatusResponse struct {
	Status string `json:"status"`
}
