package domain

import (
	"errors"
	"strings"
	"time"
)

// RoleSeparator joins the role list into its persisted form. Role tags must
// not contain the separator; no escaping is performed.
const RoleSeparator = ","

var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidAccount = errors.New("invalid account request")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDisabled = errors.New("account disabled")
var ErrNoEffectiveChange = errors.New("no effective change")
var ErrMissingAccountID = errors.New("persisted account has no id")

// Account is the core aggregate: identity, credentials, and role tags.
// Roles holds the persisted comma-joined form; use SplitRoles to expose it
// as a list.
type Account struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Enabled      bool      `json:"enabled"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        string    `json:"roles"`
}

// Persisted reports whether the store has assigned this account an id.
func (a *Account) Persisted() bool {
	return a.ID != ""
}

// JoinRoles converts a role list into the persisted comma-joined string.
// Order and duplicates are preserved.
func JoinRoles(roles []string) string {
	return strings.Join(roles, RoleSeparator)
}

// SplitRoles converts the persisted comma-joined string back into a list.
func SplitRoles(roles string) []string {
	return strings.Split(roles, RoleSeparator)
}
