// Package session authenticates the single shop operator and carries the
// resulting identity through the request.
package session

import (
	"time"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
)

var (
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
	ErrInvalidToken       = httperr.ErrBusiness("invalid_token")
)

// Principal is the authenticated operator. Every mutating use case takes
// one so the action log can name who did what.
type Principal struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// System is used for work nobody logged in for, such as seeding.
var System = Principal{Email: "system"}
