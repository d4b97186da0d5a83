package model

import (
	"time"
)

const (
	TableName  = "auth_tokens"
	EntityName = "auth_token"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldToken     = "token"
	FieldKind      = "kind"
	FieldExpiresAt = "expires_at"
	FieldCreatedAt = "created_at"
)

const (
	KindEmailVerification = "email_verification"
	KindPasswordReset     = "password_reset"
)

// Token is a single-use credential mailed to a user for email verification
// or password reset.
type Token struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	Kind      string    `db:"kind"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Expired reports whether the token is past its validity window.
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
