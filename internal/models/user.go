package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
// Includes username and password hash for local authentication plus the
// provider columns for OAuth users.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"` // NULL for OAuth-only users
	AuthProvider string         `db:"auth_provider"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh token fields; only the SHA256 hash of the token is stored.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
