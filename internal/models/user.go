package models

import (
	"time"
)

// Account status values stored in app_user.status.
const (
	UserStatusActive   = 1
	UserStatusDisabled = 0
)

// UserDB represents an account record in the database
type UserDB struct {
	UserID       int64      `db:"user_id"`       // Primary key
	Username     string     `db:"username"`      // Unique username
	DisplayName  string     `db:"display_name"`  // Unique display name
	Email        *string    `db:"email"`         // Optional unique email
	PasswordHash string     `db:"password_hash"` // bcrypt hash
	AnswerHash   string     `db:"safe_question"` // bcrypt hash of the security answer
	Status       int        `db:"status"`        // 1 = active, 0 = disabled
	CreatedAt    time.Time  `db:"created_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

// UserSummary is the subset of account fields returned on register and login.
type UserSummary struct {
	UserID      int64     `db:"user_id"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	Email       *string   `db:"email"`
	CreatedAt   time.Time `db:"created_at"`
}

// Availability reports whether a username or email is already taken.
type Availability struct {
	UsernameTaken bool
	EmailTaken    bool
}
