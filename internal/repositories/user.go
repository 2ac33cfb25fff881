package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// UserReadRepository handles account read operations.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	log      *zap.SugaredLogger
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, log *zap.SugaredLogger) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter, log: log}
}

func (r *UserReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByIdentifier looks up an account by username or email. Returns nil
// without error when no row matches.
func (r *UserReadRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, display_name, email, password_hash, safe_question, status, created_at, last_login_at
		FROM app_user
		WHERE username = $1 OR email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, identifier)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{identifier},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID looks up an account by primary key. Returns nil without error
// when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, display_name, email, password_hash, safe_question, status, created_at, last_login_at
		FROM app_user
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetConflicting returns an existing account colliding with the given
// username, display name, or non-empty email, or nil when registration
// is free to proceed.
func (r *UserReadRepository) GetConflicting(ctx context.Context, username, displayName, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, display_name, email, password_hash, safe_question, status, created_at, last_login_at
		FROM app_user
		WHERE username = $1
		   OR display_name = $2
		   OR ($3::VARCHAR <> '' AND email = $3)
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, username, displayName, email)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, displayName, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckAvailability reports whether the given username or email is taken,
// matching either field when non-empty in a single query.
func (r *UserReadRepository) CheckAvailability(ctx context.Context, username, email string) (*models.Availability, error) {
	const query = `
		SELECT username, email
		FROM app_user
		WHERE ($1::VARCHAR <> '' AND username = $1)
		   OR ($2::VARCHAR <> '' AND email = $2)
	`

	var rows []struct {
		Username string  `db:"username"`
		Email    *string `db:"email"`
	}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, username, email)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	av := &models.Availability{}
	for _, row := range rows {
		if row.Username == username {
			av.UsernameTaken = true
		}
		if email != "" && row.Email != nil && *row.Email == email {
			av.EmailTaken = true
		}
	}
	return av, nil
}

// UserWriteRepository handles account write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	log      *zap.SugaredLogger
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, log *zap.SugaredLogger) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter, log: log}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a new account and returns its summary.
func (r *UserWriteRepository) Insert(ctx context.Context, username, passwordHash, displayName, email, answerHash string) (*models.UserSummary, error) {
	// NULLIF keeps email-less accounts from colliding on the unique index.
	const query = `
		INSERT INTO app_user (username, password_hash, display_name, email, safe_question)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING user_id, username, display_name, email, created_at
	`
	args := []any{username, passwordHash, displayName, email, answerHash}

	var summary models.UserSummary
	err := sqlx.GetContext(ctx, r.executor(ctx), &summary, query, args...)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, displayName, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateLastLogin stamps the account's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	const query = `UPDATE app_user SET last_login_at = NOW() WHERE user_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	r.log.Infow("query executed",
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}

// InsertLoginLog appends a login audit record.
func (r *UserWriteRepository) InsertLoginLog(ctx context.Context, userID int64, ipAddress, userAgent string) error {
	const query = `
		INSERT INTO user_login_log (user_id, ip_address, user_agent)
		VALUES ($1, $2, $3)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, ipAddress, userAgent)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, ipAddress},
		"error", err,
	)

	return err
}

// UpdatePasswordHash overwrites the stored password hash.
func (r *UserWriteRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	const query = `UPDATE app_user SET password_hash = $1 WHERE user_id = $2`

	_, err := r.executor(ctx).ExecContext(ctx, query, passwordHash, userID)

	r.log.Infow("query executed",
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}

// UpdateAnswerHash overwrites the stored security-answer hash.
func (r *UserWriteRepository) UpdateAnswerHash(ctx context.Context, userID int64, answerHash string) error {
	const query = `UPDATE app_user SET safe_question = $1 WHERE user_id = $2`

	_, err := r.executor(ctx).ExecContext(ctx, query, answerHash, userID)

	r.log.Infow("query executed",
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
