package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"store-api/internal/logger"
	"store-api/internal/models"
)

// Unique-constraint violations, mapped field-specifically so callers can
// tell a taken username from a taken email.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// userColumns deliberately excludes password_hash: no read path ever
// returns the credential digest.
const userColumns = "id, username, email, firstname, lastname, status, profile_image, created_at, updated_at"

// UserRepository persists users in the "users" table.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users in the table's natural order, without passwords.
func (r *UserRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("query executed",
		"query", query,
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Insert persists a new user and returns the generated identifier.
// A violated uniqueness constraint surfaces as ErrDuplicateUsername or
// ErrDuplicateEmail depending on the violated key.
func (r *UserRepository) Insert(ctx context.Context, username, email, passwordHash, firstname, lastname, status string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (username, email, password_hash, firstname, lastname, status, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, NOW(), NOW())
		RETURNING id
	`
	args := []any{username, email, passwordHash, firstname, lastname, status}

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, firstname, lastname, status},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, mapUniqueViolation(err)
	}
	return id, nil
}

// GetByID returns the user with the given id, or nil when no record matches.
// The password hash is not part of the result.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id},
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

// Update applies the provided fields only and always refreshes updated_at.
// Returns the number of matched rows; duplicate keys map as in Insert.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (int64, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		add("password_hash", *upd.PasswordHash)
	}
	if upd.Firstname != nil {
		add("firstname", *upd.Firstname)
	}
	if upd.Lastname != nil {
		add("lastname", *upd.Lastname)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return rowsAffected, mapUniqueViolation(err)
	}
	return rowsAffected, nil
}

// SetProfileImage sets or clears (path == nil) the profile image reference
// and refreshes updated_at. Returns the number of matched rows.
func (r *UserRepository) SetProfileImage(ctx context.Context, id uuid.UUID, path *string) (int64, error) {
	query := `UPDATE users SET profile_image = $1, updated_at = NOW() WHERE id = $2`
	args := []any{path, id}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the user with the given id. Returns the deleted count.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// mapUniqueViolation inspects the driver error detail and translates a
// unique-constraint violation into a field-specific error. The violated
// constraint name is the primary signal; message text is the fallback for
// drivers that do not expose it.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgerrcode.UniqueViolation {
			return err
		}
		detail := pgErr.ConstraintName
		if detail == "" {
			detail = pgErr.Detail
		}
		switch {
		case strings.Contains(detail, "username"):
			return ErrDuplicateUsername
		case strings.Contains(detail, "email"):
			return ErrDuplicateEmail
		}
		return err
	}

	// Fallback: message inspection, last resort only.
	msg := err.Error()
	if strings.Contains(msg, "duplicate") {
		switch {
		case strings.Contains(msg, "username"):
			return ErrDuplicateUsername
		case strings.Contains(msg, "email"):
			return ErrDuplicateEmail
		}
	}
	return err
}
