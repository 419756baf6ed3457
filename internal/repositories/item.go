package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"store-api/internal/logger"
	"store-api/internal/models"
)

// ItemRepository persists items in the "items" table.
type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = "id, name, category, price, status, created_at, updated_at"

// List returns all items, newest-created first.
func (r *ItemRepository) List(ctx context.Context) ([]models.ItemDB, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY created_at DESC
	`

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Insert persists a new item and returns the generated identifier.
func (r *ItemRepository) Insert(ctx context.Context, name, category string, price float64) (uuid.UUID, error) {
	query := `
		INSERT INTO items (name, category, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'ACTIVE', NOW(), NOW())
		RETURNING id
	`
	args := []any{name, category, price}

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetByID returns the item with the given id, or nil when no record matches.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ItemDB, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the provided fields only and always refreshes updated_at.
// Returns the number of matched rows.
func (r *ItemRepository) Update(ctx context.Context, id uuid.UUID, upd models.ItemUpdate) (int64, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE items SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

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

// Replace overwrites the record entirely. A caller-supplied creation time is
// preserved, otherwise created_at is reset to now.
func (r *ItemRepository) Replace(ctx context.Context, id uuid.UUID, rep models.ItemReplace) (int64, error) {
	query := `
		UPDATE items
		SET name = $1,
		    category = $2,
		    price = $3,
		    status = $4,
		    created_at = COALESCE($5, NOW()),
		    updated_at = NOW()
		WHERE id = $6
	`
	args := []any{rep.Name, rep.Category, rep.Price, rep.Status, rep.CreatedAt, id}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteByID removes the item with the given id. Returns the deleted count.
func (r *ItemRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM items WHERE id = $1`

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

// DeleteByName removes the item whose name matches case-insensitively.
// Returns the deleted count.
func (r *ItemRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	query := `DELETE FROM items WHERE LOWER(name) = LOWER($1)`

	res, err := r.db.ExecContext(ctx, query, name)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{name},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
