package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"store-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestItemRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	id1, id2 := uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "category", "price", "status", "created_at", "updated_at"}).
		AddRow(id2.String(), "mug", "kitchen", 7.5, "ACTIVE", now, now).
		AddRow(id1.String(), "keyboard", "electronics", 49.99, "ACTIVE", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`ORDER BY created_at DESC`).
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "mug", items[0].Name)
	assert.Equal(t, id1, items[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	newID := uuid.New()

	mock.ExpectQuery(`INSERT INTO items`).
		WithArgs("keyboard", "electronics", 49.99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID.String()))

	id, err := repo.Insert(context.Background(), "keyboard", "electronics", 49.99)
	assert.NoError(t, err)
	assert.Equal(t, newID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	id := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "category", "price", "status", "created_at", "updated_at"}).
			AddRow(id.String(), "keyboard", "electronics", 49.99, "ACTIVE", now, now)

		mock.ExpectQuery(`WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(rows)

		item, err := repo.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "keyboard", item.Name)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(`WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("driver error surfaces", func(t *testing.T) {
		mock.ExpectQuery(`WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(errors.New("connection reset"))

		item, err := repo.GetByID(context.Background(), id)
		assert.Error(t, err)
		assert.Nil(t, item)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	id := uuid.New()
	name := "keyboard pro"
	price := 59.99

	t.Run("single field", func(t *testing.T) {
		mock.ExpectExec(`UPDATE items SET name = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(name, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		modified, err := repo.Update(context.Background(), id, models.ItemUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("multiple fields keep declaration order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE items SET name = \$1, price = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(name, price, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		modified, err := repo.Update(context.Background(), id, models.ItemUpdate{Name: &name, Price: &price})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("empty update still touches updated_at", func(t *testing.T) {
		mock.ExpectExec(`UPDATE items SET updated_at = NOW\(\) WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		modified, err := repo.Update(context.Background(), id, models.ItemUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("no matched rows", func(t *testing.T) {
		mock.ExpectExec(`UPDATE items SET name = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(name, id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		modified, err := repo.Update(context.Background(), id, models.ItemUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), modified)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Replace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	id := uuid.New()
	created := time.Now().Add(-24 * time.Hour)

	t.Run("preserves supplied created_at", func(t *testing.T) {
		mock.ExpectExec(`created_at = COALESCE\(\$5, NOW\(\)\)`).
			WithArgs("keyboard", "electronics", 49.99, "ACTIVE", created, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		modified, err := repo.Replace(context.Background(), id, models.ItemReplace{
			Name: "keyboard", Category: "electronics", Price: 49.99, Status: "ACTIVE", CreatedAt: &created,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("nil created_at falls back to NOW", func(t *testing.T) {
		mock.ExpectExec(`created_at = COALESCE\(\$5, NOW\(\)\)`).
			WithArgs("keyboard", "electronics", 49.99, "ACTIVE", nil, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		modified, err := repo.Replace(context.Background(), id, models.ItemReplace{
			Name: "keyboard", Category: "electronics", Price: 49.99, Status: "ACTIVE",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	id := uuid.New()

	mock.ExpectExec(`DELETE FROM items WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	mock.ExpectExec(`DELETE FROM items WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("Keyboard").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteByName(context.Background(), "Keyboard")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
