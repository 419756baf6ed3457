package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"store-api/internal/logger"
	"store-api/internal/models"
)

// Error variables
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrItemFieldsRequired = errors.New("name, price, and category are required")
	ErrItemNameRequired   = errors.New("item name is required")
	ErrNegativePrice      = errors.New("price must be a non-negative number")
)

// ItemRepo defines the persistence operations the item service relies on.
type ItemRepo interface {
	List(ctx context.Context) ([]models.ItemDB, error)
	Insert(ctx context.Context, name, category string, price float64) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ItemDB, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ItemUpdate) (int64, error)
	Replace(ctx context.Context, id uuid.UUID, rep models.ItemReplace) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// ItemService validates item input and maps CRUD outcomes.
type ItemService struct {
	repo ItemRepo
}

// NewItemService creates a new ItemService instance.
func NewItemService(repo ItemRepo) *ItemService {
	return &ItemService{repo: repo}
}

// List returns all items, newest-created first.
func (svc *ItemService) List(ctx context.Context) ([]models.ItemDB, error) {
	items, err := svc.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list items", "err", err)
		return nil, err
	}
	return items, nil
}

// Create validates and persists a new item, returning the generated id.
// Name and category must be non-empty and price present and non-negative;
// nothing is persisted otherwise.
func (svc *ItemService) Create(ctx context.Context, name, category string, price *float64) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" || category == "" || price == nil {
		return uuid.Nil, ErrItemFieldsRequired
	}
	if *price < 0 {
		return uuid.Nil, ErrNegativePrice
	}

	id, err := svc.repo.Insert(ctx, name, category, *price)
	if err != nil {
		logger.Log.Errorw("failed to insert item", "err", err)
		return uuid.Nil, err
	}
	return id, nil
}

// Get returns the item with the given id.
func (svc *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.ItemDB, error) {
	item, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get item", "id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Update applies the provided subset of fields. Price, when present, is
// re-validated as non-negative before any mutation.
func (svc *ItemService) Update(ctx context.Context, id uuid.UUID, upd models.ItemUpdate) (int64, error) {
	if upd.Price != nil && *upd.Price < 0 {
		return 0, ErrNegativePrice
	}

	modified, err := svc.repo.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update item", "id", id, "err", err)
		return 0, err
	}
	if modified == 0 {
		return 0, ErrItemNotFound
	}
	return modified, nil
}

// Replace overwrites the record entirely. All of name, category and price
// are mandatory; name is trimmed and status defaults to ACTIVE.
func (svc *ItemService) Replace(ctx context.Context, id uuid.UUID, rep models.ItemReplace, price *float64) (int64, error) {
	rep.Name = strings.TrimSpace(rep.Name)
	if rep.Name == "" || rep.Category == "" || price == nil {
		return 0, ErrItemFieldsRequired
	}
	if *price < 0 {
		return 0, ErrNegativePrice
	}
	rep.Price = *price
	if rep.Status == "" {
		rep.Status = "ACTIVE"
	}

	modified, err := svc.repo.Replace(ctx, id, rep)
	if err != nil {
		logger.Log.Errorw("failed to replace item", "id", id, "err", err)
		return 0, err
	}
	if modified == 0 {
		return 0, ErrItemNotFound
	}
	return modified, nil
}

// DeleteByID removes the item with the given id and returns the deleted count.
func (svc *ItemService) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := svc.repo.DeleteByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "id", id, "err", err)
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrItemNotFound
	}
	return deleted, nil
}

// DeleteByName removes the item whose name matches case-insensitively and
// returns the deleted count.
func (svc *ItemService) DeleteByName(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrItemNameRequired
	}

	deleted, err := svc.repo.DeleteByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to delete item by name", "name", name, "err", err)
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrItemNotFound
	}
	return deleted, nil
}
