package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"store-api/internal/logger"
	"store-api/internal/models"
	"store-api/internal/services"
)

// ItemServicer defines the interface that the item service must implement.
type ItemServicer interface {
	List(ctx context.Context) ([]models.ItemDB, error)
	Create(ctx context.Context, name, category string, price *float64) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ItemDB, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ItemUpdate) (int64, error)
	Replace(ctx context.Context, id uuid.UUID, rep models.ItemReplace, price *float64) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// ItemRequest represents the JSON body for item creation and replacement
// swagger:model ItemRequest
type ItemRequest struct {
	// Item name
	// required: true
	// default: Widget
	Name string `json:"name"`

	// Category label
	// required: true
	// default: tools
	Category string `json:"category"`

	// Price, a non-negative number or numeric string
	// required: true
	// default: 9.99
	Price flexPrice `json:"price"`

	// Status, defaults to ACTIVE
	Status string `json:"status"`
}

// ItemListResponse represents the list response
// swagger:model ItemListResponse
type ItemListResponse struct {
	Success bool            `json:"success"`
	Items   []models.ItemDB `json:"items"`
}

// ItemDataResponse represents a single-item response
// swagger:model ItemDataResponse
type ItemDataResponse struct {
	Success bool          `json:"success"`
	Data    models.ItemDB `json:"data"`
}

// ItemCreateResponse represents a successful creation response
// swagger:model ItemCreateResponse
type ItemCreateResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// ItemMutationResponse represents a successful update/replace response
// swagger:model ItemMutationResponse
type ItemMutationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// ItemDeleteResponse represents a successful delete response
// swagger:model ItemDeleteResponse
type ItemDeleteResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// ItemErrorResponse represents an error response for item operations
// swagger:model ItemErrorResponse
type ItemErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func itemError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ItemErrorResponse{Success: false, Message: message})
}

// NewItemsListHandler returns an HTTP handler listing all items.
// @Summary List items
// @Description Returns all items, newest-created first.
// @Tags items
// @Produce json
// @Success 200 {object} handlers.ItemListResponse "Items returned"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items [get]
func NewItemsListHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			itemError(w, http.StatusInternalServerError, "Failed to fetch items")
			return
		}
		writeJSON(w, http.StatusOK, ItemListResponse{Success: true, Items: items})
	}
}

// NewItemCreateHandler returns an HTTP handler creating an item.
// @Summary Create item
// @Description Creates an item with name, category and non-negative price. Status defaults to ACTIVE.
// @Tags items
// @Accept json
// @Produce json
// @Param request body handlers.ItemRequest true "Item create request"
// @Success 201 {object} handlers.ItemCreateResponse "Item created"
// @Failure 400 {object} handlers.ItemErrorResponse "Validation failure"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items [post]
func NewItemCreateHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			itemError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		price, priceOK := req.Price.Float()
		var pricePtr *float64
		if priceOK {
			pricePtr = &price
		}
		// Unparseable price only matters once the required fields are there;
		// otherwise the required-fields error takes precedence.
		if req.Price.set && !priceOK && strings.TrimSpace(req.Name) != "" && req.Category != "" {
			itemError(w, http.StatusBadRequest, "Price must be a positive number")
			return
		}

		id, err := svc.Create(r.Context(), req.Name, req.Category, pricePtr)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemFieldsRequired):
				itemError(w, http.StatusBadRequest, "Name, price, and category are required")
			case errors.Is(err, services.ErrNegativePrice):
				itemError(w, http.StatusBadRequest, "Price must be a positive number")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				itemError(w, http.StatusInternalServerError, "Failed to create item")
			}
			return
		}

		writeJSON(w, http.StatusCreated, ItemCreateResponse{
			Success: true,
			Message: "Item created successfully",
			ID:      id,
		})
	}
}

// NewItemGetHandler returns an HTTP handler fetching one item by id.
// @Summary Fetch item
// @Description Returns the item with the given id.
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} handlers.ItemDataResponse "Item returned"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid item ID format"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items/{id} [get]
func NewItemGetHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			itemError(w, http.StatusBadRequest, "Invalid item ID format")
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				itemError(w, http.StatusNotFound, "Item not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				itemError(w, http.StatusInternalServerError, "Failed to fetch item")
			}
			return
		}

		writeJSON(w, http.StatusOK, ItemDataResponse{Success: true, Data: *item})
	}
}

// itemUpdateRequest represents the JSON body for a partial item update.
type itemUpdateRequest struct {
	Name     *string   `json:"name"`
	Category *string   `json:"category"`
	Price    flexPrice `json:"price"`
	Status   *string   `json:"status"`
}

// NewItemUpdateHandler returns an HTTP handler partially updating an item.
// @Summary Update item
// @Description Applies any subset of name, category, price and status. Price is re-validated when present.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body handlers.ItemRequest true "Fields to update"
// @Success 200 {object} handlers.ItemMutationResponse "Item updated"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items/{id} [patch]
func NewItemUpdateHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			itemError(w, http.StatusBadRequest, "Invalid item ID format")
			return
		}

		var req itemUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			itemError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		upd := models.ItemUpdate{
			Name:     req.Name,
			Category: req.Category,
			Status:   req.Status,
		}
		if req.Price.set {
			price, ok := req.Price.Float()
			if !ok {
				itemError(w, http.StatusBadRequest, "Price must be a valid positive number")
				return
			}
			upd.Price = &price
		}

		modified, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNegativePrice):
				itemError(w, http.StatusBadRequest, "Price must be a valid positive number")
			case errors.Is(err, services.ErrItemNotFound):
				itemError(w, http.StatusNotFound, "Item not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				itemError(w, http.StatusInternalServerError, "Failed to update item")
			}
			return
		}

		writeJSON(w, http.StatusOK, ItemMutationResponse{
			Success:       true,
			Message:       "Item updated successfully",
			ModifiedCount: modified,
		})
	}
}

// itemReplaceRequest represents the JSON body for a full item replacement.
type itemReplaceRequest struct {
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Price     flexPrice  `json:"price"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
}

// NewItemReplaceHandler returns an HTTP handler fully replacing an item.
// @Summary Replace item
// @Description Overwrites the record. Name, category and price are all required; createdAt is preserved when supplied.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body handlers.ItemRequest true "Item replace request"
// @Success 200 {object} handlers.ItemMutationResponse "Item replaced"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items/{id} [put]
func NewItemReplaceHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			itemError(w, http.StatusBadRequest, "Invalid item ID format")
			return
		}

		var req itemReplaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			itemError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		price, priceOK := req.Price.Float()
		var pricePtr *float64
		if priceOK {
			pricePtr = &price
		}
		if req.Price.set && !priceOK && strings.TrimSpace(req.Name) != "" && req.Category != "" {
			itemError(w, http.StatusBadRequest, "Price must be a valid positive number")
			return
		}

		rep := models.ItemReplace{
			Name:      req.Name,
			Category:  req.Category,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
		}

		modified, err := svc.Replace(r.Context(), id, rep, pricePtr)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemFieldsRequired):
				itemError(w, http.StatusBadRequest, "Name, price, and category are required")
			case errors.Is(err, services.ErrNegativePrice):
				itemError(w, http.StatusBadRequest, "Price must be a valid positive number")
			case errors.Is(err, services.ErrItemNotFound):
				itemError(w, http.StatusNotFound, "Item not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				itemError(w, http.StatusInternalServerError, "Failed to replace item")
			}
			return
		}

		writeJSON(w, http.StatusOK, ItemMutationResponse{
			Success:       true,
			Message:       "Item replaced successfully",
			ModifiedCount: modified,
		})
	}
}

// NewItemDeleteHandler returns an HTTP handler deleting an item by id.
// @Summary Delete item
// @Description Deletes the item with the given id.
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} handlers.ItemDeleteResponse "Item deleted"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid item ID format"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items/{id} [delete]
func NewItemDeleteHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			itemError(w, http.StatusBadRequest, "Invalid item ID format")
			return
		}

		deleted, err := svc.DeleteByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				itemError(w, http.StatusNotFound, "Item not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				itemError(w, http.StatusInternalServerError, "Failed to delete item")
			}
			return
		}

		writeJSON(w, http.StatusOK, ItemDeleteResponse{
			Success:      true,
			Message:      "Item deleted successfully",
			DeletedCount: deleted,
		})
	}
}

// NewItemDeleteByNameHandler returns an HTTP handler deleting an item by
// case-insensitive name, the legacy entry point kept alongside delete-by-id.
// @Summary Delete item by name
// @Description Deletes the item whose name matches case-insensitively.
// @Tags items
// @Produce json
// @Param name query string true "Item name"
// @Success 200 {object} handlers.ItemDeleteResponse "Item deleted"
// @Failure 400 {object} handlers.ItemErrorResponse "Missing name"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal error"
// @Router /items [delete]
func NewItemDeleteByNameHandler(svc ItemServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))

		deleted, err := svc.DeleteByName(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNameRequired):
				itemError(w, http.StatusBadRequest, "Item name is required. Use ?name=itemName")
			case errors.Is(err, services.ErrItemNotFound):
				itemError(w, http.StatusNotFound, fmt.Sprintf("Item %q not found", name))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				itemError(w, http.StatusInternalServerError, "Failed to delete item")
			}
			return
		}

		writeJSON(w, http.StatusOK, ItemDeleteResponse{
			Success:      true,
			Message:      fmt.Sprintf("Item %q deleted successfully", name),
			DeletedCount: deleted,
		})
	}
}
