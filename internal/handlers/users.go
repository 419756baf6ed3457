package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"store-api/internal/logger"
	"store-api/internal/models"
	"store-api/internal/repositories"
	"store-api/internal/services"
)

// UserServicer defines the interface that the user service must implement.
type UserServicer interface {
	List(ctx context.Context) ([]models.UserDB, error)
	Create(ctx context.Context, username, email, password, firstname, lastname, status string) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	Update(ctx context.Context, id uuid.UUID, params services.UserUpdateParams) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// First name
	Firstname string `json:"firstname"`

	// Last name
	Lastname string `json:"lastname"`

	// Status, defaults to ACTIVE
	Status string `json:"status"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// UserMutationResponse represents a successful update response
// swagger:model UserMutationResponse
type UserMutationResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// UserDeleteResponse represents a successful delete response
// swagger:model UserDeleteResponse
type UserDeleteResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// UserErrorResponse represents an error response for user operations
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User not found
	Message string `json:"message"`
}

func userError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, UserErrorResponse{Message: message})
}

// NewUsersListHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns all users. Password digests are never included.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Users returned"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users [get]
func NewUsersListHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			userError(w, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewUserCreateHandler returns an HTTP handler for user signup.
// @Summary Sign up
// @Description Creates a user account with a hashed password. Username and email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.SignupRequest true "Signup request"
// @Success 200 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.UserErrorResponse "Missing data or duplicate identity"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users [post]
func NewUserCreateHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			userError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		id, err := svc.Create(r.Context(), req.Username, req.Email, req.Password, req.Firstname, req.Lastname, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSignupDataRequired):
				userError(w, http.StatusBadRequest, "Missing mandatory data (username, email, password)")
			case errors.Is(err, repositories.ErrDuplicateUsername):
				userError(w, http.StatusBadRequest, "Duplicate Username!!")
			case errors.Is(err, repositories.ErrDuplicateEmail):
				userError(w, http.StatusBadRequest, "Duplicate Email!!")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				userError(w, http.StatusInternalServerError, "Failed to create user")
			}
			return
		}

		writeJSON(w, http.StatusOK, SignupResponse{
			ID:      id,
			Message: "User created successfully",
		})
	}
}

// NewUserGetHandler returns an HTTP handler fetching one user by id.
// @Summary Fetch user
// @Description Returns the user with the given id, without the password.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserDB "User returned"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid user ID format"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users/{id} [get]
func NewUserGetHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			userError(w, http.StatusBadRequest, "Invalid user ID format")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				userError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				userError(w, http.StatusInternalServerError, "Failed to fetch user")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// userUpdateRequest represents the JSON body for a partial user update.
type userUpdateRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Status    *string `json:"status"`
}

// NewUserUpdateHandler returns an HTTP handler partially updating a user.
// @Summary Update user
// @Description Applies any subset of user fields; the password is rehashed when supplied.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.SignupRequest true "Fields to update"
// @Success 200 {object} handlers.UserMutationResponse "User updated"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid input or duplicate identity"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users/{id} [patch]
func NewUserUpdateHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			userError(w, http.StatusBadRequest, "Invalid user ID format")
			return
		}

		var req userUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			userError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		modified, err := svc.Update(r.Context(), id, services.UserUpdateParams{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			Firstname: req.Firstname,
			Lastname:  req.Lastname,
			Status:    req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrDuplicateUsername):
				userError(w, http.StatusBadRequest, "Duplicate Username!!")
			case errors.Is(err, repositories.ErrDuplicateEmail):
				userError(w, http.StatusBadRequest, "Duplicate Email!!")
			case errors.Is(err, services.ErrUserNotFound):
				userError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				userError(w, http.StatusInternalServerError, "Failed to update user")
			}
			return
		}

		writeJSON(w, http.StatusOK, UserMutationResponse{
			Message:       "User updated successfully",
			ModifiedCount: modified,
		})
	}
}

// NewUserDeleteHandler returns an HTTP handler deleting a user.
// @Summary Delete user
// @Description Deletes the user record, cascading to its stored profile image file.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserDeleteResponse "User deleted"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid user ID format"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users/{id} [delete]
func NewUserDeleteHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			userError(w, http.StatusBadRequest, "Invalid user ID format")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				userError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				userError(w, http.StatusInternalServerError, "Failed to delete user")
			}
			return
		}

		writeJSON(w, http.StatusOK, UserDeleteResponse{
			Message:      "User deleted successfully",
			DeletedCount: deleted,
		})
	}
}
