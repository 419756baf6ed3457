package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"store-api/internal/logger"
	"store-api/internal/services"
)

// multipartMemoryLimit is the in-memory threshold for multipart parsing;
// larger parts spill to temporary files.
const multipartMemoryLimit = 8 << 20

// ImageTokener defines the token operations the profile image handlers need.
type ImageTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// ProfileImager defines the interface that the profile image service must
// implement.
type ProfileImager interface {
	Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, size int64, content io.Reader) (string, error)
	Remove(ctx context.Context, userID uuid.UUID) error
}

// ProfileImageResponse represents a successful upload response
// swagger:model ProfileImageResponse
type ProfileImageResponse struct {
	// Relative URL of the stored image
	// default: /profile-images/3f1e....png
	ImageURL string `json:"imageUrl"`

	// Success message
	// default: Profile image uploaded successfully
	Message string `json:"message"`
}

// MessageResponse represents a bare confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Profile image removed successfully
	Message string `json:"message"`
}

// authenticate resolves the bearer credential to a user id, writing the
// 401 response itself on failure.
func authenticate(w http.ResponseWriter, r *http.Request, tokener ImageTokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("authorization failed", "err", err)
		userError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	userID, err := tokener.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("authorization failed", "err", err)
		userError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	return userID, true
}

// NewProfileImageUploadHandler returns an HTTP handler for multipart
// profile image upload.
// @Summary Upload profile image
// @Description Stores an image (JPEG, PNG, GIF or WEBP, max 5 MiB) for the authenticated user, replacing any previous one.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} handlers.ProfileImageResponse "Image stored"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid payload"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users/profile/image [post]
// @Security BearerAuth
func NewProfileImageUploadHandler(svc ProfileImager, tokener ImageTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			userError(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			userError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		imageURL, err := svc.Upload(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedImageType):
				userError(w, http.StatusBadRequest, "Only image files allowed (JPEG, PNG, GIF, WEBP)")
			case errors.Is(err, services.ErrImageTooLarge):
				userError(w, http.StatusBadRequest, "File size too large. Max 5MB allowed")
			case errors.Is(err, services.ErrUserNotFound):
				userError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				userError(w, http.StatusInternalServerError, "Failed to upload profile image")
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileImageResponse{
			ImageURL: imageURL,
			Message:  "Profile image uploaded successfully",
		})
	}
}

// NewProfileImageRemoveHandler returns an HTTP handler removing the
// authenticated user's profile image. Removing an absent image succeeds.
// @Summary Remove profile image
// @Description Deletes the stored image file and clears the user's image reference. Idempotent.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Image removed"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal error"
// @Router /users/profile/image [delete]
// @Security BearerAuth
func NewProfileImageRemoveHandler(svc ProfileImager, tokener ImageTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticate(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), userID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				userError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				userError(w, http.StatusInternalServerError, "Failed to remove profile image")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile image removed successfully"})
	}
}
