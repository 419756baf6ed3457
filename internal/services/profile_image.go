package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"store-api/internal/logger"
)

// MaxImageSize is the upload size limit for profile images.
const MaxImageSize = 5 << 20 // 5 MiB

// Error variables
var (
	ErrUnsupportedImageType = errors.New("only image files allowed")
	ErrImageTooLarge        = errors.New("file size too large")
)

// allowedImageTypes is the fixed MIME allow-list for uploads.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ProfileImageService stores and removes a user's profile image, keeping
// the file store and the user's profileImage reference in step.
type ProfileImageService struct {
	repo  UserRepo
	files FileStore
}

// NewProfileImageService creates a new ProfileImageService instance.
func NewProfileImageService(repo UserRepo, files FileStore) *ProfileImageService {
	return &ProfileImageService{repo: repo, files: files}
}

// Upload validates the payload, replaces any previously stored image for
// the user, writes the file under a generated unique name preserving the
// original extension, and updates the user's image reference. Validation
// failures happen before any storage or database mutation.
func (svc *ProfileImageService) Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, size int64, content io.Reader) (string, error) {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", ErrUnsupportedImageType
	}
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	user, err := svc.repo.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up user for image upload", "id", userID, "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if user.ProfileImage != nil {
		if err := svc.files.Remove(*user.ProfileImage); err != nil {
			logger.Log.Warnw("failed to delete old profile image", "path", *user.ProfileImage, "err", err)
		}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "img"
	}
	newName := uuid.New().String() + "." + ext

	imageURL, err := svc.files.SaveProfileImage(newName, content)
	if err != nil {
		logger.Log.Errorw("failed to store profile image", "filename", newName, "err", err)
		return "", err
	}

	if _, err := svc.repo.SetProfileImage(ctx, userID, &imageURL); err != nil {
		logger.Log.Errorw("failed to update profile image reference", "id", userID, "err", err)
		return "", err
	}

	return imageURL, nil
}

// Remove deletes the user's stored image file (best-effort) and clears the
// reference. A user without an image is a success no-op.
func (svc *ProfileImageService) Remove(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.repo.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up user for image removal", "id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.ProfileImage == nil {
		return nil
	}

	if err := svc.files.Remove(*user.ProfileImage); err != nil {
		logger.Log.Warnw("failed to delete profile image file", "path", *user.ProfileImage, "err", err)
	}

	if _, err := svc.repo.SetProfileImage(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear profile image reference", "id", userID, "err", err)
		return err
	}

	return nil
}
