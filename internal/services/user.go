package services

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"store-api/internal/logger"
	"store-api/internal/models"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSignupDataRequired = errors.New("missing mandatory data (username, email, password)")
)

// UserRepo defines the persistence operations the user service relies on.
type UserRepo interface {
	List(ctx context.Context) ([]models.UserDB, error)
	Insert(ctx context.Context, username, email, passwordHash, firstname, lastname, status string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (int64, error)
	SetProfileImage(ctx context.Context, id uuid.UUID, path *string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// FileStore defines the image file operations the user-facing services rely
// on. Remove failures are best-effort by contract: callers log and move on.
type FileStore interface {
	SaveProfileImage(filename string, content io.Reader) (string, error)
	Remove(relPath string) error
}

// UserUpdateParams carries the optional fields of a partial user update,
// with the password still in plaintext. Nil means "leave unchanged".
type UserUpdateParams struct {
	Username  *string
	Email     *string
	Password  *string
	Firstname *string
	Lastname  *string
	Status    *string
}

// UserService validates user input, hashes credentials and maps CRUD
// outcomes. Deleting a user cascades to its stored profile image file.
type UserService struct {
	repo  UserRepo
	files FileStore
}

// NewUserService creates a new UserService instance.
func NewUserService(repo UserRepo, files FileStore) *UserService {
	return &UserService{repo: repo, files: files}
}

// List returns all users. Password digests never leave the repository.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Create registers a new user. Username, email and password are mandatory;
// the password is hashed before anything is persisted. Uniqueness
// violations surface as repositories.ErrDuplicateUsername or
// repositories.ErrDuplicateEmail.
func (svc *UserService) Create(ctx context.Context, username, email, password, firstname, lastname, status string) (uuid.UUID, error) {
	if username == "" || email == "" || password == "" {
		return uuid.Nil, ErrSignupDataRequired
	}
	if status == "" {
		status = "ACTIVE"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	id, err := svc.repo.Insert(ctx, username, email, string(hashed), firstname, lastname, status)
	if err != nil {
		logger.Log.Errorw("failed to insert user", "username", username, "err", err)
		return uuid.Nil, err
	}
	return id, nil
}

// Get returns the user with the given id, without the password.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies the provided subset of fields, rehashing the password
// when one is supplied.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, params UserUpdateParams) (int64, error) {
	upd := models.UserUpdate{
		Username:  params.Username,
		Email:     params.Email,
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Status:    params.Status,
	}

	if params.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return 0, err
		}
		hashedStr := string(hashed)
		upd.PasswordHash = &hashedStr
	}

	modified, err := svc.repo.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return 0, err
	}
	if modified == 0 {
		return 0, ErrUserNotFound
	}
	return modified, nil
}

// Delete removes the user record, first deleting any referenced profile
// image file. File deletion is best-effort and never aborts the delete.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	user, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up user before delete", "id", id, "err", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	if user.ProfileImage != nil {
		if err := svc.files.Remove(*user.ProfileImage); err != nil {
			logger.Log.Warnw("failed to delete profile image file", "path", *user.ProfileImage, "err", err)
		}
	}

	deleted, err := svc.repo.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrUserNotFound
	}
	return deleted, nil
}
