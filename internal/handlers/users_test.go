package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"store-api/internal/models"
	"store-api/internal/repositories"
	"store-api/internal/services"
)

func TestUsersListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns bare array", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		users := []models.UserDB{{ID: uuid.New(), Username: "alice", Email: "alice@example.com", Status: "ACTIVE"}}
		mockSvc.EXPECT().List(gomock.Any()).Return(users, nil)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rr := httptest.NewRecorder()
		NewUsersListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "alice", resp[0]["username"])
		// The credential digest must never appear in the payload.
		_, present := resp[0]["password_hash"]
		assert.False(t, present)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rr := httptest.NewRecorder()
		NewUsersListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp UserErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to fetch users", resp.Message)
	})
}

func TestUserCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserServicer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserServicer) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "alice@example.com", "secret123", "", "", "").
					Return(newID, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "User created successfully",
		},
		{
			name: "missing mandatory data",
			body: `{"username":"alice"}`,
			mockSetup: func(m *MockUserServicer) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "", "", "", "", "").
					Return(uuid.Nil, services.ErrSignupDataRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Missing mandatory data (username, email, password)",
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserServicer) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "alice@example.com", "secret123", "", "", "").
					Return(uuid.Nil, repositories.ErrDuplicateUsername)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Duplicate Username!!",
		},
		{
			name: "duplicate email",
			body: `{"username":"alice2","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserServicer) {
				m.EXPECT().
					Create(gomock.Any(), "alice2", "alice@example.com", "secret123", "", "", "").
					Return(uuid.Nil, repositories.ErrDuplicateEmail)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Duplicate Email!!",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name: "service failure",
			body: `{"username":"alice","email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserServicer) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "alice@example.com", "secret123", "", "", "").
					Return(uuid.Nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserServicer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewUserCreateHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, newID.String(), resp["id"])
			}
		})
	}
}

func TestUserGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	t.Run("invalid id format", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/abc", nil), "id", "abc")
		rr := httptest.NewRecorder()
		NewUserGetHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp UserErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid user ID format", resp.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrUserNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserGetHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp UserErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp.Message)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		user := &models.UserDB{ID: id, Username: "alice", Email: "alice@example.com", Status: "ACTIVE"}
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(user, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserGetHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
	})
}

func TestUserUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, params services.UserUpdateParams) (int64, error) {
				if assert.NotNil(t, params.Firstname) {
					assert.Equal(t, "Alicia", *params.Firstname)
				}
				assert.Nil(t, params.Password)
				return 1, nil
			})

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/users/"+id.String(), bytes.NewBufferString(`{"firstname":"Alicia"}`)), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserUpdateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UserMutationResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User updated successfully", resp.Message)
		assert.Equal(t, int64(1), resp.ModifiedCount)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(int64(0), repositories.ErrDuplicateUsername)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/users/"+id.String(), bytes.NewBufferString(`{"username":"taken"}`)), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserUpdateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp UserErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Duplicate Username!!", resp.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(int64(0), services.ErrUserNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/users/"+id.String(), bytes.NewBufferString(`{"firstname":"ghost"}`)), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserUpdateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUserDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), id).Return(int64(1), nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserDeleteHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UserDeleteResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User deleted successfully", resp.Message)
		assert.Equal(t, int64(1), resp.DeletedCount)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockUserServicer(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), id).Return(int64(0), services.ErrUserNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		NewUserDeleteHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
