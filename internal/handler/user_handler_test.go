package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService, testLogger)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful create",
			body: map[string]string{"name": "Ann", "email": "ann@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return &models.User{ID: 1, Name: req.Name, Email: req.Email}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeData(t, w)
				assert.Equal(t, float64(1), data["id"])
				assert.Equal(t, "ann@example.com", data["email"])
			},
		},
		{
			name:           "invalid email",
			body:           map[string]string{"name": "Ann", "email": "not-an-email"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank name",
			body:           map[string]string{"name": "   ", "email": "ann@example.com"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: map[string]string{"name": "Ann", "email": "ann@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "user with this email already exists", errorMessage(t, w))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService, testLogger)

			router := gin.New()
			router.POST("/users", handler.CreateUser)

			w := doRequest(router, http.MethodPost, "/users", "", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful get user",
			userID: "1",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id int64) (*models.User, error) {
					return &models.User{ID: id, Email: "test@example.com", Name: "Test User"}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeData(t, w)
				assert.Equal(t, "test@example.com", data["email"])
			},
		},
		{
			name:   "user not found",
			userID: "99",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id int64) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non numeric id",
			userID:         "abc",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "internal server error",
			userID: "1",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id int64) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "unexpected error", errorMessage(t, w))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService, testLogger)

			router := gin.New()
			router.GET("/users/:id", handler.GetUser)

			w := doRequest(router, http.MethodGet, "/users/"+tt.userID, "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	t.Run("returns all users", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
				return []models.User{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil
			},
		}
		router := gin.New()
		router.GET("/users", NewUserHandler(mockService, testLogger).GetAllUsers)

		w := doRequest(router, http.MethodGet, "/users", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w), 2)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
				return []models.User{}, nil
			},
		}
		router := gin.New()
		router.GET("/users", NewUserHandler(mockService, testLogger).GetAllUsers)

		w := doRequest(router, http.MethodGet, "/users", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeList(t, w))
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name: "patches name only",
			body: map[string]string{"name": "New"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
					assert.Equal(t, int64(1), id)
					assert.Nil(t, req.Email)
					return &models.User{ID: id, Name: *req.Name, Email: "a@example.com"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid email",
			body:           map[string]string{"email": "bad"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: map[string]string{"email": "taken@example.com"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown user",
			body: map[string]string{"name": "New"},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.PATCH("/users/:id", NewUserHandler(mockService, testLogger).UpdateUser)

			w := doRequest(router, http.MethodPatch, "/users/1", "", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		mockErr        error
		expectedStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"store failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{
				DeleteUserFunc: func(ctx context.Context, id int64) error { return tt.mockErr },
			}

			router := gin.New()
			router.DELETE("/users/:id", NewUserHandler(mockService, testLogger).DeleteUser)

			w := doRequest(router, http.MethodDelete, "/users/3", "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
