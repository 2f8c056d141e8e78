package user_handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	auth_service_mock "eventsphere-api/mocks/auth"
	metrics_mock "eventsphere-api/mocks/metrics"
	profile_service_mock "eventsphere-api/mocks/profile"
)

func setupUserHandler(t *testing.T) (*auth_service_mock.Service, *profile_service_mock.Service, *metrics_mock.MetricsProvider, http.Handler) {
	auth := auth_service_mock.NewService(t)
	profile := profile_service_mock.NewService(t)
	metricsProvider := metrics_mock.NewMetricsProvider(t)

	handler := NewHandler(auth, profile, validator.New(), logger.New("test"), metricsProvider)

	r := chi.NewRouter()
	r.Post("/registerUser", handler.Register)
	r.Post("/login", handler.Login)
	r.Post("/logout", handler.Logout)
	r.Put("/updateUserProfile/{email}", handler.UpdateProfile)
	return auth, profile, metricsProvider, r
}

func multipartProfileBody(t *testing.T, username, password string, avatar []byte, avatarName string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("username", username))
	require.NoError(t, writer.WriteField("password", password))
	if avatar != nil {
		part, err := writer.CreateFormFile("profilePic", avatarName)
		require.NoError(t, err)
		_, err = part.Write(avatar)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mocks      func(auth *auth_service_mock.Service)
		wantStatus int
	}{
		{
			name: "successful registration",
			body: `{"username":"alice","email":"alice@b.c","password":"secret"}`,
			mocks: func(auth *auth_service_mock.Service) {
				auth.On("Register", mock.Anything, &model.RegisterUserDTO{
					Username: "alice", Email: "alice@b.c", Password: "secret",
				}).Return(&model.User{ID: 1, Username: "alice", Email: "alice@b.c"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "duplicate email",
			body: `{"username":"alice","email":"alice@b.c","password":"secret"}`,
			mocks: func(auth *auth_service_mock.Service) {
				auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, custom_errors.ErrEmailAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid email",
			body:       `{"username":"alice","email":"not-an-email","password":"secret"}`,
			mocks:      func(auth *auth_service_mock.Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{`,
			mocks:      func(auth *auth_service_mock.Service) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _, _, router := setupUserHandler(t)
			tt.mocks(auth)

			req := httptest.NewRequest(http.MethodPost, "/registerUser", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mocks      func(auth *auth_service_mock.Service)
		wantStatus int
	}{
		{
			name: "successful login",
			body: `{"email":"alice@b.c","password":"secret"}`,
			mocks: func(auth *auth_service_mock.Service) {
				auth.On("Login", mock.Anything, "alice@b.c", "secret").
					Return(&model.User{ID: 1, Email: "alice@b.c"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"alice@b.c","password":"wrong"}`,
			mocks: func(auth *auth_service_mock.Service) {
				auth.On("Login", mock.Anything, "alice@b.c", "wrong").
					Return(nil, custom_errors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			body: `{"email":"missing@b.c","password":"secret"}`,
			mocks: func(auth *auth_service_mock.Service) {
				auth.On("Login", mock.Anything, "missing@b.c", "secret").
					Return(nil, custom_errors.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _, _, router := setupUserHandler(t)
			tt.mocks(auth)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Login_WrongPasswordMessage(t *testing.T) {
	auth, _, _, router := setupUserHandler(t)

	auth.On("Login", mock.Anything, "alice@b.c", "wrong").
		Return(nil, custom_errors.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"alice@b.c","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect password")
}

func TestHandler_Logout(t *testing.T) {
	_, _, _, router := setupUserHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestHandler_UpdateProfile(t *testing.T) {
	t.Run("with avatar", func(t *testing.T) {
		_, profile, metricsProvider, router := setupUserHandler(t)

		profile.On("UpdateProfile", mock.Anything, "alice@b.c", mock.MatchedBy(func(u *model.UpdateProfileDTO) bool {
			if u.Username != "alice2" || u.Password != "secret" || u.Avatar == nil {
				return false
			}
			content, err := io.ReadAll(u.Avatar.Content)
			return err == nil && string(content) == "img-bytes" && u.Avatar.FileName == "pic.png"
		})).Return(&model.User{ID: 1, Username: "alice2", Email: "alice@b.c"}, nil)
		metricsProvider.On("IncrementProfileUpdates", true)

		body, contentType := multipartProfileBody(t, "alice2", "secret", []byte("img-bytes"), "pic.png")
		req := httptest.NewRequest(http.MethodPut, "/updateUserProfile/alice@b.c", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			User *model.User `json:"user"`
			Msg  string      `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Updated.", resp.Msg)
		assert.Equal(t, "alice2", resp.User.Username)
	})

	t.Run("without avatar", func(t *testing.T) {
		_, profile, metricsProvider, router := setupUserHandler(t)

		profile.On("UpdateProfile", mock.Anything, "alice@b.c", mock.MatchedBy(func(u *model.UpdateProfileDTO) bool {
			return u.Username == "alice2" && u.Password == "secret" && u.Avatar == nil
		})).Return(&model.User{ID: 1, Username: "alice2", Email: "alice@b.c"}, nil)
		metricsProvider.On("IncrementProfileUpdates", true)

		body, contentType := multipartProfileBody(t, "alice2", "secret", nil, "")
		req := httptest.NewRequest(http.MethodPut, "/updateUserProfile/alice@b.c", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, profile, metricsProvider, router := setupUserHandler(t)

		profile.On("UpdateProfile", mock.Anything, "missing@b.c", mock.Anything).
			Return(nil, custom_errors.ErrUserNotFound)
		metricsProvider.On("IncrementProfileUpdates", false)

		body, contentType := multipartProfileBody(t, "alice2", "secret", nil, "")
		req := httptest.NewRequest(http.MethodPut, "/updateUserProfile/missing@b.c", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		_, _, metricsProvider, router := setupUserHandler(t)

		metricsProvider.On("IncrementProfileUpdates", false)

		req := httptest.NewRequest(http.MethodPut, "/updateUserProfile/alice@b.c", strings.NewReader(`{"username":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
