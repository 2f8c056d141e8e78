package user_handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/delivery/http/response"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
	auth_service "eventsphere-api/internal/service/auth"
	profile_service "eventsphere-api/internal/service/profile"
)

// maxAvatarMemory caps the in-memory part of multipart parsing; larger files
// spill to temp storage.
const maxAvatarMemory = 10 << 20

type Handler struct {
	auth     auth_service.Service
	profile  profile_service.Service
	validate *validator.Validate
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewHandler(
	auth auth_service.Service,
	profile profile_service.Service,
	validate *validator.Validate,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) *Handler {
	return &Handler{
		auth:     auth,
		profile:  profile,
		validate: validate,
		log:      log,
		metrics:  metricsProvider,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User *model.User `json:"user"`
	Msg  string      `json:"msg"`
}

type loginResponse struct {
	User    *model.User `json:"user"`
	Message string      `json:"message"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	user, err := h.auth.Register(r.Context(), &model.RegisterUserDTO{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, userResponse{User: user, Msg: "Added."})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, loginResponse{User: user, Message: "Login successful."})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// No server-side session state to tear down.
	response.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// UpdateProfile accepts a multipart form with username, password and an
// optional profilePic file.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		h.log.Debug("Failed to parse profile update form", slog.String("error", err.Error()))
		h.metrics.IncrementProfileUpdates(false)
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	update := &model.UpdateProfileDTO{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	file, header, err := r.FormFile("profilePic")
	switch {
	case err == nil:
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				h.log.Warn("Failed to close uploaded file", slog.String("error", closeErr.Error()))
			}
		}()
		update.Avatar = &model.AvatarUpload{
			FileName: header.Filename,
			Content:  file,
		}
	case errors.Is(err, http.ErrMissingFile):
		h.log.Debug("No avatar file uploaded", slog.String("email", email))
	default:
		h.metrics.IncrementProfileUpdates(false)
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	user, err := h.profile.UpdateProfile(r.Context(), email, update)
	if err != nil {
		h.metrics.IncrementProfileUpdates(false)
		response.WriteError(w, err)
		return
	}
	h.metrics.IncrementProfileUpdates(true)

	response.WriteJSON(w, http.StatusOK, userResponse{User: user, Msg: "Updated."})
}
