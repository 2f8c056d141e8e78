package post_handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/delivery/http/response"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/metrics"
	"eventsphere-api/internal/model"
	engagement_service "eventsphere-api/internal/service/engagement"
	feed_service "eventsphere-api/internal/service/feed"
)

const (
	msgPostLiked   = "Post liked."
	msgPostUnliked = "Post unliked."
	msgPostAdded   = "Added."
)

type Handler struct {
	engagement engagement_service.Service
	feed       feed_service.Service
	validate   *validator.Validate
	log        *logger.Logger
	metrics    metrics.MetricsProvider
}

func NewHandler(
	engagement engagement_service.Service,
	feed feed_service.Service,
	validate *validator.Validate,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) *Handler {
	return &Handler{
		engagement: engagement,
		feed:       feed,
		validate:   validate,
		log:        log,
		metrics:    metricsProvider,
	}
}

type toggleLikeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type postResponse struct {
	Post *model.Post `json:"post"`
	Msg  string      `json:"msg"`
}

type feedResponse struct {
	Posts []*model.Post `json:"posts"`
	Count int           `json:"count"`
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	var req toggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	post, liked, err := h.engagement.ToggleLike(r.Context(), postID, req.UserID)
	if err != nil {
		h.metrics.IncrementLikeToggles("unknown", false)
		response.WriteError(w, err)
		return
	}

	msg := msgPostUnliked
	outcome := "unliked"
	if liked {
		msg = msgPostLiked
		outcome = "liked"
	}
	h.metrics.IncrementLikeToggles(outcome, true)

	h.log.Debug("Like toggled",
		slog.Int64("post_id", post.ID),
		slog.String("outcome", outcome))

	response.WriteJSON(w, http.StatusOK, postResponse{Post: post, Msg: msg})
}

func (h *Handler) SavePost(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	post, err := h.feed.SavePost(r.Context(), &req)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, postResponse{Post: post, Msg: msgPostAdded})
}

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, count, err := h.feed.ListPosts(r.Context())
	if err != nil {
		response.WriteError(w, err)
		return
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	response.WriteJSON(w, http.StatusOK, feedResponse{Posts: posts, Count: count})
}
