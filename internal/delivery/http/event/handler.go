package event_handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/delivery/http/response"
	"eventsphere-api/internal/logger"
	"eventsphere-api/internal/model"
	event_service "eventsphere-api/internal/service/event"
)

type Handler struct {
	events   event_service.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewHandler(events event_service.Service, validate *validator.Validate, log *logger.Logger) *Handler {
	return &Handler{events: events, validate: validate, log: log}
}

type createEventRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	Date         string  `json:"date" validate:"required"`
	Time         string  `json:"time" validate:"required"`
	LocationName *string `json:"locationName"`
	IsPublic     bool    `json:"isPublic"`
}

type eventResponse struct {
	Event *model.Event `json:"event"`
	Msg   string       `json:"msg"`
}

func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	event, err := h.events.CreateEvent(r.Context(), &model.CreateEventDTO{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		LocationName: req.LocationName,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, eventResponse{Event: event, Msg: "Event Added."})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListEvents(r.Context())
	if err != nil {
		response.WriteError(w, err)
		return
	}
	if events == nil {
		events = []*model.Event{}
	}

	response.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	event, err := h.events.GetEventByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteError(w, custom_errors.ErrInvalidInput)
		return
	}

	if err := h.events.DeleteEvent(r.Context(), id); err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
