package handler

import (
	"encoding/json"
	"net/http"

	"calendo/internal/api/middleware"
	"calendo/internal/app/service"
	"calendo/internal/common"
	"calendo/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.With(middleware.RequireRoles(model.RoleAdmin, model.RoleStaff, model.RoleUser)).Get("/", h.list)
	r.With(middleware.RequireRoles(model.RoleAdmin, model.RoleStaff)).Post("/", h.create)
	r.With(middleware.RequireRoles(model.RoleAdmin, model.RoleStaff)).Put("/{id}", h.update)
	r.With(middleware.AdminOnly).Delete("/{id}", h.delete)
}

func (h *EventHandler) list(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, events)
}

func (h *EventHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	event, err := h.eventService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req service.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	event, err := h.eventService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.eventService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}
