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

type ReminderHandler struct {
	reminderService *service.ReminderService
}

func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

func (h *ReminderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.With(middleware.RequireRoles(model.RoleAdmin, model.RoleStaff)).Post("/", h.create)
		protected.With(middleware.AdminOnly).Delete("/{id}", h.delete)
	})
}

func (h *ReminderHandler) list(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, reminders)
}

func (h *ReminderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	reminder, err := h.reminderService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, reminder)
}

func (h *ReminderHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.reminderService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}
