package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"calendo/internal/api/middleware"
	"calendo/internal/app/service"
	"calendo/internal/common"
	"calendo/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type CalendarHandler struct {
	calendarService *service.CalendarService
}

func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// RegisterRoutes: the public list excludes hidden calendars; everything else
// is role guarded.
func (h *CalendarHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)

		protected.With(middleware.AdminOnly).Get("/all-admin", h.listAdmin)
		protected.With(middleware.RequireRoles(model.RoleAdmin, model.RoleStaff)).Post("/", h.create)
		protected.With(middleware.RequireRoles(model.RoleAdmin, model.RoleStaff)).Put("/{id}", h.update)
		protected.With(middleware.AdminOnly).Delete("/{id}", h.delete)
		protected.With(middleware.AdminOnly).Post("/hide/{id}", h.hide)
	})
}

func (h *CalendarHandler) list(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.calendarService.List(r.Context(), false)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, calendars)
}

func (h *CalendarHandler) listAdmin(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.calendarService.List(r.Context(), true)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, calendars)
}

func (h *CalendarHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.CalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	calendar, err := h.calendarService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, calendar)
}

func (h *CalendarHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req service.CalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	calendar, err := h.calendarService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, calendar)
}

func (h *CalendarHandler) hide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	calendar, err := h.calendarService.Hide(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, calendar)
}

func (h *CalendarHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.calendarService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
