package handler

import (
	"encoding/json"
	"net/http"

	"calendo/internal/api/middleware"
	"calendo/internal/app/service"
	"calendo/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes expects to be mounted behind the Authenticator; listing and
// detail are open to any signed-in role, mutations are Admin only.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/change-role", h.changeRole)
		admin.Put("/{id}/disable", h.disable)
		admin.Put("/{id}/enable", h.enable)
		admin.Put("/{id}/lock", h.lock)
		admin.Put("/{id}/unlock", h.unlock)
		admin.Delete("/{id}", h.delete)
	})
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "User not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

type changeRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (h *UserHandler) changeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.userService.ChangeRole(r.Context(), req.UserID, req.Role); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Role changed successfully"})
}

func (h *UserHandler) disable(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "User disabled")
}

func (h *UserHandler) enable(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "User enabled")
}

func (h *UserHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	if err := h.userService.SetActive(r.Context(), chi.URLParam(r, "id"), active); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *UserHandler) lock(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Lock(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User locked"})
}

func (h *UserHandler) unlock(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Unlock(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User unlocked"})
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
