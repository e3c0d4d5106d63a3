package handlers

import (
	"net/http"

	"apotek-backend/internal/middleware"
	"apotek-backend/internal/services"
	"apotek-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PermissionHandler struct {
	Service *services.PermissionService
}

func NewPermissionHandler(s *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{Service: s}
}

func (h *PermissionHandler) List(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Service.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Permissions retrieved", perms)
}

func (h *PermissionHandler) ByRole(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	perms, err := h.Service.ByRole(r.Context(), role)
	if err != nil {
		writeErr(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Role permissions retrieved", perms)
}

// ForActor returns the permissions of the calling user's own role.
func (h *PermissionHandler) ForActor(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	perms, err := h.Service.ByRole(r.Context(), role)
	if err != nil {
		writeErr(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Permissions retrieved", perms)
}
