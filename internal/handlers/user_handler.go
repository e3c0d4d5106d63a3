package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"apotek-backend/internal/middleware"
	"apotek-backend/internal/models"
	"apotek-backend/internal/services"
	"apotek-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// UserHandler serves the admin-only user management endpoints.
type UserHandler struct {
	Service    *services.UserService
	LogService *services.LogActivityService
}

func NewUserHandler(s *services.UserService, logService *services.LogActivityService) *UserHandler {
	return &UserHandler{Service: s, LogService: logService}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	resp, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "create_user",
			strPtr(fmt.Sprintf("created user %s", resp.User.Username)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusCreated, "User created", resp.User)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid user id", "")
		return
	}

	user, err := h.Service.GetUser(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "User retrieved", user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	f := models.UserFilter{
		Search:          r.URL.Query().Get("search"),
		Role:            r.URL.Query().Get("role"),
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
		Page:            page,
		Limit:           limit,
	}

	users, total, err := h.Service.ListUsers(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Users retrieved", utils.Paginated{
		Data:       users,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid user id", "")
		return
	}

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), id, &patch)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "update_user",
			strPtr(fmt.Sprintf("updated user %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "User updated", user)
}

// DeleteUser deactivates the account; user rows are never hard-deleted.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid user id", "")
		return
	}

	if err := h.Service.DeactivateUser(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "deactivate_user",
			strPtr(fmt.Sprintf("deactivated user %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "User deactivated", nil)
}
