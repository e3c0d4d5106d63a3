package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"apotek-backend/internal/metrics"
	"apotek-backend/internal/middleware"
	"apotek-backend/internal/models"
	"apotek-backend/internal/services"
	"apotek-backend/pkg/utils"
)

type AuthHandler struct {
	Service    *services.UserService
	LogService *services.LogActivityService
}

func NewAuthHandler(s *services.UserService, logService *services.LogActivityService) *AuthHandler {
	return &AuthHandler{Service: s, LogService: logService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
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

	h.LogService.RecordAsync(&resp.User.ID, "register",
		strPtr(fmt.Sprintf("user %s registered", resp.User.Username)), strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusCreated, "User registered successfully", resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		writeErr(w, err)
		return
	}
	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()

	h.LogService.RecordAsync(&resp.User.ID, "login",
		strPtr(fmt.Sprintf("user %s logged in", resp.User.Username)), strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusOK, "Login successful", resp)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	resp, err := h.Service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Token refreshed", resp)
}

// Logout revokes the refresh token if one is supplied. Always responds 200
// so clients can clear local state unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	// Body is optional here
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.Service.Logout(r.Context(), req.RefreshToken); err != nil {
		writeErr(w, err)
		return
	}

	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&userID, "logout", nil, strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	if err := h.Service.LogoutAll(r.Context(), userID); err != nil {
		writeErr(w, err)
		return
	}

	h.LogService.RecordAsync(&userID, "logout_all", nil, strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusOK, "All sessions revoked", nil)
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	user, err := h.Service.GetProfile(r.Context(), userID)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Profile retrieved", user)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	h.LogService.RecordAsync(&userID, "update_profile", nil, strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusOK, "Profile updated", user)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.Service.ChangePassword(r.Context(), userID, &req); err != nil {
		writeErr(w, err)
		return
	}

	h.LogService.RecordAsync(&userID, "change_password", nil, strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusOK, "Password changed", nil)
}

// CleanupTokens removes dead refresh tokens and reports how many went away.
func (h *AuthHandler) CleanupTokens(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.CleanupTokens(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Expired tokens removed", map[string]int{"deleted": count})
}
