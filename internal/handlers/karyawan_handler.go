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

type KaryawanHandler struct {
	Service    *services.KaryawanService
	LogService *services.LogActivityService
}

func NewKaryawanHandler(s *services.KaryawanService, logService *services.LogActivityService) *KaryawanHandler {
	return &KaryawanHandler{Service: s, LogService: logService}
}

func (h *KaryawanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateKaryawanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	k, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "create_karyawan",
			strPtr(fmt.Sprintf("created karyawan %s", k.NamaKaryawan)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusCreated, "Karyawan created", k)
}

func (h *KaryawanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid karyawan id", "")
		return
	}

	k, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Karyawan retrieved", k)
}

func (h *KaryawanHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	f := models.KaryawanFilter{
		Search:  r.URL.Query().Get("search"),
		Jabatan: r.URL.Query().Get("jabatan"),
		Page:    page,
		Limit:   limit,
	}
	if v := r.URL.Query().Get("statusAktif"); v != "" {
		active := v == "true"
		f.StatusAktif = &active
	}

	karyawan, total, err := h.Service.List(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Karyawan retrieved", utils.Paginated{
		Data:       karyawan,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *KaryawanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid karyawan id", "")
		return
	}

	var patch models.KaryawanPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	k, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "update_karyawan",
			strPtr(fmt.Sprintf("updated karyawan %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Karyawan updated", k)
}

// Delete soft-deletes: the employee is marked inactive but the row stays.
func (h *KaryawanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid karyawan id", "")
		return
	}

	if err := h.Service.Deactivate(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "deactivate_karyawan",
			strPtr(fmt.Sprintf("deactivated karyawan %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Karyawan deactivated", nil)
}
