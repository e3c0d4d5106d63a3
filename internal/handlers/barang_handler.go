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

type BarangHandler struct {
	Service    *services.BarangService
	LogService *services.LogActivityService
}

func NewBarangHandler(s *services.BarangService, logService *services.LogActivityService) *BarangHandler {
	return &BarangHandler{Service: s, LogService: logService}
}

func (h *BarangHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBarangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	b, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "create_barang",
			strPtr(fmt.Sprintf("created barang %s", b.NamaBarang)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusCreated, "Barang created", b)
}

func (h *BarangHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid barang id", "")
		return
	}

	b, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Barang retrieved", b)
}

func (h *BarangHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	f := models.BarangFilter{
		Search: r.URL.Query().Get("search"),
		Jenis:  r.URL.Query().Get("jenis"),
		Satuan: r.URL.Query().Get("satuan"),
		Page:   page,
		Limit:  limit,
	}

	items, total, err := h.Service.List(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Barang retrieved", utils.Paginated{
		Data:       items,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *BarangHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid barang id", "")
		return
	}

	var patch models.BarangPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	b, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "update_barang",
			strPtr(fmt.Sprintf("updated barang %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Barang updated", b)
}

func (h *BarangHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid barang id", "")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "delete_barang",
			strPtr(fmt.Sprintf("deleted barang %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Barang deleted", nil)
}
