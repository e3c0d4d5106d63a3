package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"apotek-backend/internal/metrics"
	"apotek-backend/internal/middleware"
	"apotek-backend/internal/models"
	"apotek-backend/internal/services"
	"apotek-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type TransaksiKeluarHandler struct {
	Service    *services.TransaksiKeluarService
	LogService *services.LogActivityService
}

func NewTransaksiKeluarHandler(s *services.TransaksiKeluarService, logService *services.LogActivityService) *TransaksiKeluarHandler {
	return &TransaksiKeluarHandler{Service: s, LogService: logService}
}

func (h *TransaksiKeluarHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req models.CreateTransaksiKeluarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	t, err := h.Service.Create(r.Context(), actorID, &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	metrics.TransaksiCreatedTotal.WithLabelValues("keluar").Inc()

	h.LogService.RecordAsync(&actorID, "create_transaksi_keluar",
		strPtr(fmt.Sprintf("created transaksi keluar %d to %s", t.IDTransaksiKeluar, t.Tujuan)),
		strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusCreated, "Transaksi keluar created", t)
}

func (h *TransaksiKeluarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}

	t, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Transaksi keluar retrieved", t)
}

func (h *TransaksiKeluarHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	startDate, err := parseDateParam(r, "startDate")
	if err != nil {
		writeErr(w, err)
		return
	}
	endDate, err := parseDateParam(r, "endDate")
	if err != nil {
		writeErr(w, err)
		return
	}

	f := models.TransaksiKeluarFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Tujuan:    r.URL.Query().Get("tujuan"),
		Page:      page,
		Limit:     limit,
	}

	list, total, err := h.Service.List(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Transaksi keluar retrieved", utils.Paginated{
		Data:       list,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *TransaksiKeluarHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}

	var patch models.TransaksiKeluarPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	t, err := h.Service.UpdateHeader(r.Context(), id, patch)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "update_transaksi_keluar",
			strPtr(fmt.Sprintf("updated transaksi keluar %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Transaksi keluar updated", t)
}

func (h *TransaksiKeluarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "delete_transaksi_keluar",
			strPtr(fmt.Sprintf("deleted transaksi keluar %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Transaksi keluar deleted", nil)
}

func (h *TransaksiKeluarHandler) AddDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}

	var req models.CreateDetailKeluarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	d, err := h.Service.AddDetail(r.Context(), id, &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusCreated, "Detail added", d)
}

func (h *TransaksiKeluarHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}
	detailID, err := strconv.Atoi(vars["detailId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid detail id", "")
		return
	}

	var patch models.DetailKeluarPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	d, err := h.Service.UpdateDetail(r.Context(), id, detailID, patch)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Detail updated", d)
}

func (h *TransaksiKeluarHandler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}
	detailID, err := strconv.Atoi(vars["detailId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid detail id", "")
		return
	}

	if err := h.Service.DeleteDetail(r.Context(), id, detailID); err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Detail deleted", nil)
}
