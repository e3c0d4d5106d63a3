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

type TransaksiMasukHandler struct {
	Service    *services.TransaksiMasukService
	LogService *services.LogActivityService
}

func NewTransaksiMasukHandler(s *services.TransaksiMasukService, logService *services.LogActivityService) *TransaksiMasukHandler {
	return &TransaksiMasukHandler{Service: s, LogService: logService}
}

func (h *TransaksiMasukHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req models.CreateTransaksiMasukRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	t, err := h.Service.Create(r.Context(), actorID, &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	metrics.TransaksiCreatedTotal.WithLabelValues("masuk").Inc()

	h.LogService.RecordAsync(&actorID, "create_transaksi_masuk",
		strPtr(fmt.Sprintf("created transaksi masuk %d with %d details", t.IDTransaksiMasuk, len(t.Details))),
		strPtr(getIPAddress(r)))

	utils.Success(w, http.StatusCreated, "Transaksi masuk created", t)
}

func (h *TransaksiMasukHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	utils.Success(w, http.StatusOK, "Transaksi masuk retrieved", t)
}

func (h *TransaksiMasukHandler) List(w http.ResponseWriter, r *http.Request) {
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

	f := models.TransaksiMasukFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Page:      page,
		Limit:     limit,
	}
	if v := r.URL.Query().Get("idSupplier"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "idSupplier must be a number", "")
			return
		}
		f.IDSupplier = &id
	}

	list, total, err := h.Service.List(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Transaksi masuk retrieved", utils.Paginated{
		Data:       list,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *TransaksiMasukHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}

	var patch models.TransaksiMasukPatch
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
		h.LogService.RecordAsync(&actorID, "update_transaksi_masuk",
			strPtr(fmt.Sprintf("updated transaksi masuk %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Transaksi masuk updated", t)
}

func (h *TransaksiMasukHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		h.LogService.RecordAsync(&actorID, "delete_transaksi_masuk",
			strPtr(fmt.Sprintf("deleted transaksi masuk %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Transaksi masuk deleted", nil)
}

func (h *TransaksiMasukHandler) AddDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid transaksi id", "")
		return
	}

	var req models.CreateDetailMasukRequest
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

func (h *TransaksiMasukHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
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

	var patch models.DetailMasukPatch
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

func (h *TransaksiMasukHandler) DeleteDetail(w http.ResponseWriter, r *http.Request) {
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
