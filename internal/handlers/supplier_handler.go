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

type SupplierHandler struct {
	Service    *services.SupplierService
	LogService *services.LogActivityService
}

func NewSupplierHandler(s *services.SupplierService, logService *services.LogActivityService) *SupplierHandler {
	return &SupplierHandler{Service: s, LogService: logService}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	sup, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "create_supplier",
			strPtr(fmt.Sprintf("created supplier %s", sup.NamaSupplier)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusCreated, "Supplier created", sup)
}

func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid supplier id", "")
		return
	}

	sup, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Supplier retrieved", sup)
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	f := models.SupplierFilter{
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	}

	suppliers, total, err := h.Service.List(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Suppliers retrieved", utils.Paginated{
		Data:       suppliers,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid supplier id", "")
		return
	}

	var patch models.SupplierPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	sup, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "update_supplier",
			strPtr(fmt.Sprintf("updated supplier %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Supplier updated", sup)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid supplier id", "")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}

	if actorID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		h.LogService.RecordAsync(&actorID, "delete_supplier",
			strPtr(fmt.Sprintf("deleted supplier %d", id)), strPtr(getIPAddress(r)))
	}

	utils.Success(w, http.StatusOK, "Supplier deleted", nil)
}
