package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"apotek-backend/internal/models"
	"apotek-backend/internal/services"
	"apotek-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LogActivityHandler struct {
	Service *services.LogActivityService
}

func NewLogActivityHandler(s *services.LogActivityService) *LogActivityHandler {
	return &LogActivityHandler{Service: s}
}

func (h *LogActivityHandler) List(w http.ResponseWriter, r *http.Request) {
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

	f := models.LogFilter{
		Aksi:      r.URL.Query().Get("aksi"),
		IPAddress: r.URL.Query().Get("ipAddress"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      page,
		Limit:     limit,
	}
	if v := r.URL.Query().Get("userId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "userId must be a number", "")
			return
		}
		f.IDUser = &id
	}

	logs, total, err := h.Service.List(r.Context(), f)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Logs retrieved", utils.Paginated{
		Data:       logs,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

// Create records a manual audit entry. The automatic entries go through
// RecordAsync inside the other handlers; this endpoint is the explicit path.
func (h *LogActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if req.IPAddress == nil {
		req.IPAddress = strPtr(getIPAddress(r))
	}

	l, err := h.Service.Record(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusCreated, "Log recorded", l)
}

func (h *LogActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid log id", "")
		return
	}

	l, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Log retrieved", l)
}

func (h *LogActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	term := r.URL.Query().Get("q")

	logs, total, err := h.Service.Search(r.Context(), term, page, limit)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Logs retrieved", utils.Paginated{
		Data:       logs,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *LogActivityHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid user id", "")
		return
	}

	page, limit := parsePagination(r)
	logs, total, err := h.Service.ByUser(r.Context(), userID, page, limit)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Logs retrieved", utils.Paginated{
		Data:       logs,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func (h *LogActivityHandler) Statistics(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.Service.Statistics(r.Context(), startDate, endDate)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Statistics retrieved", stats)
}

// Cleanup purges records older than daysOld days.
func (h *LogActivityHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("daysOld"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "daysOld must be a number", "")
		return
	}

	count, err := h.Service.Purge(r.Context(), days)
	if err != nil {
		writeErr(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Old logs removed", map[string]int{"deleted": count})
}
