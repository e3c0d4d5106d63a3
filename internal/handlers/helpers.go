package handlers

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"apotek-backend/internal/apperr"
	"apotek-backend/pkg/utils"
)

var production bool

// SetProduction controls whether internal error detail is echoed to clients.
func SetProduction(p bool) {
	production = p
}

// writeErr maps an error to its HTTP status and writes the envelope.
// Internal detail is suppressed in production for 5xx responses.
func writeErr(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	message := err.Error()
	detail := ""

	if status == http.StatusInternalServerError {
		detail = err.Error()
		message = "Internal server error"
		if production {
			detail = ""
		}
	}

	utils.Error(w, status, message, detail)
}

// parsePagination reads page/limit query params with sane defaults.
func parsePagination(r *http.Request) (page, limit int) {
	page = 1
	limit = 10

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	return page, limit
}

// parseDateParam parses a yyyy-mm-dd query param, nil when absent.
func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, apperr.BadRequest("%s must be in yyyy-mm-dd format", name)
	}
	return &t, nil
}

// getIPAddress extracts the client address, honoring X-Forwarded-For when a
// proxy sits in front.
func getIPAddress(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func strPtr(s string) *string {
	return &s
}
