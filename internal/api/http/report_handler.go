package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gssb-library-backend/internal/service"
)

// ReportHandler exposes the read-only reports
type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) ItemUsage(w http.ResponseWriter, r *http.Request) {
	cutoff := r.URL.Query().Get("lastCheckoutDate")
	before, err := time.Parse("2006-01-02", cutoff)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid or missing lastCheckoutDate"})
		return
	}

	q, _ := parseQuery(r)
	delete(q, "lastCheckoutDate")

	usage, err := h.svc.ItemUsage(r.Context(), q, before)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse(usage, -1))
}

// AntolinHandler exposes the catalog metadata lookup
type AntolinHandler struct {
	svc service.AntolinService
}

func NewAntolinHandler(svc service.AntolinService) *AntolinHandler {
	return &AntolinHandler{svc: svc}
}

func (h *AntolinHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), mux.Vars(r)["isbn13"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
