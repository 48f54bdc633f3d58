package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gssb-library-backend/internal/service"
)

// CheckoutHandler exposes the fee operations on the checkout and history
// datasets
type CheckoutHandler struct {
	svc   service.CheckoutService
	clock service.Clock
}

func NewCheckoutHandler(svc service.CheckoutService, clock service.Clock) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, clock: clock}
}

type updateFeesRequest struct {
	Date string `json:"date"` // yyyy-mm-dd, defaults to today
}

func (h *CheckoutHandler) UpdateFees(w http.ResponseWriter, r *http.Request) {
	var req updateFeesRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	asOf := h.clock.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid date"})
			return
		}
		asOf = parsed
	}

	count, err := h.svc.UpdateFees(r.Context(), asOf)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": count})
}

func (h *CheckoutHandler) PayCheckoutFee(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.PayCheckoutFee(r.Context(), mux.Vars(r)["barcode"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CheckoutHandler) PayHistoryFee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid history id"})
		return
	}
	if err := h.svc.PayHistoryFee(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
