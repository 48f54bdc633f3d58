package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/service"
)

// BorrowerHandler exposes the borrower aggregate over HTTP
type BorrowerHandler struct {
	svc service.BorrowerService
}

func NewBorrowerHandler(svc service.BorrowerService) *BorrowerHandler {
	return &BorrowerHandler{svc: svc}
}

func borrowerNumberVar(r *http.Request) (int32, error) {
	n, err := strconv.ParseInt(mux.Vars(r)["borrowerNumber"], 10, 32)
	return int32(n), err
}

func (h *BorrowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var borrower domain.Borrower
	if err := json.NewDecoder(r.Body).Decode(&borrower); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	created, err := h.svc.Create(r.Context(), &borrower)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BorrowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, err := borrowerNumberVar(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid borrower number"})
		return
	}
	details := domain.BorrowerDetails{
		Items:   r.URL.Query().Get("items") == "true",
		History: r.URL.Query().Get("history") == "true",
		Fees:    r.URL.Query().Get("fees") == "true",
	}
	borrower, err := h.svc.Get(r.Context(), number, details)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, borrower)
}

func (h *BorrowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	number, err := borrowerNumberVar(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid borrower number"})
		return
	}
	var borrower domain.Borrower
	if err := json.NewDecoder(r.Body).Decode(&borrower); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	borrower.BorrowerNumber = number
	if err := h.svc.Update(r.Context(), &borrower); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &borrower)
}

func (h *BorrowerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	number, err := borrowerNumberVar(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid borrower number"})
		return
	}
	if err := h.svc.Delete(r.Context(), number); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *BorrowerHandler) List(w http.ResponseWriter, r *http.Request) {
	q, opt := parseQuery(r)
	borrowers, count, err := h.svc.List(r.Context(), q, opt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse(borrowers, count))
}

func (h *BorrowerHandler) PayFees(w http.ResponseWriter, r *http.Request) {
	number, err := borrowerNumberVar(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid borrower number"})
		return
	}
	if err := h.svc.PayFees(r.Context(), number); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *BorrowerHandler) RenewAllItems(w http.ResponseWriter, r *http.Request) {
	number, err := borrowerNumberVar(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid borrower number"})
		return
	}
	if err := h.svc.RenewAllItems(r.Context(), number); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *BorrowerHandler) AllFees(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.AllFees(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
