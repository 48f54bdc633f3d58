package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/service"
)

// ItemHandler exposes the item lifecycle over HTTP
type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	barcode := mux.Vars(r)["barcode"]
	details := domain.ItemDetails{
		History: r.URL.Query().Get("history") == "true",
	}
	item, err := h.svc.Get(r.Context(), barcode, details)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	if err := h.svc.Create(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	item.Barcode = mux.Vars(r)["barcode"]
	if err := h.svc.Update(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["barcode"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q, opt := parseQuery(r)
	items, count, err := h.svc.List(r.Context(), q, opt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse(items, count))
}

type checkoutRequest struct {
	BorrowerNumber int32 `json:"borrowernumber"`
}

func (h *ItemHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}
	result, err := h.svc.Checkout(r.Context(), mux.Vars(r)["barcode"], req.BorrowerNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ItemHandler) Renew(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Renew(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ItemHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Checkin(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
