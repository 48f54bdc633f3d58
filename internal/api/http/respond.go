package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gssb-library-backend/internal/domain"
	"gssb-library-backend/internal/entity"
	"gssb-library-backend/internal/logger"
)

type errorBody struct {
	Code     string           `json:"code"`
	Errno    int              `json:"errno,omitempty"`
	Message  string           `json:"message"`
	Checkout *domain.Checkout `json:"checkout,omitempty"`
	Item     *domain.Item     `json:"item,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the closed set of domain errors onto HTTP responses. The
// conflicting checkout or item travels with the body so clients can render a
// useful message.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFound      *domain.NotFoundError
		alreadyOut    *domain.AlreadyCheckedOutError
		notCheckedOut *domain.NotCheckedOutError
		notCirc       *domain.NotCirculatingError
	)
	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorBody{
			Code: string(notFound.Code()), Errno: notFound.Errno(), Message: notFound.Error(),
		})
	case errors.As(err, &alreadyOut):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code: string(alreadyOut.Code()), Errno: alreadyOut.Errno(), Message: alreadyOut.Error(),
			Checkout: alreadyOut.Checkout,
		})
	case errors.As(err, &notCheckedOut):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code: string(notCheckedOut.Code()), Errno: notCheckedOut.Errno(), Message: notCheckedOut.Error(),
		})
	case errors.As(err, &notCirc):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code: string(notCirc.Code()), Errno: notCirc.Errno(), Message: notCirc.Error(),
			Item: notCirc.Item,
		})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code: "INTERNAL", Message: "internal server error",
		})
	}
}

// reserved query parameters that control pagination rather than filtering
var pagingParams = map[string]bool{
	"limit":       true,
	"offset":      true,
	"returnCount": true,
}

// parseQuery splits the request's query parameters into filter criteria and
// pagination options. Unknown filter keys are ignored by the entity store.
func parseQuery(r *http.Request) (entity.Criteria, entity.ReadOptions) {
	q := entity.Criteria{}
	opt := entity.ReadOptions{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		if pagingParams[key] {
			continue
		}
		q[key] = values[0]
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		opt.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		opt.Offset, _ = strconv.Atoi(v)
	}
	opt.ReturnCount = r.URL.Query().Get("returnCount") == "true"
	return q, opt
}

// pageResponse builds the rows/count body of a paginated read. The count is
// present only when the caller asked for it.
func pageResponse(rows any, count int) map[string]any {
	resp := map[string]any{"rows": rows}
	if count >= 0 {
		resp["count"] = count
	}
	return resp
}
