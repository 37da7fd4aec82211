package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/faceoff/internal/adapters/repository"
	service "github.com/okian/faceoff/internal/app"
)

// CompareDependencies defines the interface for trade comparison.
type CompareDependencies interface {
	Compare(ctx context.Context, sel service.Selections) (*service.Comparison, error)
}

// CompareHandler handles trade comparison requests.
type CompareHandler struct {
	deps CompareDependencies
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// HandlePostCompare handles POST /compare requests.
func (h *CompareHandler) HandlePostCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_compare"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	cmp, err := h.deps.Compare(r.Context(), req.selections())
	if err != nil {
		writeCompareError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// writeCompareError maps comparison failures onto HTTP statuses. Shared with
// the export handler, which runs the same pipeline before rendering.
func writeCompareError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNoRoster):
		writeError(w, http.StatusConflict, "no_roster", err)
	case errors.Is(err, service.ErrGroupTooLarge):
		writeError(w, http.StatusBadRequest, "group_too_large", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
