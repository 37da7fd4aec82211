package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/faceoff/internal/app"
)

// ExportDependencies defines the interface for plain-text report export.
type ExportDependencies interface {
	Export(ctx context.Context, sel service.Selections) (string, error)
}

// ExportHandler handles trade report export requests.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandlePostExport handles POST /export requests. The response is the
// rendered report as an attachment rather than JSON.
func (h *ExportHandler) HandlePostExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_export"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.Export(r.Context(), req.selections())
	if err != nil {
		writeCompareError(w, op, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trade-report.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}
