// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	service "github.com/okian/faceoff/internal/app"
	"github.com/okian/faceoff/internal/domain/roster"
	"github.com/okian/faceoff/pkg/metrics"
)

// defaultMaxUploadBytes bounds uploads before any parsing: 5 MB.
const defaultMaxUploadBytes = 5 << 20

// acceptedExtensions lists upload filename extensions admitted to parsing.
var acceptedExtensions = map[string]bool{
	".csv": true,
	".tsv": true,
	".txt": true,
}

// RosterDependencies defines the interface for roster lifecycle operations.
type RosterDependencies interface {
	IngestRoster(ctx context.Context, src io.Reader) (service.RosterSummary, error)
	Reset(ctx context.Context)
}

// RosterHandler handles roster upload and reset requests.
type RosterHandler struct {
	deps           RosterDependencies
	maxUploadBytes int64
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps, maxUploadBytes: defaultMaxUploadBytes}
}

// HandleRoster handles POST /roster (upload) and DELETE /roster (reset).
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleUpload(w, r)
	case http.MethodDelete:
		h.deps.Reset(r.Context())
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

// handleUpload enforces the size and type boundaries before the pipeline
// runs, then ingests the table. Accepts multipart form uploads (field
// "file") and raw delimiter-separated bodies.
func (h *RosterHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_roster"

	if r.ContentLength > h.maxUploadBytes {
		metrics.RecordRosterRejected("size")
		writeError(w, http.StatusRequestEntityTooLarge, "size_limit", NewKind(op, ErrPayloadTooLarge))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	src, filename, err := uploadSource(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			metrics.RecordRosterRejected("size")
			writeError(w, http.StatusRequestEntityTooLarge, "size_limit", WrapKind(op, ErrPayloadTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	defer src.Close()

	if filename != "" && !acceptedExtensions[strings.ToLower(filepath.Ext(filename))] {
		metrics.RecordRosterRejected("type")
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_type", NewKind(op, ErrUnsupportedType))
		return
	}

	summary, err := h.deps.IngestRoster(r.Context(), src)
	if err != nil {
		// The size limit trips inside the pipeline's read when the request
		// carries no Content-Length, so it must be checked before the
		// format kind it arrives wrapped in.
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			metrics.RecordRosterRejected("size")
			writeError(w, http.StatusRequestEntityTooLarge, "size_limit", WrapKind(op, ErrPayloadTooLarge, err))
		case errors.Is(err, roster.ErrFormat):
			writeError(w, http.StatusBadRequest, "bad_format", err)
		case errors.Is(err, roster.ErrValidation):
			writeError(w, http.StatusUnprocessableEntity, "invalid_roster", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

// uploadSource picks the table reader out of the request: the "file" part
// of a multipart form, or the raw body. The returned filename is empty for
// raw bodies, where there is no name to check.
func uploadSource(r *http.Request) (io.ReadCloser, string, error) {
	ct := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "multipart/form-data" {
		return r.Body, "", nil
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	return f, header.Filename, nil
}
