// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	service "github.com/okian/faceoff/internal/app"
	"github.com/okian/faceoff/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// IngestRoster replaces the session roster from an uploaded table.
	IngestRoster(ctx context.Context, src io.Reader) (service.RosterSummary, error)

	// Reset discards the session roster.
	Reset(ctx context.Context)

	// Players lists roster members by normalized name prefix.
	Players(ctx context.Context, prefix string) ([]model.Player, error)

	// Compare aggregates the trade sides and computes their verdict.
	Compare(ctx context.Context, sel service.Selections) (*service.Comparison, error)

	// Export renders the plain-text trade report for the selections.
	Export(ctx context.Context, sel service.Selections) (string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	rosterHandler    *RosterHandler
	playersHandler   *PlayersHandler
	compareHandler   *CompareHandler
	exportHandler    *ExportHandler
	dashboardHandler *dashboardHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxUploadBytes bounds roster uploads before parsing is attempted.
func WithMaxUploadBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.rosterHandler.maxUploadBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		rosterHandler:    NewRosterHandler(deps),
		playersHandler:   NewPlayersHandler(deps),
		compareHandler:   NewCompareHandler(deps),
		exportHandler:    NewExportHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/roster", MetricsMiddleware(s.rosterHandler.HandleRoster, "roster"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/compare", MetricsMiddleware(s.compareHandler.HandlePostCompare, "compare"))
	mux.HandleFunc("/export", MetricsMiddleware(s.exportHandler.HandlePostExport, "export"))
}

// compareRequest mirrors the OpenAPI schema for POST /compare and /export.
type compareRequest struct {
	A []string `json:"a"`
	B []string `json:"b"`
	C []string `json:"c,omitempty"`
}

func (c compareRequest) selections() service.Selections {
	return service.Selections{A: c.A, B: c.B, C: c.C}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
