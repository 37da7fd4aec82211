package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/faceoff/internal/adapters/repository"
	"github.com/okian/faceoff/internal/domain/model"
)

// PlayersDependencies defines the interface for the player listing feed.
type PlayersDependencies interface {
	Players(ctx context.Context, prefix string) ([]model.Player, error)
}

// PlayersHandler handles player listing requests, the autocomplete source.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// playerEntry mirrors the read shape returned by player listings.
type playerEntry struct {
	Name          string   `json:"name"`
	Positions     []string `json:"positions"`
	Score         float64  `json:"score"`
	RelativeValue float64  `json:"relative_value"`
}

// HandleGetPlayers handles GET /players?q=prefix requests.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	players, err := h.deps.Players(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, repository.ErrNoRoster) {
			writeError(w, http.StatusConflict, "no_roster", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	entries := make([]playerEntry, len(players))
	for i, p := range players {
		entries[i] = playerEntry{
			Name:          p.Name,
			Positions:     p.Positions,
			Score:         p.Score,
			RelativeValue: p.RelativeValue,
		}
	}
	writeJSON(w, http.StatusOK, entries)
}
