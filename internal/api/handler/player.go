package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/volleydraft-go/internal/api/response"
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/services/catalog"
)

// PlayerHandler handles player catalog endpoints
type PlayerHandler struct {
	catalogService *catalog.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(catalogService *catalog.Service) *PlayerHandler {
	return &PlayerHandler{
		catalogService: catalogService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.PlayerFilter{
		Position: model.Position(q.Get("position")),
		Search:   q.Get("search"),
		SortBy:   model.SortKey(q.Get("sortBy")),
	}

	players, err := h.catalogService.ListPlayers(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Player, len(players))
	for i, p := range players {
		resp[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.catalogService.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
