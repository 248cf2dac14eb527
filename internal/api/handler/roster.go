package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/volleydraft-go/internal/api/middleware"
	"github.com/mcoot/volleydraft-go/internal/api/request"
	"github.com/mcoot/volleydraft-go/internal/api/response"
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/services/roster"
)

// RosterHandler handles roster endpoints
type RosterHandler struct {
	rosterService *roster.Service
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *roster.Service) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// Get handles GET /api/v1/roster
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	view, err := h.rosterService.Load(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromView(view))
}

// Save handles POST /api/v1/roster
func (h *RosterHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SaveRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	assignment := model.RosterAssignment{
		model.PositionSetter:              model.PlayerID(req.Setter),
		model.PositionOutsideHitter:       model.PlayerID(req.OutsideHitter),
		model.PositionOppositeHitter:      model.PlayerID(req.OppositeHitter),
		model.PositionMiddleBlocker:       model.PlayerID(req.MiddleBlocker),
		model.PositionLibero:              model.PlayerID(req.Libero),
		model.PositionDefensiveSpecialist: model.PlayerID(req.DefensiveSpecialist),
	}

	saved, err := h.rosterService.Save(r.Context(), user.ID, assignment)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SaveRosterResponse{
		Message:     "Roster saved successfully",
		CreditsUsed: saved.CreditsUsed,
		Remaining:   saved.Remaining,
	})
}
