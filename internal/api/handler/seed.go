package handler

import (
	"fmt"
	"net/http"

	"github.com/mcoot/volleydraft-go/internal/api/response"
	"github.com/mcoot/volleydraft-go/internal/services/seed"
)

// SeedHandler handles catalog seeding
type SeedHandler struct {
	seedService *seed.Service
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *seed.Service) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// Seed handles POST /api/v1/seed-players
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.Seed(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	msg := fmt.Sprintf("Successfully seeded %d players", result.Created)
	if result.Existing > 0 {
		msg = fmt.Sprintf("Players already seeded (%d players exist)", result.Existing)
	}
	response.JSON(w, http.StatusOK, response.SeedResponse{Message: msg})
}
