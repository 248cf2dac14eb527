package roster

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/volleydraft-go/internal/dependencies/clock"
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/services/catalog"
	"github.com/mcoot/volleydraft-go/internal/storage"
)

// Service manages roster validation, saving, and display resolution
type Service struct {
	storage storage.Storage
	catalog *catalog.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new RosterService
func New(
	storage storage.Storage,
	catalog *catalog.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		catalog: catalog,
		clock:   clock,
		logger:  logger,
	}
}

// ValidatedRoster pairs a checked assignment with its resolved players
// and total credit cost
type ValidatedRoster struct {
	Players map[model.Position]*model.Player
	Total   int
}

// ValidateAndCost checks an assignment for completeness, catalog membership,
// and budget, in that order, stopping at the first failure. The same player
// id in several slots is allowed and its cost counts once per slot.
func (s *Service) ValidateAndCost(ctx context.Context, assignment model.RosterAssignment) (*ValidatedRoster, error) {
	if missing := assignment.MissingSlots(); missing > 0 {
		return nil, &model.IncompleteRosterError{Missing: missing}
	}

	ids := make([]model.PlayerID, 0, len(model.Positions()))
	for _, pos := range model.Positions() {
		ids = append(ids, assignment[pos])
	}

	resolved, err := s.catalog.ResolvePlayers(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Collect unresolved ids in slot order, each reported once
	var unknown []model.PlayerID
	seen := make(map[model.PlayerID]struct{})
	for _, id := range ids {
		if _, ok := resolved[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unknown = append(unknown, id)
	}
	if len(unknown) > 0 {
		return nil, &model.UnknownPlayerError{IDs: unknown}
	}

	players := make(map[model.Position]*model.Player, len(ids))
	total := 0
	for _, pos := range model.Positions() {
		p := resolved[assignment[pos]]
		players[pos] = p
		total += p.CreditCost
	}

	if total > model.Budget {
		return nil, &model.BudgetExceededError{Total: total}
	}

	return &ValidatedRoster{Players: players, Total: total}, nil
}

// Save validates the assignment and replaces the owner's stored roster.
// Concurrent saves for the same owner resolve to whichever write lands last.
func (s *Service) Save(ctx context.Context, ownerID model.UserID, assignment model.RosterAssignment) (*model.Roster, error) {
	validated, err := s.ValidateAndCost(ctx, assignment)
	if err != nil {
		return nil, err
	}

	slots := make(map[model.Position]model.PlayerID, len(model.Positions()))
	for _, pos := range model.Positions() {
		slots[pos] = assignment[pos]
	}

	roster := &model.Roster{
		OwnerID:     ownerID,
		Slots:       slots,
		CreditsUsed: validated.Total,
		Remaining:   model.Budget - validated.Total,
		UpdatedAt:   s.clock.Now(),
	}

	if err := s.storage.UpsertRoster(ctx, roster); err != nil {
		s.logger.Error("failed to save roster",
			slog.String("owner_id", string(ownerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("roster saved",
		slog.String("owner_id", string(ownerID)),
		slog.Int("credits_used", roster.CreditsUsed),
		slog.Int("remaining", roster.Remaining),
	)

	return roster, nil
}

// Load returns the owner's roster resolved for display. An owner who never
// saved gets the empty default view with the full budget. Slot ids that no
// longer resolve in the catalog are shown as empty slots; the stored credit
// totals are returned as saved, not recomputed.
func (s *Service) Load(ctx context.Context, ownerID model.UserID) (*model.RosterView, error) {
	stored, err := s.storage.GetRoster(ctx, ownerID)
	if err != nil {
		if errors.Is(err, model.ErrRosterNotFound) {
			return emptyView(), nil
		}
		return nil, err
	}

	ids := make([]model.PlayerID, 0, len(stored.Slots))
	for _, id := range stored.Slots {
		if id != "" {
			ids = append(ids, id)
		}
	}

	resolved, err := s.catalog.ResolvePlayers(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &model.RosterView{
		Slots:       make(map[model.Position]*model.Player, len(model.Positions())),
		CreditsUsed: stored.CreditsUsed,
		Remaining:   stored.Remaining,
	}
	for _, pos := range model.Positions() {
		view.Slots[pos] = resolved[stored.Slots[pos]]
	}
	return view, nil
}

func emptyView() *model.RosterView {
	view := &model.RosterView{
		Slots:       make(map[model.Position]*model.Player, len(model.Positions())),
		CreditsUsed: 0,
		Remaining:   model.Budget,
	}
	for _, pos := range model.Positions() {
		view.Slots[pos] = nil
	}
	return view
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidateAndCost(ctx context.Context, assignment model.RosterAssignment) (*ValidatedRoster, error)
	Save(ctx context.Context, ownerID model.UserID, assignment model.RosterAssignment) (*model.Roster, error)
	Load(ctx context.Context, ownerID model.UserID) (*model.RosterView, error)
}

var _ ServiceInterface = (*Service)(nil)
