package catalog

import (
	"context"

	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/storage"
)

// DefaultListLimit caps catalog listings when the caller does not ask for one
const DefaultListLimit = 100

// Service provides read access to the player catalog
type Service struct {
	storage storage.Storage
}

// New creates a new CatalogService
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// ListPlayers returns catalog players matching the filter. A non-positive
// limit falls back to DefaultListLimit; unknown sort keys sort by name.
func (s *Service) ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.SortBy != model.SortByCreditCost {
		filter.SortBy = model.SortByName
	}
	return s.storage.ListPlayers(ctx, filter)
}

// GetPlayer retrieves a single catalog player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ResolvePlayers fetches the given ids and returns the players keyed by id.
// Ids not present in the catalog are simply absent from the result; callers
// decide whether a missing entry is an error.
func (s *Service) ResolvePlayers(ctx context.Context, ids []model.PlayerID) (map[model.PlayerID]*model.Player, error) {
	if len(ids) == 0 {
		return map[model.PlayerID]*model.Player{}, nil
	}

	// De-duplicate so storage sees each id once
	seen := make(map[model.PlayerID]struct{}, len(ids))
	unique := make([]model.PlayerID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	players, err := s.storage.GetPlayersByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	resolved := make(map[model.PlayerID]*model.Player, len(players))
	for _, p := range players {
		resolved[p.ID] = p
	}
	return resolved, nil
}

// CountPlayers returns the number of players in the catalog
func (s *Service) CountPlayers(ctx context.Context) (int, error) {
	return s.storage.CountPlayers(ctx)
}

// Interface for dependency injection
type ServiceInterface interface {
	ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ResolvePlayers(ctx context.Context, ids []model.PlayerID) (map[model.PlayerID]*model.Player, error)
	CountPlayers(ctx context.Context) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
