package memory

import (
	"context"
	"sync"

	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players    map[model.PlayerID]*model.Player
	users      map[model.UserID]*model.User
	emailIndex map[string]model.UserID
	rosters    map[model.UserID]*model.Roster
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:    make(map[model.PlayerID]*model.Player),
		users:      make(map[model.UserID]*model.User),
		emailIndex: make(map[string]model.UserID),
		rosters:    make(map[model.UserID]*model.Roster),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player catalog operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range players {
		s.players[p.ID] = p
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayersByIDs(ctx context.Context, ids []model.PlayerID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		if player, ok := s.players[id]; ok {
			players = append(players, player)
		}
	}
	return players, nil
}

func (s *Storage) ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error) {
	s.mu.RLock()
	all := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		all = append(all, p)
	}
	s.mu.RUnlock()
	return storage.ApplyPlayerFilter(all, filter), nil
}

func (s *Storage) CountPlayers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.emailIndex[user.Email] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Roster operations

func (s *Storage) UpsertRoster(ctx context.Context, roster *model.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Whole-row replacement under the lock: readers see the old roster
	// or the new one, never a mix.
	s.rosters[roster.OwnerID] = roster
	return nil
}

func (s *Storage) GetRoster(ctx context.Context, ownerID model.UserID) (*model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roster, ok := s.rosters[ownerID]
	if !ok {
		return nil, model.ErrRosterNotFound
	}
	return roster, nil
}
