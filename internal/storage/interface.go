package storage

import (
	"context"

	"github.com/mcoot/volleydraft-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player catalog operations
	SavePlayer(ctx context.Context, player *model.Player) error
	SavePlayers(ctx context.Context, players []*model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// GetPlayersByIDs returns the players that exist, silently omitting
	// ids with no catalog record. Callers must compare the result size
	// against the request to detect unresolved ids.
	GetPlayersByIDs(ctx context.Context, ids []model.PlayerID) ([]*model.Player, error)
	ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// Roster operations. UpsertRoster replaces the owner's whole roster
	// row atomically: concurrent saves for one owner are last-write-wins
	// and a reader never sees a mix of old and new slots.
	UpsertRoster(ctx context.Context, roster *model.Roster) error
	GetRoster(ctx context.Context, ownerID model.UserID) (*model.Roster, error)
}
