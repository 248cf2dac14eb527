package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/volleydraft-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:           "p_1",
		Name:         "Zara Quinn",
		JerseyNumber: 7,
		Position:     model.PositionSetter,
		TeamName:     "Phoenix Fire",
		CreditCost:   15,
		Stats:        model.PlayerStats{Matches: 120, KillsPerSet: 3.2},
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "p_1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Stats, retrieved.Stats)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayersBatch() {
	players := []*model.Player{
		{ID: "p_1", Name: "Zara Quinn", Position: model.PositionSetter},
		{ID: "p_2", Name: "Ana Silva", Position: model.PositionLibero},
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	count, err := s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestGetPlayersByIDsOmitsMissing() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_1", Name: "Zara Quinn"})

	players, err := s.storage.GetPlayersByIDs(s.ctx, []model.PlayerID{"p_1", "p_ghost"})
	s.Require().NoError(err)

	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("p_1"), players[0].ID)
}

func (s *StorageSuite) TestListPlayersFiltersAndSorts() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_1", Name: "Zara Quinn", Position: model.PositionSetter, CreditCost: 15})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_2", Name: "Ana Silva", Position: model.PositionLibero, CreditCost: 10})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_3", Name: "Kai Tanaka", Position: model.PositionSetter, CreditCost: 18})

	setters, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{Position: model.PositionSetter})
	s.Require().NoError(err)
	s.Len(setters, 2)

	byCost, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{SortBy: model.SortByCreditCost})
	s.Require().NoError(err)
	s.Require().Len(byCost, 3)
	s.Equal(10, byCost[0].CreditCost)

	searched, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{Search: "SILVA"})
	s.Require().NoError(err)
	s.Require().Len(searched, 1)
	s.Equal("Ana Silva", searched[0].Name)
}

func (s *StorageSuite) TestDeletePlayerRemovesFromIndex() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_1", Name: "Zara Quinn"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_2", Name: "Ana Silva"})

	err := s.storage.DeletePlayer(s.ctx, "p_1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "p_1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Len(players, 1)

	count, err := s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.Email, retrieved.Email)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmail() {
	user := &model.User{
		ID:    "user-1",
		Email: "alice@example.com",
		Name:  "Alice",
	}
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetUserByEmailNotFound() {
	_, err := s.storage.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Roster tests

func (s *StorageSuite) testRoster(ownerID model.UserID) *model.Roster {
	return &model.Roster{
		OwnerID: ownerID,
		Slots: map[model.Position]model.PlayerID{
			model.PositionSetter:              "p_s",
			model.PositionOutsideHitter:       "p_oh",
			model.PositionOppositeHitter:      "p_opp",
			model.PositionMiddleBlocker:       "p_mb",
			model.PositionLibero:              "p_l",
			model.PositionDefensiveSpecialist: "p_ds",
		},
		CreditsUsed: 83,
		Remaining:   17,
		UpdatedAt:   time.Now().UTC(),
	}
}

func (s *StorageSuite) TestUpsertAndGetRoster() {
	roster := s.testRoster("user-1")

	err := s.storage.UpsertRoster(s.ctx, roster)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoster(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(roster.Slots, retrieved.Slots)
	s.Equal(83, retrieved.CreditsUsed)
}

func (s *StorageSuite) TestGetRosterNotFound() {
	_, err := s.storage.GetRoster(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRosterNotFound)
}

func (s *StorageSuite) TestUpsertRosterReplacesWholeValue() {
	_ = s.storage.UpsertRoster(s.ctx, s.testRoster("user-1"))

	updated := s.testRoster("user-1")
	updated.Slots[model.PositionSetter] = "p_s2"
	updated.CreditsUsed = 88
	updated.Remaining = 12

	err := s.storage.UpsertRoster(s.ctx, updated)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoster(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p_s2"), retrieved.Slots[model.PositionSetter])
	s.Equal(88, retrieved.CreditsUsed)
}

func (s *StorageSuite) TestRosterHasNoTTL() {
	_ = s.storage.UpsertRoster(s.ctx, s.testRoster("user-1"))

	ttl := s.mini.TTL(rosterKey("user-1"))
	s.Equal(time.Duration(0), ttl)
}
