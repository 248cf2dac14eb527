package seed

import (
	"context"
	"log/slog"

	"github.com/mcoot/volleydraft-go/internal/dependencies/clock"
	"github.com/mcoot/volleydraft-go/internal/dependencies/random"
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/storage"
)

const (
	playerIDLength   = 12
	playerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// maxUniqueAttempts bounds the retry loops for names and jersey
	// numbers; after that the last candidate is used even if taken
	maxUniqueAttempts = 100
)

var teamNames = []string{
	"Phoenix Fire", "Wave Riders", "Thunder Storm",
	"Lightning Bolts", "Sky Hawks", "Ocean Warriors",
}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn", "Blake", "Drew",
	"Cameron", "Sage", "River", "Sky", "Phoenix", "Dakota", "Kai", "Rowan", "Hayden", "Parker",
	"Emerson", "Finley", "Logan", "Peyton", "Reese", "Ryan", "Sawyer", "Spencer", "Tatum", "Wren",
}

var lastNames = []string{
	"Chen", "Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez",
	"Martinez", "Lee", "Kim", "Park", "Patel", "Singh", "Wang", "Liu", "Nguyen", "Anderson",
	"Taylor", "Thomas", "Moore", "Jackson", "Martin", "Thompson", "White", "Harris", "Clark", "Lewis",
}

var bios = []string{
	"A powerful attacker with exceptional court vision and leadership skills.",
	"Known for lightning-fast reflexes and pinpoint serving accuracy.",
	"Brings years of international experience and clutch performance.",
	"Defensive specialist with incredible agility and game-reading ability.",
	"Rising star with explosive jumping ability and powerful spikes.",
	"Veteran player known for consistent performance under pressure.",
	"Technical expert with precise ball control and strategic thinking.",
	"Dynamic all-around player with exceptional versatility.",
}

// Service populates the player catalog with generated players
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	playerCount int
}

// Config holds configuration for the seed service
type Config struct {
	PlayerCount int
}

// DefaultConfig returns default seed configuration
func DefaultConfig() Config {
	return Config{
		PlayerCount: 35,
	}
}

// New creates a new SeedService
func New(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.PlayerCount <= 0 {
		cfg.PlayerCount = DefaultConfig().PlayerCount
	}
	return &Service{
		storage:     storage,
		clock:       clock,
		random:      random,
		logger:      logger.With(slog.String("component", "seed-service")),
		playerCount: cfg.PlayerCount,
	}
}

// Result reports what a seeding run did
type Result struct {
	Created  int // players inserted by this run
	Existing int // players already present when the run started
}

// Seed fills an empty catalog with generated players. If any players
// already exist the catalog is left untouched and Existing reports how
// many were found, so repeated calls are safe.
func (s *Service) Seed(ctx context.Context) (*Result, error) {
	existing, err := s.storage.CountPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &Result{Existing: existing}, nil
	}

	players := s.generatePlayers(s.playerCount)

	if err := s.storage.SavePlayers(ctx, players); err != nil {
		s.logger.Error("failed to seed players", slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.Info("catalog seeded", slog.Int("player_count", len(players)))
	return &Result{Created: len(players)}, nil
}

func (s *Service) generatePlayers(count int) []*model.Player {
	now := s.clock.Now()
	positions := model.Positions()

	usedNames := make(map[string]struct{}, count)
	usedJerseys := make(map[int]struct{}, count)

	players := make([]*model.Player, 0, count)
	for i := 0; i < count; i++ {
		position := positions[i%len(positions)]

		var name string
		for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
			name = s.pick(firstNames) + " " + s.pick(lastNames)
			if _, taken := usedNames[name]; !taken {
				break
			}
		}
		usedNames[name] = struct{}{}

		var jersey int
		for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
			jersey = s.intBetween(1, 99)
			if _, taken := usedJerseys[jersey]; !taken {
				break
			}
		}
		usedJerseys[jersey] = struct{}{}

		players = append(players, &model.Player{
			ID:           model.PlayerID("p_" + s.random.String(playerIDLength, playerIDAlphabet)),
			Name:         name,
			JerseyNumber: jersey,
			Position:     position,
			TeamName:     s.pick(teamNames),
			CreditCost:   s.creditCost(position),
			Bio:          s.pick(bios),
			Stats: model.PlayerStats{
				Matches:      s.intBetween(50, 200),
				Sets:         s.intBetween(100, 500),
				KillsPerSet:  s.floatBetween(2.0, 5.5),
				DigsPerSet:   s.floatBetween(1.5, 4.0),
				BlocksPerSet: s.floatBetween(0.5, 2.5),
				AcesPerSet:   s.floatBetween(0.3, 1.5),
			},
			CreatedAt: now,
		})
	}
	return players
}

// creditCost draws a cost from the position's band. Hitters are the most
// expensive, back-row specialists the cheapest.
func (s *Service) creditCost(position model.Position) int {
	switch position {
	case model.PositionSetter:
		return s.intBetween(12, 20)
	case model.PositionOutsideHitter, model.PositionOppositeHitter:
		return s.intBetween(15, 25)
	case model.PositionMiddleBlocker:
		return s.intBetween(10, 18)
	case model.PositionLibero:
		return s.intBetween(8, 15)
	default: // DS
		return s.intBetween(7, 14)
	}
}

func (s *Service) pick(options []string) string {
	return options[s.random.Intn(len(options))]
}

// intBetween returns a value in [min, max] inclusive
func (s *Service) intBetween(min, max int) int {
	return min + s.random.Intn(max-min+1)
}

// floatBetween returns a value in [min, max] with two decimal places
func (s *Service) floatBetween(min, max float64) float64 {
	cents := int(min*100) + s.random.Intn(int(max*100)-int(min*100)+1)
	return float64(cents) / 100
}
