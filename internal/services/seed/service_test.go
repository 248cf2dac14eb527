package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/volleydraft-go/internal/dependencies/mocks"
	"github.com/mcoot/volleydraft-go/internal/dependencies/random"
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/storage/memory"
	"github.com/mcoot/volleydraft-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = s.newService(42, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) newService(seed int64, cfg Config) *Service {
	return New(s.storage, s.clock, random.NewSeeded(seed), testutil.NopLogger(), cfg)
}

func (s *ServiceSuite) seededPlayers() []*model.Player {
	players, err := s.storage.ListPlayers(s.ctx, model.PlayerFilter{Limit: 1000})
	s.Require().NoError(err)
	return players
}

func (s *ServiceSuite) TestSeedCreatesPlayers() {
	result, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	s.Equal(35, result.Created)
	s.Equal(0, result.Existing)

	count, err := s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(35, count)
}

func (s *ServiceSuite) TestSeedIsIdempotent() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	result, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, result.Created)
	s.Equal(35, result.Existing)

	count, err := s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(35, count)
}

func (s *ServiceSuite) TestSeedSkipsPartiallyFilledCatalog() {
	err := s.storage.SavePlayer(s.ctx, &model.Player{
		ID:       "p_existing",
		Name:     "Existing Player",
		Position: model.PositionSetter,
	})
	s.Require().NoError(err)

	result, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, result.Created)
	s.Equal(1, result.Existing)
}

func (s *ServiceSuite) TestSeedRespectsConfiguredCount() {
	service := s.newService(42, Config{PlayerCount: 12})

	result, err := service.Seed(s.ctx)
	s.Require().NoError(err)
	s.Equal(12, result.Created)
}

func (s *ServiceSuite) TestSeedIsDeterministicForSameSeed() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)
	first := s.seededPlayers()

	s.storage = memory.New()
	service := s.newService(42, DefaultConfig())
	_, err = service.Seed(s.ctx)
	s.Require().NoError(err)
	second := s.seededPlayers()

	s.Require().Len(second, len(first))
	for i := range first {
		s.Equal(first[i].ID, second[i].ID)
		s.Equal(first[i].Name, second[i].Name)
		s.Equal(first[i].CreditCost, second[i].CreditCost)
		s.Equal(first[i].Stats, second[i].Stats)
	}
}

func (s *ServiceSuite) TestSeedCoversPositionsRoundRobin() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	counts := make(map[model.Position]int)
	for _, p := range s.seededPlayers() {
		counts[p.Position]++
	}

	// 35 players over six positions: the first five positions in roster
	// order get six players, the last gets five
	s.Equal(6, counts[model.PositionSetter])
	s.Equal(6, counts[model.PositionOutsideHitter])
	s.Equal(6, counts[model.PositionOppositeHitter])
	s.Equal(6, counts[model.PositionMiddleBlocker])
	s.Equal(6, counts[model.PositionLibero])
	s.Equal(5, counts[model.PositionDefensiveSpecialist])
}

func (s *ServiceSuite) TestSeedCostsStayInPositionBands() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	bands := map[model.Position][2]int{
		model.PositionSetter:              {12, 20},
		model.PositionOutsideHitter:       {15, 25},
		model.PositionOppositeHitter:      {15, 25},
		model.PositionMiddleBlocker:       {10, 18},
		model.PositionLibero:              {8, 15},
		model.PositionDefensiveSpecialist: {7, 14},
	}

	for _, p := range s.seededPlayers() {
		band := bands[p.Position]
		s.GreaterOrEqual(p.CreditCost, band[0], "player %s", p.ID)
		s.LessOrEqual(p.CreditCost, band[1], "player %s", p.ID)
	}
}

func (s *ServiceSuite) TestSeedGeneratesUniqueNamesAndJerseys() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	names := make(map[string]struct{})
	jerseys := make(map[int]struct{})
	for _, p := range s.seededPlayers() {
		names[p.Name] = struct{}{}
		jerseys[p.JerseyNumber] = struct{}{}
		s.GreaterOrEqual(p.JerseyNumber, 1)
		s.LessOrEqual(p.JerseyNumber, 99)
	}

	s.Len(names, 35)
	s.Len(jerseys, 35)
}

func (s *ServiceSuite) TestSeedGeneratesPrefixedIDs() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	for _, p := range s.seededPlayers() {
		s.Len(p.ID, len("p_")+playerIDLength)
		s.Equal("p_", string(p.ID[:2]))
	}
}

func (s *ServiceSuite) TestSeedStatsStayInRanges() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	for _, p := range s.seededPlayers() {
		s.GreaterOrEqual(p.Stats.Matches, 50)
		s.LessOrEqual(p.Stats.Matches, 200)
		s.GreaterOrEqual(p.Stats.Sets, 100)
		s.LessOrEqual(p.Stats.Sets, 500)
		s.GreaterOrEqual(p.Stats.KillsPerSet, 2.0)
		s.LessOrEqual(p.Stats.KillsPerSet, 5.5)
		s.GreaterOrEqual(p.Stats.DigsPerSet, 1.5)
		s.LessOrEqual(p.Stats.DigsPerSet, 4.0)
		s.GreaterOrEqual(p.Stats.BlocksPerSet, 0.5)
		s.LessOrEqual(p.Stats.BlocksPerSet, 2.5)
		s.GreaterOrEqual(p.Stats.AcesPerSet, 0.3)
		s.LessOrEqual(p.Stats.AcesPerSet, 1.5)
	}
}

func (s *ServiceSuite) TestSeedStampsCreationTime() {
	_, err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	for _, p := range s.seededPlayers() {
		s.Equal(s.clock.Now(), p.CreatedAt)
	}
}
