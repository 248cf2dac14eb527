package factory

import (
	"context"
	"time"

	"github.com/mcoot/volleydraft-go/internal/dependencies/mocks"
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/services/auth"
	"github.com/mcoot/volleydraft-go/internal/services/seed"
	"github.com/mcoot/volleydraft-go/internal/storage/memory"
	"github.com/mcoot/volleydraft-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), seed.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestPlayers fills the catalog with a small fixed set of players,
// two per position with known ids and costs. The cheapest pick per
// position totals 83 credits; the priciest totals 117.
func (t *TestApp) LoadTestPlayers() error {
	now := t.MockClock.Now()

	players := []*model.Player{
		testPlayer("p_setter_1", "Noa Beck", 7, model.PositionSetter, "Phoenix Fire", 15, now),
		testPlayer("p_setter_2", "Iris Vance", 12, model.PositionSetter, "Wave Riders", 20, now),
		testPlayer("p_oh_1", "Milo Reyes", 3, model.PositionOutsideHitter, "Thunder Storm", 20, now),
		testPlayer("p_oh_2", "Juno Alvarez", 18, model.PositionOutsideHitter, "Lightning Bolts", 25, now),
		testPlayer("p_opp_1", "Remy Okafor", 21, model.PositionOppositeHitter, "Sky Hawks", 18, now),
		testPlayer("p_opp_2", "Sasha Petrov", 9, model.PositionOppositeHitter, "Ocean Warriors", 25, now),
		testPlayer("p_mb_1", "Teo Nakamura", 30, model.PositionMiddleBlocker, "Phoenix Fire", 12, now),
		testPlayer("p_mb_2", "Lena Hoff", 14, model.PositionMiddleBlocker, "Wave Riders", 18, now),
		testPlayer("p_lib_1", "Ari Doyle", 5, model.PositionLibero, "Thunder Storm", 10, now),
		testPlayer("p_lib_2", "Kit Moreau", 22, model.PositionLibero, "Lightning Bolts", 15, now),
		testPlayer("p_ds_1", "Bo Lindqvist", 11, model.PositionDefensiveSpecialist, "Sky Hawks", 8, now),
		testPlayer("p_ds_2", "Zia Okoro", 27, model.PositionDefensiveSpecialist, "Ocean Warriors", 14, now),
	}

	return t.Storage.SavePlayers(context.Background(), players)
}

func testPlayer(id, name string, jersey int, pos model.Position, team string, cost int, createdAt time.Time) *model.Player {
	return &model.Player{
		ID:           model.PlayerID(id),
		Name:         name,
		JerseyNumber: jersey,
		Position:     pos,
		TeamName:     team,
		CreditCost:   cost,
		Bio:          "Test catalog player.",
		Stats: model.PlayerStats{
			Matches:      80,
			Sets:         240,
			KillsPerSet:  3.1,
			DigsPerSet:   2.2,
			BlocksPerSet: 0.9,
			AcesPerSet:   0.6,
		},
		CreatedAt: createdAt,
	}
}

// CheapestAssignment returns the lowest-cost valid assignment from the
// test catalog (83 credits)
func CheapestAssignment() model.RosterAssignment {
	return model.RosterAssignment{
		model.PositionSetter:              "p_setter_1",
		model.PositionOutsideHitter:       "p_oh_1",
		model.PositionOppositeHitter:      "p_opp_1",
		model.PositionMiddleBlocker:       "p_mb_1",
		model.PositionLibero:              "p_lib_1",
		model.PositionDefensiveSpecialist: "p_ds_1",
	}
}

// PriciestAssignment returns the highest-cost assignment from the test
// catalog (117 credits, over budget)
func PriciestAssignment() model.RosterAssignment {
	return model.RosterAssignment{
		model.PositionSetter:              "p_setter_2",
		model.PositionOutsideHitter:       "p_oh_2",
		model.PositionOppositeHitter:      "p_opp_2",
		model.PositionMiddleBlocker:       "p_mb_2",
		model.PositionLibero:              "p_lib_2",
		model.PositionDefensiveSpecialist: "p_ds_2",
	}
}
