package model

import "time"

// PlayerID uniquely identifies a player in the catalog
type PlayerID string

// Position is one of the six volleyball court positions a roster must fill.
// The set is closed; rosters always have exactly one slot per position.
type Position string

const (
	PositionSetter              Position = "S"
	PositionOutsideHitter       Position = "OH"
	PositionOppositeHitter      Position = "OPP"
	PositionMiddleBlocker       Position = "MB"
	PositionLibero              Position = "L"
	PositionDefensiveSpecialist Position = "DS"
)

// Positions returns all six positions in canonical roster order
func Positions() []Position {
	return []Position{
		PositionSetter,
		PositionOutsideHitter,
		PositionOppositeHitter,
		PositionMiddleBlocker,
		PositionLibero,
		PositionDefensiveSpecialist,
	}
}

// Valid reports whether p is one of the six known positions
func (p Position) Valid() bool {
	switch p {
	case PositionSetter, PositionOutsideHitter, PositionOppositeHitter,
		PositionMiddleBlocker, PositionLibero, PositionDefensiveSpecialist:
		return true
	}
	return false
}

// DisplayName returns the long-form position name
func (p Position) DisplayName() string {
	switch p {
	case PositionSetter:
		return "Setter"
	case PositionOutsideHitter:
		return "Outside Hitter"
	case PositionOppositeHitter:
		return "Opposite Hitter"
	case PositionMiddleBlocker:
		return "Middle Blocker"
	case PositionLibero:
		return "Libero"
	case PositionDefensiveSpecialist:
		return "Defensive Specialist"
	}
	return string(p)
}

// PlayerStats holds a player's per-set performance averages
type PlayerStats struct {
	Matches      int
	Sets         int
	KillsPerSet  float64
	DigsPerSet   float64
	BlocksPerSet float64
	AcesPerSet   float64
}

// Player is a catalog record. Immutable once created; rosters reference
// players by id and never copy or mutate catalog data.
type Player struct {
	ID           PlayerID
	Name         string
	JerseyNumber int
	Position     Position
	TeamName     string
	CreditCost   int
	Bio          string
	ImageBase64  string // display payload, may be empty
	Stats        PlayerStats
	CreatedAt    time.Time
}

// SortKey selects the ordering of a catalog listing
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByCreditCost SortKey = "creditCost"
)

// PlayerFilter narrows and orders a catalog listing. Zero values mean
// "no position filter", "no search", "sort by name", "default limit".
type PlayerFilter struct {
	Position Position // exact match on the position code
	Search   string   // case-insensitive substring match on name
	SortBy   SortKey  // unknown keys fall back to SortByName
	Limit    int      // max rows; <= 0 means the caller's default
}
