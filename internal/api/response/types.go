package response

import (
	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/services/auth"
)

// PlayerStats represents a player's per-set averages in API responses
type PlayerStats struct {
	Matches      int     `json:"matches"`
	Sets         int     `json:"sets"`
	KillsPerSet  float64 `json:"kills_per_set"`
	DigsPerSet   float64 `json:"digs_per_set"`
	BlocksPerSet float64 `json:"blocks_per_set"`
	AcesPerSet   float64 `json:"aces_per_set"`
}

// Player represents a catalog player in API responses
type Player struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	JerseyNumber int         `json:"jersey_number"`
	Position     string      `json:"position"`
	PositionName string      `json:"position_name"`
	TeamName     string      `json:"team_name"`
	CreditCost   int         `json:"credit_cost"`
	Bio          string      `json:"bio"`
	ImageBase64  string      `json:"image_base64,omitempty"`
	Stats        PlayerStats `json:"stats"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:           string(p.ID),
		Name:         p.Name,
		JerseyNumber: p.JerseyNumber,
		Position:     string(p.Position),
		PositionName: p.Position.DisplayName(),
		TeamName:     p.TeamName,
		CreditCost:   p.CreditCost,
		Bio:          p.Bio,
		ImageBase64:  p.ImageBase64,
		Stats: PlayerStats{
			Matches:      p.Stats.Matches,
			Sets:         p.Stats.Sets,
			KillsPerSet:  p.Stats.KillsPerSet,
			DigsPerSet:   p.Stats.DigsPerSet,
			BlocksPerSet: p.Stats.BlocksPerSet,
			AcesPerSet:   p.Stats.AcesPerSet,
		},
	}
}

// User represents an account in API responses
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:    string(u.ID),
		Email: u.Email,
		Name:  u.Name,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Roster represents a resolved roster in API responses. A null slot is
// empty, either never saved or referencing a player no longer in the
// catalog.
type Roster struct {
	Setter              *Player `json:"setter"`
	OutsideHitter       *Player `json:"outside_hitter"`
	OppositeHitter      *Player `json:"opposite_hitter"`
	MiddleBlocker       *Player `json:"middle_blocker"`
	Libero              *Player `json:"libero"`
	DefensiveSpecialist *Player `json:"defensive_specialist"`
	CreditsUsed         int     `json:"credits_used"`
	Remaining           int     `json:"remaining"`
}

// RosterFromView converts a model.RosterView to a response Roster
func RosterFromView(v *model.RosterView) Roster {
	return Roster{
		Setter:              playerPtr(v.Slots[model.PositionSetter]),
		OutsideHitter:       playerPtr(v.Slots[model.PositionOutsideHitter]),
		OppositeHitter:      playerPtr(v.Slots[model.PositionOppositeHitter]),
		MiddleBlocker:       playerPtr(v.Slots[model.PositionMiddleBlocker]),
		Libero:              playerPtr(v.Slots[model.PositionLibero]),
		DefensiveSpecialist: playerPtr(v.Slots[model.PositionDefensiveSpecialist]),
		CreditsUsed:         v.CreditsUsed,
		Remaining:           v.Remaining,
	}
}

func playerPtr(p *model.Player) *Player {
	if p == nil {
		return nil
	}
	resp := PlayerFromModel(p)
	return &resp
}

// SaveRosterResponse is the response after saving a roster
type SaveRosterResponse struct {
	Message     string `json:"message"`
	CreditsUsed int    `json:"credits_used"`
	Remaining   int    `json:"remaining"`
}

// SeedResponse is the response from the seed endpoint
type SeedResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the response from the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
