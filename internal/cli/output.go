package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayerList(v)
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Roster:
		o.printRoster(v)
	case SaveRosterResult:
		o.printSaveRosterResult(v)
	case SeedResult:
		fmt.Println(v.Message)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerStats response type (matches API)
type PlayerStats struct {
	Matches      int     `json:"matches"`
	Sets         int     `json:"sets"`
	KillsPerSet  float64 `json:"kills_per_set"`
	DigsPerSet   float64 `json:"digs_per_set"`
	BlocksPerSet float64 `json:"blocks_per_set"`
	AcesPerSet   float64 `json:"aces_per_set"`
}

// Player response type
type Player struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	JerseyNumber int         `json:"jersey_number"`
	Position     string      `json:"position"`
	PositionName string      `json:"position_name"`
	TeamName     string      `json:"team_name"`
	CreditCost   int         `json:"credit_cost"`
	Bio          string      `json:"bio"`
	Stats        PlayerStats `json:"stats"`
}

// User response type
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Roster response type
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

// SaveRosterResult response type
type SaveRosterResult struct {
	Message     string `json:"message"`
	CreditsUsed int    `json:"credits_used"`
	Remaining   int    `json:"remaining"`
}

// SeedResult response type
type SeedResult struct {
	Message string `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Position: %s (%s)\n", p.PositionName, p.Position)
	fmt.Printf("Team: %s\n", p.TeamName)
	fmt.Printf("Jersey: #%d\n", p.JerseyNumber)
	fmt.Printf("Cost: %d credits\n", p.CreditCost)
	if p.Bio != "" {
		fmt.Printf("Bio: %s\n", p.Bio)
	}
	fmt.Printf("Stats: %d matches, %d sets | %.2f kills, %.2f digs, %.2f blocks, %.2f aces per set\n",
		p.Stats.Matches, p.Stats.Sets,
		p.Stats.KillsPerSet, p.Stats.DigsPerSet, p.Stats.BlocksPerSet, p.Stats.AcesPerSet)
}

func (o *Output) printPlayerList(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s [%s] %s #%d - %d credits (%s)\n",
			p.Name, p.Position, p.TeamName, p.JerseyNumber, p.CreditCost, p.ID)
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s <%s> (%s)\n", u.Name, u.Email, u.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRoster(r Roster) {
	fmt.Printf("Roster: %d credits used, %d remaining\n", r.CreditsUsed, r.Remaining)
	slots := []struct {
		label  string
		player *Player
	}{
		{"Setter", r.Setter},
		{"Outside Hitter", r.OutsideHitter},
		{"Opposite Hitter", r.OppositeHitter},
		{"Middle Blocker", r.MiddleBlocker},
		{"Libero", r.Libero},
		{"Defensive Specialist", r.DefensiveSpecialist},
	}
	for _, s := range slots {
		if s.player == nil {
			fmt.Printf("  %-21s (empty)\n", s.label+":")
			continue
		}
		fmt.Printf("  %-21s %s - %d credits (%s)\n", s.label+":", s.player.Name, s.player.CreditCost, s.player.ID)
	}
}

func (o *Output) printSaveRosterResult(r SaveRosterResult) {
	fmt.Println(r.Message)
	fmt.Printf("Credits used: %d\n", r.CreditsUsed)
	fmt.Printf("Remaining: %d\n", r.Remaining)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
