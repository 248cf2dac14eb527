package model

import "time"

// Budget is the credit ceiling a roster's total cost must not exceed
const Budget = 100

// RosterAssignment maps each position slot to a chosen player id.
// A missing key or empty value is an unfilled slot. Transient input;
// never persisted as-is.
type RosterAssignment map[Position]PlayerID

// MissingSlots returns how many of the six positions have no player assigned
func (a RosterAssignment) MissingSlots() int {
	missing := 0
	for _, pos := range Positions() {
		if a[pos] == "" {
			missing++
		}
	}
	return missing
}

// Roster is the single stored roster for one owner. Saving replaces the
// whole row; it is never partially updated.
type Roster struct {
	OwnerID     UserID
	Slots       map[Position]PlayerID // six filled slots once stored
	CreditsUsed int                   // cost snapshot at last save
	Remaining   int                   // Budget - CreditsUsed
	UpdatedAt   time.Time
}

// RosterView is a roster resolved against the catalog for display.
// A nil or absent slot entry means the slot is empty (never saved, or
// the referenced player has left the catalog).
type RosterView struct {
	Slots       map[Position]*Player
	CreditsUsed int
	Remaining   int
}
