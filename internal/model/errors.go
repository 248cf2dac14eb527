package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrRosterNotFound = errors.New("roster not found")
)

// IncompleteRosterError rejects an assignment with unfilled slots.
// Missing is the number of empty slots, not which ones.
type IncompleteRosterError struct {
	Missing int
}

func (e *IncompleteRosterError) Error() string {
	return fmt.Sprintf("incomplete roster: %d positions unfilled", e.Missing)
}

// UnknownPlayerError rejects an assignment referencing player ids that
// do not resolve in the catalog.
type UnknownPlayerError struct {
	IDs []PlayerID
}

func (e *UnknownPlayerError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = string(id)
	}
	return fmt.Sprintf("unknown players: %s", strings.Join(ids, ", "))
}

// BudgetExceededError rejects an assignment whose total cost is over
// Budget. Total is the computed cost, kept for display.
type BudgetExceededError struct {
	Total int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget exceeded: %d/%d credits", e.Total, Budget)
}
