package redis

import (
	"fmt"

	"github.com/mcoot/volleydraft-go/internal/model"
)

// Key prefix for all roster-related data
const keyPrefix = "vdraft"

// Key generation functions for each entity type

// playerKey returns the Redis key for a catalog Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// rosterKey returns the Redis key for an owner's roster
func rosterKey(ownerID model.UserID) string {
	return fmt.Sprintf("%s:roster:%s", keyPrefix, ownerID)
}
