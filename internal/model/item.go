package model

import (
	"strings"
	"time"
)

// Item is the domain model for a single happy thing.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// IsDefault reports whether the item is one of the built-in
// placeholders (never persisted, never deletable).
func (i Item) IsDefault() bool { return IsDefaultID(i.ID) }

const defaultIDPrefix = "default-"

// IsDefaultID reports whether id belongs to the built-in placeholder set.
func IsDefaultID(id string) bool {
	return strings.HasPrefix(id, defaultIDPrefix)
}
