package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListID uniquely identifies a saved grocery list.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ListID uuid.UUID

// NewListID returns a fresh random list identifier.
func NewListID() ListID {
	return ListID(uuid.New())
}

// String renders the identifier in the canonical UUID form.
func (id ListID) String() string {
	return uuid.UUID(id).String()
}

// GroceryList is the consolidated output of a build: one entry per
// distinct item, each expressed in its material's canonical unit, in
// name order.
type GroceryList []IngredientEntry

// Lines renders the list for display, one "- <quantity> <item>" line
// per entry, with quantities rounded to sigFigs significant figures.
func (l GroceryList) Lines(sigFigs int) []string {
	lines := make([]string, 0, len(l))
	for _, entry := range l {
		lines = append(lines, "- "+entry.Quantity.Format(sigFigs)+" "+entry.Item)
	}

	return lines
}

// SavedList is a grocery list persisted for later retrieval.
// It tracks the list's name, entries, and timestamps.
type SavedList struct {
	// ID is the unique identifier of the saved list.
	ID ListID `json:"id"`

	// Name is the caller-chosen label for the list.
	Name string `json:"name"`
	// Items holds the consolidated grocery list entries.
	Items GroceryList `json:"items"`

	// CreatedAt is the time when the list was stored.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the list was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the list was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
