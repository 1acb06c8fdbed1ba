package domain

import (
	"grocer/pkg/units"
)

// IngredientEntry is a single line of a recipe or grocery list: an item
// name paired with a quantity.
type IngredientEntry struct {
	Item     string         `json:"item"`
	Quantity units.Quantity `json:"quantity"`
}

// Recipe is a named collection of ingredient entries. Instructions are
// carried along for display but play no part in consolidation.
type Recipe struct {
	// Name is the display name of the recipe.
	Name string `json:"name"`
	// Source records where the recipe came from, e.g. a URL or book.
	Source string `json:"source,omitempty"`
	// Ingredients lists everything the recipe calls for.
	Ingredients []IngredientEntry `json:"ingredients"`
	// Instructions are the preparation steps, in order.
	Instructions []string `json:"instructions,omitempty"`
}
