package grocer

import (
	"fmt"
	"sort"

	"grocer/pkg/domain"
)

// Consolidate merges regularized entries into a single grocery list
// with one line per item, ordered by item name. Entries are stably
// sorted by name and folded left to right; only adjacent entries with
// the same name merge, and the merged quantity keeps the unit of the
// first entry seen for that name.
func Consolidate(entries []domain.IngredientEntry) (domain.GroceryList, error) {
	sorted := make([]domain.IngredientEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Item < sorted[j].Item })

	merged := make(domain.GroceryList, 0, len(sorted))
	for _, entry := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Item == entry.Item {
			sum, err := merged[n-1].Quantity.Add(entry.Quantity)
			if err != nil {
				return nil, fmt.Errorf("could not merge %q entries: %w", entry.Item, err)
			}
			merged[n-1].Quantity = sum

			continue
		}
		merged = append(merged, entry)
	}

	return merged, nil
}
