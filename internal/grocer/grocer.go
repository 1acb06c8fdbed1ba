package grocer

import (
	"context"
	"fmt"
	"time"

	"grocer/internal/config"
	"grocer/pkg/domain"
	"grocer/pkg/serrors"
	"grocer/pkg/storage"
)

// Options configure list building and saved list queries.
// These settings are typically derived from application configuration.
type Options struct {
	// PageLimit is the page size used when a caller lists saved lists without
	// asking for one, and the upper bound when it does.
	PageLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PageLimit: cfg.Lists.PageLimit,
	}
}

// grocer is the concrete implementation of the Grocer interface.
// It coordinates list building with the stored material catalog and persists
// results through the storage layer.
type grocer struct {
	// options holds runtime configuration that affects queries.
	options Options
	// storage is the persistence layer for saved lists and materials.
	storage storage.Storage
}

// Build regularizes every ingredient of every recipe against the given
// materials and consolidates the results into a single grocery list. Any
// malformed or inconvertible ingredient aborts the whole build; no partial
// list is ever returned.
func Build(ctx context.Context, materials []domain.Material, recipes []domain.Recipe) (domain.GroceryList, error) {
	catalog := NewCatalog(ctx, materials)

	var entries []domain.IngredientEntry
	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			regularized, err := catalog.Regularize(ctx, ingredient)
			if err != nil {
				return nil, fmt.Errorf("recipe %q: %w", recipe.Name, err)
			}
			entries = append(entries, regularized)
		}
	}

	return Consolidate(entries)
}

// BuildList builds a consolidated grocery list from the given recipes. The
// stored material catalog is used as the base; materials passed by the caller
// are layered on top and take precedence over stored records with the same
// name.
func (g grocer) BuildList(ctx context.Context,
	materials []domain.Material,
	recipes []domain.Recipe) (domain.GroceryList, error) {
	stored, err := g.storage.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load stored materials: %w", err)
	}

	list, err := Build(ctx, append(stored, materials...), recipes)
	if err != nil {
		return nil, fmt.Errorf("could not build grocery list: %w", err)
	}

	return list, nil
}

// BuildAndSave builds a grocery list and persists it under the given name.
func (g grocer) BuildAndSave(ctx context.Context,
	name string,
	materials []domain.Material,
	recipes []domain.Recipe) (*domain.SavedList, error) {
	list, err := g.BuildList(ctx, materials, recipes)
	if err != nil {
		return nil, err
	}

	res, err := g.storage.StoreLists(ctx, domain.SavedList{Name: name, Items: list})
	if err != nil {
		return nil, fmt.Errorf("could not store list: %w", err)
	}

	return &res[0], nil
}

// SavedLists returns a page of saved lists, newest first. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (g grocer) SavedLists(ctx context.Context, cursor string, limit uint) ([]domain.SavedList, string, error) {
	if limit == 0 || limit > g.options.PageLimit {
		limit = g.options.PageLimit
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := g.storage.SavedLists(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get saved lists: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Lists, next, nil
}

// SavedList fetches a single saved list by ID. It returns a not-found error
// when no matching list exists.
func (g grocer) SavedList(ctx context.Context, ID domain.ListID) (*domain.SavedList, error) {
	res, err := g.storage.ListByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get list: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "list not found")
	}

	return res, nil
}

// DeleteList removes a saved list. If the list does not exist, a not-found
// error is returned.
func (g grocer) DeleteList(ctx context.Context, ID domain.ListID) error {
	res, err := g.storage.DeleteList(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete list: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "list not found")
	}

	return nil
}

// Materials returns the stored material catalog ordered by name.
func (g grocer) Materials(ctx context.Context) ([]domain.Material, error) {
	res, err := g.storage.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get materials: %w", err)
	}

	return res, nil
}

// SyncMaterials validates the given materials and upserts them into the
// stored catalog. When prune is set, stored materials absent from the given
// set are removed in the same transaction. It returns the number of upserted
// records.
func (g grocer) SyncMaterials(ctx context.Context, materials []domain.Material, prune bool) (int64, error) {
	if len(materials) == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "no materials to sync")
	}
	for _, m := range materials {
		if err := ValidateMaterial(m); err != nil {
			return 0, err
		}
	}

	var count int64
	if err := g.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.UpsertMaterials(ctx, materials...)
		if err != nil {
			return fmt.Errorf("could not upsert materials: %w", err)
		}
		count = n

		if prune {
			names := make([]string, 0, len(materials))
			for _, m := range materials {
				names = append(names, m.Name)
			}
			if _, err := tx.DeleteMaterialsNotIn(ctx, names); err != nil {
				return fmt.Errorf("could not prune materials: %w", err)
			}
		}

		return nil
	}); err != nil {
		return 0, fmt.Errorf("could not sync materials: %w", err)
	}

	return count, nil
}

// New creates a new Grocer instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Grocer {
	return &grocer{
		options: options,
		storage: storage,
	}
}
