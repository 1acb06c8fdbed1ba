package storage

import (
	"context"
	"grocer/pkg/domain"
)

// MaterialStorage defines operations on the shared material catalog.
// Materials are keyed by name; there is at most one live record per name.
type MaterialStorage interface {
	// UpsertMaterials inserts the given materials, replacing any existing
	// records with the same name, and returns the number of rows written.
	UpsertMaterials(ctx context.Context, materials ...domain.Material) (int64, error)
	// Materials returns every stored material ordered by name.
	Materials(ctx context.Context) ([]domain.Material, error)
	// DeleteMaterialsNotIn removes every material whose name is not in the
	// given set and returns the number of rows removed. An empty set removes
	// all materials.
	DeleteMaterialsNotIn(ctx context.Context, names []string) (int64, error)
}
