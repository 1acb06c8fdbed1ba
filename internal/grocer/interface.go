package grocer

import (
	"context"
	"grocer/pkg/domain"
)

//go:generate mockgen -package mockgrocer -source=interface.go -destination=mock/mockgrocer.go *
type Grocer interface {
	BuildList(ctx context.Context, materials []domain.Material, recipes []domain.Recipe) (domain.GroceryList, error)
	BuildAndSave(ctx context.Context,
		name string,
		materials []domain.Material,
		recipes []domain.Recipe) (*domain.SavedList, error)
	SavedLists(ctx context.Context, cursor string, limit uint) ([]domain.SavedList, string, error)
	SavedList(ctx context.Context, ID domain.ListID) (*domain.SavedList, error)
	DeleteList(ctx context.Context, ID domain.ListID) error
	Materials(ctx context.Context) ([]domain.Material, error)
	SyncMaterials(ctx context.Context, materials []domain.Material, prune bool) (int64, error)
}
