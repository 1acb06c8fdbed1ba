package postgres

import (
	"context"
	"fmt"
	"grocer/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const materialsTable = "materials"

// UpsertMaterials inserts the given materials into the catalog, replacing the
// canonical unit and conversion factors of materials that already exist. It
// returns the number of affected rows.
func (p *PgSQL) UpsertMaterials(ctx context.Context, materials ...domain.Material) (int64, error) {
	pgMaterials, err := domainMaterialsToPg(materials)
	if err != nil {
		return 0, fmt.Errorf("could not convert materials to db models: %w", err)
	}

	result, err := p.Builder.
		Insert(materialsTable).
		Rows(pgMaterials).
		OnConflict(goqu.DoUpdate("name", goqu.Record{
			"unit":            goqu.L("EXCLUDED.unit"),
			"mass_per_unit":   goqu.L("EXCLUDED.mass_per_unit"),
			"volume_per_unit": goqu.L("EXCLUDED.volume_per_unit"),
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert materials: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}

// Materials returns all catalog materials ordered by name.
func (p *PgSQL) Materials(ctx context.Context) ([]domain.Material, error) {
	var pgMaterials []PgMaterial
	if err := p.Builder.
		From(materialsTable).
		Order(goqu.I("name").Asc()).
		Executor().
		ScanStructsContext(ctx, &pgMaterials); err != nil {
		return nil, fmt.Errorf("could not query materials: %w", err)
	}

	materials, err := pgMaterialsToDomain(pgMaterials)
	if err != nil {
		return nil, fmt.Errorf("could not convert materials to domain models: %w", err)
	}

	return materials, nil
}

// DeleteMaterialsNotIn removes every catalog material whose name is not in the
// given set and returns the number of removed rows. An empty set removes the
// whole catalog.
func (p *PgSQL) DeleteMaterialsNotIn(ctx context.Context, names []string) (int64, error) {
	query := p.Builder.Delete(materialsTable)
	if len(names) > 0 {
		query = query.Where(goqu.I("name").NotIn(names))
	}

	result, err := query.
		Executor().
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete materials: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}
