package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"grocer/pkg/domain"
	"grocer/pkg/units"
	"time"

	"github.com/google/uuid"
)

// TODO: use goverter for conversions.

// PgList represents the database model for saved grocery lists, mapping the
// domain.SavedList to the lists table.
type PgList struct {
	// ID is the unique identifier, generated by the database
	ID uuid.UUID `db:"id" goqu:"skipinsert"`
	// Name is the caller-chosen label of the list
	Name string `db:"name"`
	// Items holds the consolidated list entries as a JSONB document
	Items json.RawMessage `db:"items"`
	// CreatedAt is set by the database on insertion
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	// UpdatedAt is set by the database when the row changes
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	// DeletedAt marks soft-deleted rows
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// ToDomain converts the database model to the domain representation.
func (p *PgList) ToDomain() (*domain.SavedList, error) {
	var items domain.GroceryList
	if err := json.Unmarshal(p.Items, &items); err != nil {
		return nil, fmt.Errorf("could not unmarshal list items: %w", err)
	}

	list := &domain.SavedList{
		ID:        domain.ListID(p.ID),
		Name:      p.Name,
		Items:     items,
		CreatedAt: p.CreatedAt,
	}
	if p.UpdatedAt.Valid {
		list.UpdatedAt = p.UpdatedAt.Time
	}
	if p.DeletedAt.Valid {
		list.DeletedAt = p.DeletedAt.Time
	}

	return list, nil
}

// FromDomain converts the domain representation to the database model.
func (p *PgList) FromDomain(list *domain.SavedList) error {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("could not marshal list items: %w", err)
	}

	p.ID = uuid.UUID(list.ID)
	p.Name = list.Name
	p.Items = items
	p.CreatedAt = list.CreatedAt
	p.UpdatedAt = sql.NullTime{Time: list.UpdatedAt, Valid: !list.UpdatedAt.IsZero()}
	p.DeletedAt = sql.NullTime{Time: list.DeletedAt, Valid: !list.DeletedAt.IsZero()}

	return nil
}

func domainListsToPg(lists []domain.SavedList) ([]PgList, error) {
	pgLists := make([]PgList, 0, len(lists))
	for i := range lists {
		var pgList PgList
		if err := pgList.FromDomain(&lists[i]); err != nil {
			return nil, err
		}

		pgLists = append(pgLists, pgList)
	}

	return pgLists, nil
}

func pgListsToDomain(pgLists []PgList) ([]domain.SavedList, error) {
	lists := make([]domain.SavedList, 0, len(pgLists))
	for i := range pgLists {
		list, err := pgLists[i].ToDomain()
		if err != nil {
			return nil, err
		}

		lists = append(lists, *list)
	}

	return lists, nil
}

// PgMaterial represents the database model for catalog materials, mapping the
// domain.Material to the materials table. The conversion factors are stored as
// JSONB documents and are NULL when a material does not carry them.
type PgMaterial struct {
	// Name is the material identity, unique within the catalog
	Name string `db:"name"`
	// Unit is the symbol of the canonical unit
	Unit string `db:"unit"`
	// MassPerUnit is the mass conversion factor, or NULL
	MassPerUnit json.RawMessage `db:"mass_per_unit"`
	// VolumePerUnit is the volume conversion factor, or NULL
	VolumePerUnit json.RawMessage `db:"volume_per_unit"`
	// CreatedAt is set by the database on insertion
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	// UpdatedAt is set by the database when the row changes
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToDomain converts the database model to the domain representation.
func (p *PgMaterial) ToDomain() (*domain.Material, error) {
	unit, err := units.Parse(p.Unit)
	if err != nil {
		return nil, fmt.Errorf("could not parse canonical unit of %q: %w", p.Name, err)
	}

	material := &domain.Material{
		Name: p.Name,
		Unit: unit,
	}
	if material.MassPerUnit, err = factorFromJSON(p.MassPerUnit); err != nil {
		return nil, fmt.Errorf("could not unmarshal mass factor of %q: %w", p.Name, err)
	}
	if material.VolumePerUnit, err = factorFromJSON(p.VolumePerUnit); err != nil {
		return nil, fmt.Errorf("could not unmarshal volume factor of %q: %w", p.Name, err)
	}

	return material, nil
}

// FromDomain converts the domain representation to the database model.
func (p *PgMaterial) FromDomain(material *domain.Material) error {
	p.Name = material.Name
	p.Unit = material.Unit.Symbol()

	var err error
	if p.MassPerUnit, err = factorToJSON(material.MassPerUnit); err != nil {
		return fmt.Errorf("could not marshal mass factor of %q: %w", material.Name, err)
	}
	if p.VolumePerUnit, err = factorToJSON(material.VolumePerUnit); err != nil {
		return fmt.Errorf("could not marshal volume factor of %q: %w", material.Name, err)
	}

	return nil
}

func factorFromJSON(raw json.RawMessage) (*units.Factor, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var factor units.Factor
	if err := json.Unmarshal(raw, &factor); err != nil {
		return nil, err
	}

	return &factor, nil
}

func factorToJSON(factor *units.Factor) (json.RawMessage, error) {
	if factor == nil {
		return nil, nil
	}

	raw, err := json.Marshal(factor)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

func domainMaterialsToPg(materials []domain.Material) ([]PgMaterial, error) {
	pgMaterials := make([]PgMaterial, 0, len(materials))
	for i := range materials {
		var pgMaterial PgMaterial
		if err := pgMaterial.FromDomain(&materials[i]); err != nil {
			return nil, err
		}

		pgMaterials = append(pgMaterials, pgMaterial)
	}

	return pgMaterials, nil
}

func pgMaterialsToDomain(pgMaterials []PgMaterial) ([]domain.Material, error) {
	materials := make([]domain.Material, 0, len(pgMaterials))
	for i := range pgMaterials {
		material, err := pgMaterials[i].ToDomain()
		if err != nil {
			return nil, err
		}

		materials = append(materials, *material)
	}

	return materials, nil
}
