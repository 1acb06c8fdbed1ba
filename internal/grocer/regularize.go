package grocer

import (
	"context"
	"fmt"

	"grocer/pkg/domain"
	"grocer/pkg/serrors"
	"grocer/pkg/units"
)

// Regularize converts an ingredient entry into its material's canonical
// unit. Measurements already in the canonical dimension are converted
// directly; mass and volume measurements are divided by the material's
// matching per-unit factor first. Ingredients the catalog does not know
// get a pass-through material synthesized on the spot.
func (c *Catalog) Regularize(ctx context.Context, entry domain.IngredientEntry) (domain.IngredientEntry, error) {
	material, ok := c.Lookup(entry.Item)
	if !ok {
		material = c.Synthesize(ctx, entry.Item, entry.Quantity.Unit)
	}

	regularized, err := regularizeQuantity(entry.Quantity, material)
	if err != nil {
		return domain.IngredientEntry{}, fmt.Errorf("could not regularize %q: %w", entry.Item, err)
	}

	return domain.IngredientEntry{Item: entry.Item, Quantity: regularized}, nil
}

func regularizeQuantity(q units.Quantity, material domain.Material) (units.Quantity, error) {
	dim := q.Dimension()
	if dim == material.Unit.Dimension() {
		return q.ConvertTo(material.Unit)
	}

	var factor *units.Factor
	switch dim {
	case units.DimensionMass:
		factor = material.MassPerUnit
	case units.DimensionVolume:
		factor = material.VolumePerUnit
	}
	if factor == nil {
		return units.Quantity{}, serrors.With(serrors.ErrUnregularizable,
			"material %q has no conversion from %s into its canonical unit %s",
			material.Name, dim, material.Unit)
	}

	divided, err := q.DivideBy(*factor)
	if err != nil {
		return units.Quantity{}, err
	}

	// The factor's denominator shares a dimension with the canonical
	// unit but need not be it, e.g. a cup/g factor on a kg material.
	return divided.ConvertTo(material.Unit)
}
