package grocer

import (
	"context"
	"fmt"
	"sort"

	"grocer/pkg/domain"
	"grocer/pkg/logger"
	"grocer/pkg/serrors"
	"grocer/pkg/units"

	"go.uber.org/zap"
)

// Catalog resolves ingredient names to materials for the duration of a
// single build. Names are matched exactly; unknown names are admitted
// via Synthesize rather than rejected.
type Catalog struct {
	materials map[string]domain.Material
}

// NewCatalog indexes the given materials by name. When the same name
// appears more than once the last record wins and a warning is logged.
func NewCatalog(ctx context.Context, materials []domain.Material) *Catalog {
	c := &Catalog{materials: make(map[string]domain.Material, len(materials))}
	for _, m := range materials {
		if _, ok := c.materials[m.Name]; ok {
			logger.Warn(ctx, "duplicate material record, keeping the later one", zap.String("material", m.Name))
		}
		c.materials[m.Name] = m
	}

	return c
}

// Lookup returns the material registered under the given name.
func (c *Catalog) Lookup(name string) (domain.Material, bool) {
	m, ok := c.materials[name]

	return m, ok
}

// Synthesize registers a pass-through material for an ingredient the
// catalog does not know: its canonical unit is the unit the ingredient
// was measured in, and it carries no conversion factors. Later lookups
// of the same name during this build hit the synthesized record.
func (c *Catalog) Synthesize(ctx context.Context, name string, unit units.Unit) domain.Material {
	logger.Info(ctx, "material not in catalog, synthesizing a pass-through record",
		zap.String("material", name),
		zap.String("unit", unit.Symbol()))

	m := domain.Material{Name: name, Unit: unit}
	c.materials[name] = m

	return m
}

// Materials returns a name-ordered snapshot of the catalog, including
// any materials synthesized so far.
func (c *Catalog) Materials() []domain.Material {
	out := make([]domain.Material, 0, len(c.materials))
	for _, m := range c.materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// CheckFactors validates every material in the catalog and returns one
// error per problem found, in name order. An empty result means every
// conversion factor is usable.
func (c *Catalog) CheckFactors() []error {
	var errs []error
	for _, m := range c.Materials() {
		if err := ValidateMaterial(m); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// ValidateMaterial checks that a material record is complete and that
// its conversion factors can actually bring measurements into the
// canonical unit.
func ValidateMaterial(m domain.Material) error {
	if m.Name == "" {
		return serrors.With(serrors.ErrMalformedRecord, "material record has no name")
	}
	if m.Unit.Symbol() == "" {
		return serrors.With(serrors.ErrMalformedRecord, "material %q has no canonical unit", m.Name)
	}

	if m.MassPerUnit != nil {
		if err := validateFactor(m, *m.MassPerUnit, units.DimensionMass); err != nil {
			return err
		}
	}
	if m.VolumePerUnit != nil {
		if err := validateFactor(m, *m.VolumePerUnit, units.DimensionVolume); err != nil {
			return err
		}
	}

	return nil
}

func validateFactor(m domain.Material, f units.Factor, want units.Dimension) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("material %q: %w", m.Name, err)
	}
	if f.Num.Dimension() != want {
		return serrors.With(serrors.ErrMalformedRecord,
			"material %q: factor %s does not measure %s", m.Name, f, want)
	}
	if f.Den.Dimension() != m.Unit.Dimension() {
		return serrors.With(serrors.ErrMalformedRecord,
			"material %q: factor %s is not per canonical unit %s", m.Name, f, m.Unit)
	}

	return nil
}
