// Package units implements the measurement algebra used throughout the
// application: physical dimensions, linear units, quantities and
// per-unit conversion factors. All supported units are purely
// multiplicative (no affine scales such as temperature), so converting
// between two units of the same dimension is a single scalar rescale.
//
// Values of every type in this package are immutable: operations return
// fresh values and never mutate their receivers, which keeps quantities
// safe to share across recipe merges.
package units

import (
	"strings"

	"grocer/pkg/serrors"
)

// Dimension is the physical category of a quantity. It determines which
// units a quantity can be expressed in and which quantities it can be
// summed with.
type Dimension int

const (
	// DimensionMass covers weight-style units such as grams and pounds.
	DimensionMass Dimension = iota
	// DimensionVolume covers capacity-style units such as milliliters and cups.
	DimensionVolume
	// DimensionCount covers discrete units such as pieces and dozens.
	DimensionCount
)

// String returns a lower-case human-readable name for the dimension.
func (d Dimension) String() string {
	switch d {
	case DimensionMass:
		return "mass"
	case DimensionVolume:
		return "volume"
	case DimensionCount:
		return "count"
	default:
		return "unknown"
	}
}

// Unit is a named linear measurement unit tied to a single dimension.
// The zero value is not a valid unit; obtain units via Parse or the
// package-level unit variables.
type Unit struct {
	symbol string
	dim    Dimension
	// scale is the number of base units (grams, milliliters or pieces)
	// that one of this unit represents.
	scale float64
}

// Symbol returns the canonical identifier of the unit, e.g. "g" or "cup".
func (u Unit) Symbol() string { return u.symbol }

// Dimension returns the physical dimension the unit measures.
func (u Unit) Dimension() Dimension { return u.dim }

// String implements fmt.Stringer using the canonical symbol.
func (u Unit) String() string { return u.symbol }

// Mass units. The base unit is the gram; scales follow the
// international avoirdupois definitions.
var (
	Milligram = Unit{symbol: "mg", dim: DimensionMass, scale: 0.001}
	Gram      = Unit{symbol: "g", dim: DimensionMass, scale: 1}
	Kilogram  = Unit{symbol: "kg", dim: DimensionMass, scale: 1000}
	Ounce     = Unit{symbol: "oz", dim: DimensionMass, scale: 28.349523125}
	Pound     = Unit{symbol: "lb", dim: DimensionMass, scale: 453.59237}
)

// Volume units. The base unit is the milliliter; US customary kitchen
// measures use the US liquid definitions (1 cup = 236.5882365 mL).
var (
	Milliliter = Unit{symbol: "mL", dim: DimensionVolume, scale: 1}
	Liter      = Unit{symbol: "L", dim: DimensionVolume, scale: 1000}
	Teaspoon   = Unit{symbol: "tsp", dim: DimensionVolume, scale: 4.92892159375}
	Tablespoon = Unit{symbol: "tbsp", dim: DimensionVolume, scale: 14.78676478125}
	FluidOunce = Unit{symbol: "floz", dim: DimensionVolume, scale: 29.5735295625}
	Cup        = Unit{symbol: "cup", dim: DimensionVolume, scale: 236.5882365}
	Pint       = Unit{symbol: "pint", dim: DimensionVolume, scale: 473.176473}
	Quart      = Unit{symbol: "quart", dim: DimensionVolume, scale: 946.352946}
	Gallon     = Unit{symbol: "gallon", dim: DimensionVolume, scale: 3785.411784}
)

// Count units. The base unit is a single piece.
var (
	Count = Unit{symbol: "count", dim: DimensionCount, scale: 1}
	Dozen = Unit{symbol: "dozen", dim: DimensionCount, scale: 12}
)

// all lists every defined unit; the alias index below is derived from it.
var all = []Unit{ //nolint: gochecknoglobals
	Milligram, Gram, Kilogram, Ounce, Pound,
	Milliliter, Liter, Teaspoon, Tablespoon, FluidOunce, Cup, Pint, Quart, Gallon,
	Count, Dozen,
}

// aliases maps additional spellings to canonical symbols. Lookups are
// case-insensitive, so only lower-case keys appear here.
var aliases = map[string]string{ //nolint: gochecknoglobals
	"milligram": "mg", "milligrams": "mg",
	"gram": "g", "grams": "g",
	"kilogram": "kg", "kilograms": "kg",
	"ounce": "oz", "ounces": "oz",
	"lbs": "lb", "pound": "lb", "pounds": "lb",
	"milliliter": "mL", "milliliters": "mL", "millilitre": "mL", "millilitres": "mL",
	"liter": "L", "liters": "L", "litre": "L", "litres": "L",
	"teaspoon": "tsp", "teaspoons": "tsp",
	"tablespoon": "tbsp", "tablespoons": "tbsp",
	"fl oz": "floz", "fl_oz": "floz", "fluid ounce": "floz", "fluid ounces": "floz",
	"cups": "cup",
	"pt":   "pint", "pints": "pint",
	"qt": "quart", "quarts": "quart",
	"gal": "gallon", "gallons": "gallon",
	"piece": "count", "pieces": "count", "pc": "count", "each": "count", "ea": "count",
	"doz": "dozen",
}

// bySymbol indexes all units by their lower-cased canonical symbol.
var bySymbol = func() map[string]Unit { //nolint: gochecknoglobals
	m := make(map[string]Unit, len(all))
	for _, u := range all {
		m[strings.ToLower(u.symbol)] = u
	}

	return m
}()

// Parse resolves a unit identifier to a known unit. Identifiers are
// matched case-insensitively against canonical symbols ("g", "mL",
// "cup") and common long-form aliases ("grams", "tablespoons").
// Unknown identifiers yield an ErrInvalidUnit error.
func Parse(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := aliases[key]; ok {
		key = strings.ToLower(canonical)
	}
	if u, ok := bySymbol[key]; ok {
		return u, nil
	}

	return Unit{}, serrors.With(serrors.ErrInvalidUnit, "unknown unit %q", s)
}

// MustParse is a Parse variant for tests and static tables; it panics on
// unknown identifiers.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// ParseRatio resolves a ratio-form unit identifier such as "cup/g" or
// "g/count" into its numerator and denominator units. Conversion
// factors are always stated per one denominator unit, so the identifier
// must contain exactly one slash; bare units are rejected with
// ErrInvalidUnit.
func ParseRatio(s string) (num, den Unit, err error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return Unit{}, Unit{}, serrors.With(serrors.ErrInvalidUnit,
			"unit %q is not a ratio, expected a \"<unit>/<unit>\" identifier", s)
	}
	if num, err = Parse(numStr); err != nil {
		return Unit{}, Unit{}, err
	}
	if den, err = Parse(denStr); err != nil {
		return Unit{}, Unit{}, err
	}

	return num, den, nil
}
