package domain

import (
	"grocer/pkg/units"
)

// Material describes how a single grocery item is measured. Every
// material declares the canonical unit its quantities are consolidated
// into, plus the conversion factors needed to bring measurements from
// other dimensions into that unit.
type Material struct {
	// Name is the unique display name of the material, e.g. "Flour".
	// Ingredient entries are matched to materials by this name.
	Name string `json:"name"`

	// Unit is the canonical unit all quantities of this material are
	// expressed in after regularization, e.g. grams for flour.
	Unit units.Unit `json:"unit"`

	// MassPerUnit is the mass of one canonical unit, e.g. 50 g/count
	// for an egg. It converts mass-dimension measurements into the
	// canonical unit; nil means such measurements cannot be converted.
	MassPerUnit *units.Factor `json:"massPerUnit,omitempty"`

	// VolumePerUnit is the volume of one canonical unit, e.g.
	// 0.002 cup/g for flour. It converts volume-dimension measurements
	// into the canonical unit; nil means such measurements cannot be
	// converted.
	VolumePerUnit *units.Factor `json:"volumePerUnit,omitempty"`
}
