package grocer_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"grocer/internal/grocer"
	"grocer/pkg/domain"
	"grocer/pkg/serrors"
	"grocer/pkg/units"
)

func TestBuildConsolidatesAcrossRecipes(t *testing.T) {
	materials := []domain.Material{flour(), eggs(), milk()}
	recipes := []domain.Recipe{
		{
			Name: "Pancakes",
			Ingredients: []domain.IngredientEntry{
				entry("Flour", 200, units.Gram),
				entry("Eggs", 2, units.Count),
				entry("Milk", 1, units.Cup),
			},
		},
		{
			Name: "Bread",
			Ingredients: []domain.IngredientEntry{
				entry("Flour", 1, units.Cup),
				entry("Eggs", 100, units.Gram),
			},
		},
	}

	got, err := grocer.Build(context.Background(), materials, recipes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A cup of flour is 500 g, a 100 g of eggs is 2 eggs, a cup of milk
	// is 236.5882365 mL.
	want := []domain.IngredientEntry{
		entry("Eggs", 4, units.Count),
		entry("Flour", 700, units.Gram),
		entry("Milk", 236.5882365, units.Milliliter),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Item != want[i].Item || got[i].Quantity.Unit != want[i].Quantity.Unit ||
			math.Abs(got[i].Quantity.Value-want[i].Quantity.Value) > 1e-9 {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildSynthesizesUnknownMaterials(t *testing.T) {
	recipes := []domain.Recipe{
		{
			Name: "Paella",
			Ingredients: []domain.IngredientEntry{
				entry("Saffron", 2, units.Teaspoon),
			},
		},
		{
			Name: "Risotto",
			Ingredients: []domain.IngredientEntry{
				entry("Saffron", 1, units.Tablespoon),
			},
		},
	}

	got, err := grocer.Build(context.Background(), nil, recipes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %+v", got)
	}

	// The first sighting fixes the canonical unit; a tablespoon is
	// three teaspoons.
	if got[0].Quantity.Unit != units.Teaspoon {
		t.Fatalf("expected teaspoons, got %s", got[0].Quantity.Unit)
	}
	if math.Abs(got[0].Quantity.Value-5) > 1e-9 {
		t.Fatalf("expected 5 tsp, got %v", got[0].Quantity)
	}
}

func TestBuildAbortsOnUnregularizable(t *testing.T) {
	honey := domain.Material{Name: "Honey", Unit: units.Gram}
	recipes := []domain.Recipe{
		{
			Name: "Granola",
			Ingredients: []domain.IngredientEntry{
				entry("Honey", 2, units.Tablespoon),
				entry("Oats", 300, units.Gram),
			},
		},
	}

	got, err := grocer.Build(context.Background(), []domain.Material{honey}, recipes)
	if err == nil {
		t.Fatalf("expected error for a volume of honey without a volume factor")
	}
	if !errors.Is(err, serrors.ErrUnregularizable) {
		t.Fatalf("expected ErrUnregularizable, got %v", err)
	}
	if got != nil {
		t.Fatalf("no partial list should be returned, got %+v", got)
	}
}

func TestBuildRejectsCountForMassMaterial(t *testing.T) {
	recipes := []domain.Recipe{
		{
			Name: "Cake",
			Ingredients: []domain.IngredientEntry{
				entry("Flour", 2, units.Count),
			},
		},
	}

	_, err := grocer.Build(context.Background(), []domain.Material{flour()}, recipes)
	if !errors.Is(err, serrors.ErrUnregularizable) {
		t.Fatalf("expected ErrUnregularizable, got %v", err)
	}
}

func TestBuildFactorDenominatorConverted(t *testing.T) {
	// The factor lands on grams but the canonical unit is kilograms.
	f := units.Factor{Value: 0.002, Num: units.Cup, Den: units.Gram}
	bulkFlour := domain.Material{Name: "Flour", Unit: units.Kilogram, VolumePerUnit: &f}

	recipes := []domain.Recipe{
		{
			Name: "Batch",
			Ingredients: []domain.IngredientEntry{
				entry("Flour", 2, units.Cup),
			},
		},
	}

	got, err := grocer.Build(context.Background(), []domain.Material{bulkFlour}, recipes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Quantity.Unit != units.Kilogram || math.Abs(got[0].Quantity.Value-1) > 1e-9 {
		t.Fatalf("expected 1 kg, got %v", got[0].Quantity)
	}
}

func TestBuildEmptyRecipes(t *testing.T) {
	got, err := grocer.Build(context.Background(), []domain.Material{flour()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}
