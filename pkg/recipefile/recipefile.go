// Package recipefile loads recipe and material records from JSON
// documents. A recipe document holds either a single recipe object or
// an array of them; a materials document holds an array of material
// records. Quantities may be written as {"value": 200, "unit": "g"}
// objects or as "200 g" strings.
package recipefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"grocer/pkg/domain"
	"grocer/pkg/serrors"
)

// LoadRecipes reads every named file and returns the recipes from all
// of them, in argument order.
func LoadRecipes(paths ...string) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open recipe file: %w", err)
		}

		parsed, err := ParseRecipes(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		recipes = append(recipes, parsed...)
	}

	return recipes, nil
}

// LoadMaterials reads a materials document from the named file.
func LoadMaterials(path string) ([]domain.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open materials file: %w", err)
	}
	defer func() { _ = f.Close() }()

	materials, err := ParseMaterials(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return materials, nil
}

// ParseRecipes decodes a recipe document: either a single recipe
// object or an array of recipes.
func ParseRecipes(r io.Reader) ([]domain.Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read recipe document: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, serrors.With(serrors.ErrMalformedRecord, "empty recipe document")
	}

	var recipes []domain.Recipe
	if trimmed[0] == '[' {
		if err := json.Unmarshal(data, &recipes); err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed recipe document")
		}
	} else {
		var recipe domain.Recipe
		if err := json.Unmarshal(data, &recipe); err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed recipe document")
		}
		recipes = []domain.Recipe{recipe}
	}

	for _, recipe := range recipes {
		if err := ValidateRecipe(recipe); err != nil {
			return nil, err
		}
	}

	return recipes, nil
}

// ParseMaterials decodes a materials document: an array of material
// records.
func ParseMaterials(r io.Reader) ([]domain.Material, error) {
	var materials []domain.Material
	if err := json.NewDecoder(r).Decode(&materials); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed materials document")
	}

	for _, m := range materials {
		if m.Name == "" {
			return nil, serrors.With(serrors.ErrMalformedRecord, "material record has no name")
		}
		if m.Unit.Symbol() == "" {
			return nil, serrors.With(serrors.ErrMalformedRecord, "material %q has no unit", m.Name)
		}
	}

	return materials, nil
}

// ValidateRecipe checks that a recipe record is complete enough to
// build from: it has a name, and every ingredient has an item name and
// a quantity.
func ValidateRecipe(recipe domain.Recipe) error {
	if recipe.Name == "" {
		return serrors.With(serrors.ErrMalformedRecord, "recipe record has no name")
	}
	for i, ingredient := range recipe.Ingredients {
		if ingredient.Item == "" {
			return serrors.With(serrors.ErrMalformedRecord, "recipe %q: ingredient %d has no item", recipe.Name, i)
		}
		if ingredient.Quantity.Unit.Symbol() == "" {
			return serrors.With(serrors.ErrMalformedRecord,
				"recipe %q: ingredient %q has no quantity", recipe.Name, ingredient.Item)
		}
	}

	return nil
}
