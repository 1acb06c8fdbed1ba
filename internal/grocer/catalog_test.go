package grocer_test

import (
	"context"
	"errors"
	"testing"

	"grocer/internal/grocer"
	"grocer/pkg/domain"
	"grocer/pkg/serrors"
	"grocer/pkg/units"
)

// flour is measured in grams; a cup of it weighs 500 g.
func flour() domain.Material {
	f := units.Factor{Value: 0.002, Num: units.Cup, Den: units.Gram}

	return domain.Material{Name: "Flour", Unit: units.Gram, VolumePerUnit: &f}
}

// eggs are counted; one weighs 50 g.
func eggs() domain.Material {
	f := units.Factor{Value: 50, Num: units.Gram, Den: units.Count}

	return domain.Material{Name: "Eggs", Unit: units.Count, MassPerUnit: &f}
}

// milk is measured in milliliters and only ever arrives as a volume.
func milk() domain.Material {
	return domain.Material{Name: "Milk", Unit: units.Milliliter}
}

func TestCatalogLookup(t *testing.T) {
	c := grocer.NewCatalog(context.Background(), []domain.Material{flour(), eggs()})

	m, ok := c.Lookup("Flour")
	if !ok || m.Name != "Flour" {
		t.Fatalf("expected to find Flour, got %+v ok=%v", m, ok)
	}
	if _, ok := c.Lookup("flour"); ok {
		t.Fatalf("lookup should be case-sensitive")
	}
	if _, ok := c.Lookup("Butter"); ok {
		t.Fatalf("did not expect to find Butter")
	}
}

func TestCatalogDuplicateKeepsLast(t *testing.T) {
	first := flour()
	second := flour()
	second.VolumePerUnit = &units.Factor{Value: 0.004, Num: units.Cup, Den: units.Gram}

	c := grocer.NewCatalog(context.Background(), []domain.Material{first, second})

	m, ok := c.Lookup("Flour")
	if !ok {
		t.Fatalf("expected to find Flour")
	}
	if m.VolumePerUnit.Value != 0.004 {
		t.Fatalf("expected the later record to win, got factor %v", m.VolumePerUnit.Value)
	}
}

func TestCatalogSynthesize(t *testing.T) {
	c := grocer.NewCatalog(context.Background(), nil)

	m := c.Synthesize(context.Background(), "Saffron", units.Teaspoon)
	if m.Name != "Saffron" || m.Unit != units.Teaspoon {
		t.Fatalf("unexpected synthesized material: %+v", m)
	}
	if m.MassPerUnit != nil || m.VolumePerUnit != nil {
		t.Fatalf("synthesized materials must not carry factors")
	}

	got, ok := c.Lookup("Saffron")
	if !ok || got.Unit != units.Teaspoon {
		t.Fatalf("synthesized material should be registered, got %+v ok=%v", got, ok)
	}
}

func TestCatalogMaterialsSorted(t *testing.T) {
	c := grocer.NewCatalog(context.Background(), []domain.Material{milk(), flour(), eggs()})

	ms := c.Materials()
	if len(ms) != 3 {
		t.Fatalf("expected 3 materials, got %d", len(ms))
	}
	for i, want := range []string{"Eggs", "Flour", "Milk"} {
		if ms[i].Name != want {
			t.Errorf("materials[%d] = %q, want %q", i, ms[i].Name, want)
		}
	}
}

func TestValidateMaterial(t *testing.T) {
	cases := []struct {
		name     string
		material func() domain.Material
		ok       bool
	}{
		{name: "volume factor", material: flour, ok: true},
		{name: "mass factor", material: eggs, ok: true},
		{name: "no factors", material: milk, ok: true},
		{
			name: "missing name",
			material: func() domain.Material {
				m := flour()
				m.Name = ""

				return m
			},
		},
		{
			name: "missing canonical unit",
			material: func() domain.Material {
				m := flour()
				m.Unit = units.Unit{}

				return m
			},
		},
		{
			name: "zero factor value",
			material: func() domain.Material {
				m := flour()
				m.VolumePerUnit = &units.Factor{Value: 0, Num: units.Cup, Den: units.Gram}

				return m
			},
		},
		{
			name: "mass factor does not measure mass",
			material: func() domain.Material {
				m := eggs()
				m.MassPerUnit = &units.Factor{Value: 1, Num: units.Cup, Den: units.Count}

				return m
			},
		},
		{
			name: "factor not per canonical unit",
			material: func() domain.Material {
				m := flour()
				m.VolumePerUnit = &units.Factor{Value: 1, Num: units.Cup, Den: units.Count}

				return m
			},
		},
	}

	for _, tc := range cases {
		err := grocer.ValidateMaterial(tc.material())
		if tc.ok {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)
			}

			continue
		}
		if err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		} else if !errors.Is(err, serrors.ErrMalformedRecord) {
			t.Errorf("%s: expected ErrMalformedRecord, got %v", tc.name, err)
		}
	}
}

func TestCheckFactors(t *testing.T) {
	bad := flour()
	bad.Name = "Cement"
	bad.VolumePerUnit = &units.Factor{Value: -1, Num: units.Cup, Den: units.Gram}

	c := grocer.NewCatalog(context.Background(), []domain.Material{flour(), bad, eggs()})

	errs := c.CheckFactors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one problem, got %d: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], serrors.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", errs[0])
	}
}
