package engine

import (
	"testing"

	"unitconv/core/types"
)

func resolved(value float64, u *types.UnitDefinition) types.ResolvedUnit {
	return types.ResolvedUnit{Token: types.ValueUnitToken{Value: value, Unit: u.Abbr}, Unit: u}
}

func TestAccumulate(t *testing.T) {
	meter := &types.UnitDefinition{Name: "Meter", Abbr: "m", Rule: types.Ratios{{Value: 1}}}
	league := &types.UnitDefinition{Name: "League", Abbr: "lea", Rule: types.Ratios{
		{Variant: "Old", Value: 100},
		{Variant: "New", Value: 200},
	}}
	span := &types.UnitDefinition{Name: "Span", Abbr: "sp", Rule: types.Ratios{
		{Variant: "New", Value: 10},
		{Variant: "Local", Value: 20},
	}}

	tests := []struct {
		name    string
		sources []types.ResolvedUnit
		keys    []string
		values  map[string]float64
	}{
		{
			name:    "unlabeled only",
			sources: []types.ResolvedUnit{resolved(2, meter), resolved(3, meter)},
			keys:    []string{""},
			values:  map[string]float64{"": 5},
		},
		{
			name:    "unlabeled broadcast",
			sources: []types.ResolvedUnit{resolved(1, meter), resolved(1, league)},
			keys:    []string{"Old", "New"},
			values:  map[string]float64{"Old": 101, "New": 201},
		},
		{
			name:    "label union in first-seen order",
			sources: []types.ResolvedUnit{resolved(1, league), resolved(1, span)},
			keys:    []string{"Old", "New", "Local"},
			values:  map[string]float64{"Old": 100, "New": 210, "Local": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := accumulate(meter, tt.sources)
			if err != nil {
				t.Fatalf("accumulate() error = %v", err)
			}
			if len(totals.keys) != len(tt.keys) {
				t.Fatalf("keys = %v, want %v", totals.keys, tt.keys)
			}
			for i, k := range tt.keys {
				if totals.keys[i] != k {
					t.Errorf("key %d = %q, want %q", i, totals.keys[i], k)
				}
				if totals.values[k] != tt.values[k] {
					t.Errorf("total[%q] = %v, want %v", k, totals.values[k], tt.values[k])
				}
			}
		})
	}
}

func TestSourceDisplay(t *testing.T) {
	foot := &types.UnitDefinition{Name: "Foot", Abbr: "ft", Rule: types.Ratios{{Value: 0.3048}}}
	inch := &types.UnitDefinition{Name: "Inch", Abbr: "in", Rule: types.Ratios{{Value: 0.0254}}}
	yard := &types.UnitDefinition{Name: "Yard", Abbr: "yd", Rule: types.Ratios{{Value: 0.9144}}}

	got := sourceDisplay([]types.ResolvedUnit{
		resolved(1, inch), resolved(2, foot), resolved(0.5, yard), resolved(2, inch),
	})
	if want := "0.5 yd 2 ft 3 in"; got != want {
		t.Errorf("sourceDisplay() = %q, want %q", got, want)
	}
}
