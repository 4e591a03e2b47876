package engine

import (
	"sort"
	"strings"

	"unitconv/core/output"
	"unitconv/core/types"
	"unitconv/internal/errors"
)

// variantTotals holds base-unit totals keyed by variant label, in the order
// the labels were first seen.
type variantTotals struct {
	keys   []string
	values map[string]float64
}

func (t *variantTotals) addKey(key string) {
	if _, ok := t.values[key]; ok {
		return
	}
	t.keys = append(t.keys, key)
	t.values[key] = 0
}

// accumulate sums value × ratio per variant. Labeled ratios feed their own
// key; unlabeled ratios feed every key. With no labeled source at all there
// is a single "" key.
func accumulate(target *types.UnitDefinition, sources []types.ResolvedUnit) (*variantTotals, error) {
	totals := &variantTotals{values: make(map[string]float64)}

	for _, src := range sources {
		ratios, ok := src.Unit.Ratios()
		if !ok {
			return nil, errors.FormulaTransform(src.Unit.Abbr, target.Abbr)
		}
		for _, r := range ratios {
			if r.Variant != "" {
				totals.addKey(r.Variant)
			}
		}
	}
	if len(totals.keys) == 0 {
		totals.addKey("")
	}

	for _, src := range sources {
		ratios, _ := src.Unit.Ratios()
		for _, r := range ratios {
			contribution := src.Token.Value * r.Value
			if r.Variant != "" {
				totals.values[r.Variant] += contribution
				continue
			}
			for _, key := range totals.keys {
				totals.values[key] += contribution
			}
		}
	}

	return totals, nil
}

// sourceDisplay renders the sources as "value abbr" pairs. Tokens of the
// same unit are summed, and units are listed largest first regardless of
// input order.
func sourceDisplay(sources []types.ResolvedUnit) string {
	type component struct {
		unit  *types.UnitDefinition
		value float64
	}

	var components []*component
	byUnit := make(map[*types.UnitDefinition]*component)
	for _, src := range sources {
		c, ok := byUnit[src.Unit]
		if !ok {
			c = &component{unit: src.Unit}
			byUnit[src.Unit] = c
			components = append(components, c)
		}
		c.value += src.Token.Value
	}

	sort.SliceStable(components, func(i, j int) bool {
		return components[i].unit.PrimaryRatio() > components[j].unit.PrimaryRatio()
	})

	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = output.FormatValue(c.value) + " " + c.unit.Abbr
	}
	return strings.Join(parts, " ")
}
