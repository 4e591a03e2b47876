// Package resolver maps unit text to a catalog unit.
//
// Matching is tiered and deterministic:
//
//  1. exact, case-sensitive abbreviation over the whole scope
//  2. case-insensitive abbreviation, family by family
//  3. case-insensitive alias, family by family
//
// Tier 1 runs to completion before tier 2 starts, so abbreviations that
// differ only by case (bit "b", byte "B") never shadow each other.
// Within a family, tiers 2 and 3 are both tried before the next family.
package resolver

import (
	"golang.org/x/text/cases"

	"unitconv/core/catalog"
	"unitconv/core/types"
)

// Match is a resolved unit together with its family
type Match struct {
	Family *types.Family
	Unit   *types.UnitDefinition
}

// Resolver resolves unit text against a catalog. It holds no mutable state
// and may be shared between goroutines.
type Resolver struct {
	families []*indexedFamily
}

type indexedFamily struct {
	family *types.Family
	units  []indexedUnit
}

type indexedUnit struct {
	def     *types.UnitDefinition
	abbr    string
	aliases []string
}

// New indexes the catalog for resolution
func New(c *catalog.Catalog) *Resolver {
	fold := cases.Fold()
	r := &Resolver{}
	for _, f := range c.Families() {
		idx := &indexedFamily{family: f}
		for _, u := range f.Units {
			iu := indexedUnit{
				def:     u,
				abbr:    fold.String(u.Abbr),
				aliases: make([]string, len(u.Aliases)),
			}
			for i, a := range u.Aliases {
				iu.aliases[i] = fold.String(a)
			}
			idx.units = append(idx.units, iu)
		}
		r.families = append(r.families, idx)
	}
	return r
}

// Resolve matches text against every family
func (r *Resolver) Resolve(text string) (Match, bool) {
	return r.resolve(text, r.families)
}

// ResolveIn matches text against one family only. All tiers are restricted
// to that family.
func (r *Resolver) ResolveIn(text, family string) (Match, bool) {
	for _, f := range r.families {
		if f.family.Name == family {
			return r.resolve(text, []*indexedFamily{f})
		}
	}
	return Match{}, false
}

func (r *Resolver) resolve(text string, scope []*indexedFamily) (Match, bool) {
	if text == "" {
		return Match{}, false
	}

	for _, f := range scope {
		for _, u := range f.units {
			if u.def.Abbr == text {
				return Match{Family: f.family, Unit: u.def}, true
			}
		}
	}

	// Casers carry state, so each call folds with its own.
	folded := cases.Fold().String(text)
	for _, f := range scope {
		for _, u := range f.units {
			if u.abbr == folded {
				return Match{Family: f.family, Unit: u.def}, true
			}
		}
		for _, u := range f.units {
			for _, a := range u.aliases {
				if a == folded {
					return Match{Family: f.family, Unit: u.def}, true
				}
			}
		}
	}

	return Match{}, false
}
