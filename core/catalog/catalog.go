// Package catalog - Authoritative unit catalog
// Defines the physical-quantity families and their unit definitions.
// The catalog is built once and never mutated afterwards.
package catalog

import (
	"strings"
	"sync"

	"unitconv/core/types"
)

// Catalog is the ordered table of unit families
type Catalog struct {
	families []*types.Family
	byName   map[string]*types.Family
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]*types.Family),
	}
}

// Register appends units to a family, creating it on first use.
// Declaration order of families and units is preserved.
func (c *Catalog) Register(family string, units ...*types.UnitDefinition) {
	f, ok := c.byName[family]
	if !ok {
		f = &types.Family{Name: family}
		c.byName[family] = f
		c.families = append(c.families, f)
	}
	f.Units = append(f.Units, units...)
}

// Families returns the families in declaration order
func (c *Catalog) Families() []*types.Family {
	result := make([]*types.Family, len(c.families))
	copy(result, c.families)
	return result
}

// Family returns a family by name, ignoring case
func (c *Catalog) Family(name string) (*types.Family, bool) {
	if f, ok := c.byName[name]; ok {
		return f, true
	}
	for _, f := range c.families {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return nil, false
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	stats := Stats{
		ByFamily: make(map[string]int, len(c.families)),
	}

	for _, f := range c.families {
		stats.Families++
		stats.ByFamily[f.Name] = len(f.Units)
		for _, u := range f.Units {
			stats.Units++
			switch rule := u.Rule.(type) {
			case types.Ratios:
				if len(rule) > 1 {
					stats.WithVariants++
				}
			case types.Formula:
				stats.FormulaBased++
			}
		}
	}

	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Families     int
	Units        int
	WithVariants int
	FormulaBased int
	ByFamily     map[string]int
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the process-wide catalog with every built-in family.
// It is built on first use and is safe to share between goroutines.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c := NewCatalog()
		RegisterAll(c)
		c.MustValidate()
		defaultCatalog = c
	})
	return defaultCatalog
}

// RegisterAll registers the built-in families in their canonical order
func RegisterAll(c *Catalog) {
	RegisterArea(c)
	RegisterDigitalStorage(c)
	RegisterEnergy(c)
	RegisterFrequency(c)
	RegisterLength(c)
	RegisterMass(c)
	RegisterPlaneAngle(c)
	RegisterPressure(c)
	RegisterTemperature(c)
	RegisterTime(c)
	RegisterVolume(c)
}

// unit builds a single-ratio unit
func unit(name, abbr string, ratio float64, aliases ...string) *types.UnitDefinition {
	return &types.UnitDefinition{
		Name:    name,
		Abbr:    abbr,
		Aliases: aliases,
		Rule:    types.Ratios{{Value: ratio}},
	}
}

// regional builds a unit with labeled regional variants
func regional(name, abbr string, aliases []string, ratios ...types.Ratio) *types.UnitDefinition {
	return &types.UnitDefinition{
		Name:    name,
		Abbr:    abbr,
		Aliases: aliases,
		Rule:    types.Ratios(ratios),
	}
}

// formula builds a formula-based unit
func formula(name, abbr string, f types.Formula, aliases ...string) *types.UnitDefinition {
	return &types.UnitDefinition{
		Name:    name,
		Abbr:    abbr,
		Aliases: aliases,
		Rule:    f,
	}
}

func variant(label string, ratio float64) types.Ratio {
	return types.Ratio{Variant: label, Value: ratio}
}
