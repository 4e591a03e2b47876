// Package types defines core domain types shared across all layers.
// It holds data types and their accessors, no conversion logic.
package types

import "strings"

// Family is a named group of mutually convertible units
type Family struct {
	// Name identifies the family (e.g. LENGTH, MASS)
	Name string

	// Units are the family's definitions in declaration order
	Units []*UnitDefinition
}

// UnitDefinition describes one unit of a family
type UnitDefinition struct {
	// Name is the display name
	Name string

	// Abbr is the canonical abbreviation. It is case-significant.
	Abbr string

	// Aliases are matched case-insensitively
	Aliases []string

	// Rule converts the unit. It is either Ratios or a Formula.
	Rule Conversion
}

// Conversion is the conversion rule of a unit: Ratios or Formula.
// The set of implementations is closed.
type Conversion interface {
	conversion()
}

// Ratio is the number of base units in one unit, for a regional variant.
// Variant is empty when the unit has a single definition.
type Ratio struct {
	Variant string
	Value   float64
}

// Ratios is a non-empty ordered list of variant ratios
type Ratios []Ratio

func (Ratios) conversion() {}

// Formula converts a value expressed in another unit of the same family
// into the unit owning the formula.
type Formula func(from *UnitDefinition, value float64) (float64, error)

func (Formula) conversion() {}

// Ratios returns the unit's ratios when it is ratio-based
func (u *UnitDefinition) Ratios() (Ratios, bool) {
	r, ok := u.Rule.(Ratios)
	return r, ok
}

// Formula returns the unit's formula when it is formula-based
func (u *UnitDefinition) Formula() (Formula, bool) {
	f, ok := u.Rule.(Formula)
	return f, ok
}

// PrimaryRatio is the first ratio of a ratio-based unit and 0 for formulas.
// It orders units by physical magnitude for display.
func (u *UnitDefinition) PrimaryRatio() float64 {
	if r, ok := u.Ratios(); ok && len(r) > 0 {
		return r[0].Value
	}
	return 0
}

// HasVariants reports whether the unit carries labeled regional variants
func (u *UnitDefinition) HasVariants() bool {
	r, ok := u.Ratios()
	if !ok {
		return false
	}
	for _, ratio := range r {
		if ratio.Variant != "" {
			return true
		}
	}
	return false
}

// Lookup returns the family unit with the given abbreviation
func (f *Family) Lookup(abbr string) (*UnitDefinition, bool) {
	for _, u := range f.Units {
		if u.Abbr == abbr {
			return u, true
		}
	}
	return nil, false
}

// String returns the family name
func (f *Family) String() string {
	return f.Name
}

// String returns "Name (abbr)"
func (u *UnitDefinition) String() string {
	var b strings.Builder
	b.WriteString(u.Name)
	b.WriteString(" (")
	b.WriteString(u.Abbr)
	b.WriteString(")")
	return b.String()
}
