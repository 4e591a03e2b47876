// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
	"math"

	"unitconv/core/types"
)

// ValidationRule is a unit validation rule
type ValidationRule func(*types.Family, *types.UnitDefinition) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateIdentity,
		validateRule,
		validateVariantLabels,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	for _, f := range c.families {
		if len(f.Units) == 0 {
			errors = append(errors, fmt.Errorf("%s: family has no units", f.Name))
		}
		seen := make(map[string]bool, len(f.Units))
		for _, u := range f.Units {
			if seen[u.Abbr] {
				errors = append(errors, fmt.Errorf("%s:%s: duplicate abbreviation", f.Name, u.Abbr))
			}
			seen[u.Abbr] = true

			for _, rule := range rules {
				if err := rule(f, u); err != nil {
					errors = append(errors, fmt.Errorf("%s:%s: %w", f.Name, u.Abbr, err))
				}
			}
		}
	}

	return errors
}

// validateIdentity ensures a unit can be named and displayed
func validateIdentity(_ *types.Family, u *types.UnitDefinition) error {
	if u.Name == "" {
		return fmt.Errorf("unit has no name")
	}
	if u.Abbr == "" {
		return fmt.Errorf("unit has no abbreviation")
	}
	return nil
}

// validateRule ensures a unit has exactly one usable conversion rule
func validateRule(_ *types.Family, u *types.UnitDefinition) error {
	switch rule := u.Rule.(type) {
	case types.Ratios:
		if len(rule) == 0 {
			return fmt.Errorf("ratio-based unit has no ratios")
		}
		for _, r := range rule {
			if r.Value <= 0 || math.IsInf(r.Value, 0) || math.IsNaN(r.Value) {
				return fmt.Errorf("ratio %v is not a positive finite number", r.Value)
			}
		}
	case types.Formula:
		if rule == nil {
			return fmt.Errorf("formula-based unit has a nil formula")
		}
	case nil:
		return fmt.Errorf("unit has neither ratios nor a formula")
	default:
		return fmt.Errorf("unsupported conversion rule %T", rule)
	}
	return nil
}

// validateVariantLabels ensures multi-ratio units label every variant once
func validateVariantLabels(_ *types.Family, u *types.UnitDefinition) error {
	ratios, ok := u.Ratios()
	if !ok || len(ratios) < 2 {
		return nil
	}
	seen := make(map[string]bool, len(ratios))
	for _, r := range ratios {
		if r.Variant == "" {
			return fmt.Errorf("unit with %d ratios has an unlabeled variant", len(ratios))
		}
		if seen[r.Variant] {
			return fmt.Errorf("duplicate variant %q", r.Variant)
		}
		seen[r.Variant] = true
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Printf("Catalog validation error: %v\n", err)
		}
		panic(fmt.Sprintf("Catalog has %d validation errors", len(errors)))
	}
}
