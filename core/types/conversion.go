package types

import "fmt"

// ValueUnitToken is one value and the unit text written after it
type ValueUnitToken struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// ResolvedUnit is a token bound to a catalog unit
type ResolvedUnit struct {
	Token  ValueUnitToken
	Family *Family
	Unit   *UnitDefinition
}

// ConversionResult is one output row of a conversion
type ConversionResult struct {
	// Family is the family name
	Family string `json:"family" yaml:"family"`

	// Source renders the combined source components, largest unit first
	Source string `json:"source" yaml:"source"`

	// SourceVariant labels the regional total the row was computed from
	SourceVariant string `json:"source_variant,omitempty" yaml:"source_variant,omitempty"`

	// Value is the formatted result
	Value string `json:"value" yaml:"value"`

	// Raw is the unrounded result
	Raw float64 `json:"raw" yaml:"raw"`

	// Unit is the target abbreviation
	Unit string `json:"unit" yaml:"unit"`

	// TargetVariant labels the target ratio used
	TargetVariant string `json:"target_variant,omitempty" yaml:"target_variant,omitempty"`
}

// String renders "[FAMILY] source (variant) = value unit (variant)"
func (r ConversionResult) String() string {
	return fmt.Sprintf("[%s] %s%s = %s %s%s",
		r.Family,
		r.Source, variantSuffix(r.SourceVariant),
		r.Value,
		r.Unit, variantSuffix(r.TargetVariant))
}

func variantSuffix(v string) string {
	if v == "" {
		return ""
	}
	return " (" + v + ")"
}
