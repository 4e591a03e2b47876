package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"go.uber.org/multierr"

	"unitconv/internal/errors"
)

func TestIsType(t *testing.T) {
	combined := multierr.Combine(
		errors.UnknownUnit("abc"),
		errors.UnknownUnit("xyz"),
	)

	tests := []struct {
		name string
		err  error
		typ  errors.Type
		want bool
	}{
		{"nil", nil, errors.TypeUsage, false},
		{"plain", stderrors.New("boom"), errors.TypeInternal, false},
		{"direct", errors.NoSeparator("5 m"), errors.TypeUsage, true},
		{"other type", errors.NoSeparator("5 m"), errors.TypeParsing, false},
		{"wrapped", fmt.Errorf("convert: %w", errors.UnknownUnit("x")), errors.TypeUnknownUnit, true},
		{"combined", combined, errors.TypeUnknownUnit, true},
		{"combined other", combined, errors.TypeFamilyMismatch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsType(tt.err, tt.typ); got != tt.want {
				t.Errorf("IsType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
		want string
	}{
		{"unknown unit", errors.UnknownUnit("parsecs"), "Unknown unit: parsecs"},
		{"mismatch", errors.FamilyMismatch("LENGTH", "MASS", "kg"), "Unit type mismatch: mixed 'LENGTH' with 'MASS'"},
		{"compound", errors.FormulaCompound("°F", 2), "Compound values cannot be converted to °F"},
		{"transform", errors.FormulaTransform("K", "m"), "No conversion from K to m"},
		{"precision", errors.Precision("-1", 2, "negative"), "Not a valid precision: -1 (negative, using 2 instead)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Message != tt.want {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("bad digit")
	err := errors.Parsing("Not a valid number: 1x", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected Parsing error to unwrap to its cause")
	}
	if got, want := err.Error(), "[PARSING_ERROR] Not a valid number: 1x: bad digit"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithContext(t *testing.T) {
	err := errors.UnknownUnitInFamily("abc", "LENGTH")

	if err.Context["unit"] != "abc" {
		t.Errorf("unit context = %v, want abc", err.Context["unit"])
	}
	if err.Context["family"] != "LENGTH" {
		t.Errorf("family context = %v, want LENGTH", err.Context["family"])
	}
	if !err.Is(errors.TypeUnknownUnit) {
		t.Errorf("Type = %s, want %s", err.Type, errors.TypeUnknownUnit)
	}
}

func TestAs(t *testing.T) {
	if _, ok := errors.As(stderrors.New("plain")); ok {
		t.Error("As() matched a plain error")
	}

	de, ok := errors.As(fmt.Errorf("wrapped: %w", errors.Usage("missing target unit")))
	if !ok {
		t.Fatal("As() did not find the domain error")
	}
	if de.Type != errors.TypeUsage {
		t.Errorf("Type = %s, want %s", de.Type, errors.TypeUsage)
	}
}
