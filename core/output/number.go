package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"unitconv/internal/errors"
)

const (
	// DefaultPrecision is used when no precision directive is given
	DefaultPrecision Precision = 2

	// MaxPrecision is the largest number of decimal places rendered
	MaxPrecision Precision = 14

	// MaxDirective selects MaxPrecision
	MaxDirective = "*"
)

// Precision is a number of decimal places in [0, MaxPrecision]
type Precision int

// Clamp limits p to [0, MaxPrecision]
func (p Precision) Clamp() Precision {
	if p < 0 {
		return 0
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// ParsePrecision interprets a precision directive. An empty directive
// selects the default and "*" selects the maximum. A rejected directive
// still yields a usable precision, alongside a warning explaining the
// substitution.
func ParsePrecision(directive string, fallback Precision) (Precision, error) {
	directive = strings.TrimSpace(directive)
	fallback = fallback.Clamp()

	switch directive {
	case "":
		return fallback, nil
	case MaxDirective:
		return MaxPrecision, nil
	}

	n, err := strconv.Atoi(directive)
	if err != nil {
		return fallback, errors.Precision(directive, int(fallback), "not an integer")
	}
	if n < 0 {
		return fallback, errors.Precision(directive, int(fallback), "negative")
	}
	if Precision(n) > MaxPrecision {
		return MaxPrecision, errors.Precision(directive, int(MaxPrecision), "above maximum")
	}
	return Precision(n), nil
}

// FormatNumber rounds v half away from zero to p decimal places and renders
// it without trailing zeros.
func FormatNumber(v float64, p Precision) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", errors.Newf(errors.TypeParsing, "value %v is not a finite number", v)
	}
	return decimal.NewFromFloat(v).Round(int32(p.Clamp())).String(), nil
}

// FormatValue renders a source value exactly as parsed, for display.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}
