// Package input - Expression parsing
// Turns a raw line such as "1yd 2ft 4.7in = cm:3" into an Expression.
// Everything downstream consumes this only.
package input

import (
	"strings"

	"unitconv/core/output"
	"unitconv/core/types"
	"unitconv/internal/errors"
)

const (
	separatorEquals = "="
	separatorTo     = " to "
	precisionMark   = ":"
)

// Expression is a parsed conversion request
type Expression struct {
	// Input is the raw line
	Input string

	// Sources are the value/unit tokens of the left-hand side
	Sources []types.ValueUnitToken

	// Target is the target unit text
	Target string

	// Precision is the effective number of decimal places
	Precision output.Precision

	// Warnings are recoverable problems, such as a rejected precision
	Warnings []error
}

// Parse parses a line with the default precision as fallback
func Parse(line string) (*Expression, error) {
	return ParseWithDefault(line, output.DefaultPrecision)
}

// ParseWithDefault parses "<sources> =|to <target>[:<precision>]".
// fallback is used when the precision directive is absent or rejected.
func ParseWithDefault(line string, fallback output.Precision) (*Expression, error) {
	lhs, rhs, err := split(line)
	if err != nil {
		return nil, err
	}

	target, directive, _ := strings.Cut(rhs, precisionMark)
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, errors.Usage("missing target unit").WithContext("input", line)
	}

	sources, err := Tokenize(lhs)
	if err != nil {
		return nil, err
	}

	expr := &Expression{
		Input:   line,
		Sources: sources,
		Target:  target,
	}

	precision, warn := output.ParsePrecision(directive, fallback)
	expr.Precision = precision
	if warn != nil {
		expr.Warnings = append(expr.Warnings, warn)
	}

	return expr, nil
}

// split separates the two sides on "=", or on " to " when there is no "="
func split(line string) (string, string, error) {
	sep := ""
	switch {
	case strings.Contains(line, separatorEquals):
		sep = separatorEquals
	case strings.Contains(line, separatorTo):
		sep = separatorTo
	default:
		return "", "", errors.NoSeparator(line)
	}

	parts := strings.Split(line, sep)
	if len(parts) != 2 {
		return "", "", errors.Usage("expected exactly one separator").
			WithContext("input", line).
			WithContext("separator", strings.TrimSpace(sep))
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
