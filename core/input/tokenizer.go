package input

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"unitconv/core/types"
	"unitconv/internal/errors"
)

// valuePattern finds value literals. A value starts the text or follows
// whitespace, so digits inside unit text ("m2", "lbf/in2") stay in the unit.
var valuePattern = regexp.MustCompile(`(?:^|\s)(-?[0-9.][0-9./]*)`)

// Tokenize splits the left-hand side of an expression ("1yd 2ft 4.7in")
// into value/unit tokens in input order.
func Tokenize(lhs string) ([]types.ValueUnitToken, error) {
	text := strings.TrimSpace(lhs)
	matches := valuePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, errors.Parsing(fmt.Sprintf("no value/unit pair found in %q", lhs), nil).
			WithContext("input", lhs)
	}

	if leading := strings.TrimSpace(text[:matches[0][2]]); leading != "" {
		return nil, errors.Parsing(fmt.Sprintf("unexpected text before first value: %q", leading), nil).
			WithContext("input", lhs)
	}

	tokens := make([]types.ValueUnitToken, 0, len(matches))
	for i, m := range matches {
		literal := text[m[2]:m[3]]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		unit := strings.TrimSpace(text[m[3]:end])

		value, err := ParseValue(literal)
		if err != nil {
			return nil, err
		}
		if unit == "" {
			return nil, errors.Parsing(fmt.Sprintf("missing unit after value %s", literal), nil).
				WithContext("value", literal)
		}
		tokens = append(tokens, types.ValueUnitToken{Value: value, Unit: unit})
	}
	return tokens, nil
}

// ParseValue parses a decimal literal or a fraction "a/b".
func ParseValue(literal string) (float64, error) {
	terms := strings.Split(literal, "/")
	switch len(terms) {
	case 1:
		return parseTerm(literal, terms[0], "number")
	case 2:
		dividend, err := parseTerm(literal, terms[0], "dividend")
		if err != nil {
			return 0, err
		}
		divisor, err := parseTerm(literal, terms[1], "divisor")
		if err != nil {
			return 0, err
		}
		if divisor == 0 {
			return 0, errors.Parsing(fmt.Sprintf("Division by zero: %s", literal), nil).
				WithContext("value", literal)
		}
		q := dividend / divisor
		if math.IsInf(q, 0) || math.IsNaN(q) {
			return 0, errors.Parsing(fmt.Sprintf("Not a finite number: %s", literal), nil).
				WithContext("value", literal)
		}
		return q, nil
	}
	return 0, errors.Parsing(fmt.Sprintf("Not a valid fraction: %s", literal), nil).
		WithContext("value", literal)
}

func parseTerm(literal, term, role string) (float64, error) {
	d, err := decimal.NewFromString(term)
	if err != nil {
		return 0, errors.Parsing(fmt.Sprintf("Not a valid %s: %s", role, term), err).
			WithContext("value", literal)
	}
	return d.InexactFloat64(), nil
}
