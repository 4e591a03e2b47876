// Package engine provides the unit conversion engine.
// CLI and batch processing are thin wrappers around this engine.
package engine

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"unitconv/core/catalog"
	"unitconv/core/input"
	"unitconv/core/output"
	"unitconv/core/resolver"
	"unitconv/core/types"
	"unitconv/internal/errors"
	"unitconv/internal/logging"
)

// Engine converts values between units of one family.
// It holds no mutable state and may be shared between goroutines.
type Engine struct {
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
	config   Config
}

// Config configures the conversion engine
type Config struct {
	// DefaultPrecision applies when an expression has no precision directive
	DefaultPrecision output.Precision
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		DefaultPrecision: output.DefaultPrecision,
	}
}

// New creates an engine over a catalog
func New(c *catalog.Catalog, cfg Config) *Engine {
	return &Engine{
		catalog:  c,
		resolver: resolver.New(c),
		config:   cfg,
	}
}

// NewDefault creates an engine over the built-in catalog
func NewDefault() *Engine {
	return New(catalog.Default(), DefaultConfig())
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Outcome is the result of converting one expression line
type Outcome struct {
	Expression *input.Expression
	Results    []types.ConversionResult
	Warnings   []error
}

// ConvertExpression parses and converts a line such as "5ft 10in = m:3".
// When parsing succeeded the outcome is returned even on conversion
// failure, so that warnings are not lost.
func (e *Engine) ConvertExpression(line string) (*Outcome, error) {
	expr, err := input.ParseWithDefault(line, e.config.DefaultPrecision)
	if err != nil {
		return nil, err
	}

	for _, w := range expr.Warnings {
		logging.Info("precision directive rejected", zap.String("input", line), zap.Error(w))
	}

	results, err := e.Convert(expr.Target, expr.Sources, expr.Precision)
	return &Outcome{
		Expression: expr,
		Results:    results,
		Warnings:   expr.Warnings,
	}, err
}

// Convert converts the summed sources into the target unit.
// It returns one result per (source variant, target variant) pair, or an
// error and no results.
func (e *Engine) Convert(target string, sources []types.ValueUnitToken, precision output.Precision) ([]types.ConversionResult, error) {
	if len(sources) == 0 {
		return nil, errors.Parsing("no value/unit pair to convert", nil)
	}

	tm, ok := e.resolver.Resolve(target)
	if !ok {
		return nil, errors.UnknownUnit(target)
	}
	logging.Debug("resolved target unit",
		zap.String("text", target),
		zap.String("family", tm.Family.Name),
		zap.String("unit", tm.Unit.Abbr))

	if _, isFormula := tm.Unit.Formula(); isFormula && len(sources) > 1 {
		return nil, errors.FormulaCompound(tm.Unit.Abbr, len(sources))
	}

	resolved, err := e.resolveSources(tm.Family, sources)
	if err != nil {
		return nil, err
	}
	display := sourceDisplay(resolved)

	var results []types.ConversionResult
	switch rule := tm.Unit.Rule.(type) {
	case types.Ratios:
		results, err = convertRatios(tm, rule, resolved, display, precision)
	case types.Formula:
		results, err = convertFormula(tm, rule, resolved[0], display, precision)
	default:
		err = errors.Internal(fmt.Sprintf("unit %s has no conversion rule", tm.Unit.Abbr), nil)
	}
	if err != nil {
		return nil, err
	}

	logging.Debug("conversion complete",
		zap.String("family", tm.Family.Name),
		zap.Int("components", len(resolved)),
		zap.Int("results", len(results)))
	return results, nil
}

// resolveSources binds every token to a unit of the target family. A token
// found only in another family is a mismatch; all other failures are
// collected and returned together.
func (e *Engine) resolveSources(family *types.Family, sources []types.ValueUnitToken) ([]types.ResolvedUnit, error) {
	resolved := make([]types.ResolvedUnit, 0, len(sources))
	var unknown error
	reported := make(map[string]bool)

	for _, tok := range sources {
		if m, ok := e.resolver.ResolveIn(tok.Unit, family.Name); ok {
			resolved = append(resolved, types.ResolvedUnit{Token: tok, Family: m.Family, Unit: m.Unit})
			continue
		}

		// diagnostic only: never converted
		if other, ok := e.resolver.Resolve(tok.Unit); ok {
			return nil, errors.FamilyMismatch(family.Name, other.Family.Name, tok.Unit)
		}

		if !reported[tok.Unit] {
			reported[tok.Unit] = true
			unknown = multierr.Append(unknown, errors.UnknownUnitInFamily(tok.Unit, family.Name))
		}
	}

	if unknown != nil {
		return nil, unknown
	}
	return resolved, nil
}

func convertRatios(tm resolver.Match, targetRatios types.Ratios, sources []types.ResolvedUnit, display string, precision output.Precision) ([]types.ConversionResult, error) {
	totals, err := accumulate(tm.Unit, sources)
	if err != nil {
		return nil, err
	}

	results := make([]types.ConversionResult, 0, len(totals.keys)*len(targetRatios))
	for _, key := range totals.keys {
		for _, tr := range targetRatios {
			raw := totals.values[key] / tr.Value
			value, err := output.FormatNumber(raw, precision)
			if err != nil {
				return nil, err
			}
			results = append(results, types.ConversionResult{
				Family:        tm.Family.Name,
				Source:        display,
				SourceVariant: key,
				Value:         value,
				Raw:           raw,
				Unit:          tm.Unit.Abbr,
				TargetVariant: tr.Variant,
			})
		}
	}
	return results, nil
}

func convertFormula(tm resolver.Match, f types.Formula, source types.ResolvedUnit, display string, precision output.Precision) ([]types.ConversionResult, error) {
	raw, err := f(source.Unit, source.Token.Value)
	if err != nil {
		return nil, err
	}
	value, err := output.FormatNumber(raw, precision)
	if err != nil {
		return nil, err
	}
	return []types.ConversionResult{{
		Family: tm.Family.Name,
		Source: display,
		Value:  value,
		Raw:    raw,
		Unit:   tm.Unit.Abbr,
	}}, nil
}
