// Package output provides number formatting and result rendering.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"unitconv/core/types"
	"unitconv/core/ui"
	"unitconv/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the human-readable line format
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given reports
	Render(w io.Writer, reports []*Report) error
}

// Report is the outcome of converting one expression
type Report struct {
	// Input is the expression as given
	Input string `json:"input" yaml:"input"`

	// Results are the conversion rows, empty on error
	Results []types.ConversionResult `json:"results,omitempty" yaml:"results,omitempty"`

	// Warnings are recoverable problems such as a rejected precision
	Warnings []*errors.Error `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Errors explain why no results were produced
	Errors []*errors.Error `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewReport builds a report, splitting combined errors into entries
func NewReport(input string, results []types.ConversionResult, warnings []error, err error) *Report {
	return &Report{
		Input:    input,
		Results:  results,
		Warnings: domainErrors(warnings...),
		Errors:   domainErrors(multierr.Errors(err)...),
	}
}

// Failed reports whether the conversion produced errors
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

func domainErrors(errs ...error) []*errors.Error {
	var result []*errors.Error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if de, ok := errors.As(err); ok {
			result = append(result, de)
			continue
		}
		result = append(result, errors.Internal(err.Error(), err))
	}
	return result
}

// TextFormatter renders one line per result, "[FAMILY] source = value unit"
type TextFormatter struct {
	NoColor bool
}

// Format returns FormatText
func (f *TextFormatter) Format() Format { return FormatText }

// Render writes warnings, then result lines or bracketed error lines
func (f *TextFormatter) Render(w io.Writer, reports []*Report) error {
	tw := ui.NewWriter(w, f.NoColor)
	for _, r := range reports {
		for _, warn := range r.Warnings {
			tw.Warning(warn.Message)
		}
		for _, e := range r.Errors {
			tw.Error(e.Message)
		}
		for _, res := range r.Results {
			tag := tw.Color(ui.Cyan, "["+res.Family+"]")
			line := res.String()
			tw.Println(tag + strings.TrimPrefix(line, "["+res.Family+"]"))
		}
	}
	return nil
}

// JSONFormatter renders reports as an indented JSON array
type JSONFormatter struct{}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the reports
func (f *JSONFormatter) Render(w io.Writer, reports []*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(reports)
}

// YAMLFormatter renders reports as a YAML sequence
type YAMLFormatter struct{}

// Format returns FormatYAML
func (f *YAMLFormatter) Format() Format { return FormatYAML }

// Render writes the reports
func (f *YAMLFormatter) Render(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format string, noColor bool) (Formatter, error) {
	switch Format(strings.ToLower(format)) {
	case FormatText, "":
		return &TextFormatter{NoColor: noColor}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	}
	return nil, errors.Config(fmt.Sprintf("unknown output format %q (text, json, yaml)", format), nil)
}
