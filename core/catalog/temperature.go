package catalog

import (
	"unitconv/core/types"
	"unitconv/internal/errors"
)

// FamilyTemperature is the temperature family
const FamilyTemperature = "TEMPERATURE"

const (
	abbrKelvin     = "K"
	abbrCelsius    = "°C"
	abbrFahrenheit = "°F"
)

// RegisterTemperature registers the temperature scales. Their zero points
// differ, so each scale converts from the others through a formula.
func RegisterTemperature(c *Catalog) {
	c.Register(FamilyTemperature,
		formula("Kelvin", abbrKelvin, toKelvin, "k", "kelvin"),
		formula("Celsius", abbrCelsius, toCelsius, "c", "celsius"),
		formula("Fahrenheit", abbrFahrenheit, toFahrenheit, "f", "fahrenheit"),
	)
}

func toKelvin(from *types.UnitDefinition, v float64) (float64, error) {
	switch from.Abbr {
	case abbrKelvin:
		return v, nil
	case abbrFahrenheit:
		return (v-32)*5/9 + 273.15, nil
	case abbrCelsius:
		return v + 273.15, nil
	}
	return 0, errors.FormulaTransform(from.Abbr, abbrKelvin)
}

func toCelsius(from *types.UnitDefinition, v float64) (float64, error) {
	switch from.Abbr {
	case abbrCelsius:
		return v, nil
	case abbrKelvin:
		return v - 273.15, nil
	case abbrFahrenheit:
		return (v - 32) * 5 / 9, nil
	}
	return 0, errors.FormulaTransform(from.Abbr, abbrCelsius)
}

func toFahrenheit(from *types.UnitDefinition, v float64) (float64, error) {
	switch from.Abbr {
	case abbrFahrenheit:
		return v, nil
	case abbrKelvin:
		return (v-273.15)*9/5 + 32, nil
	case abbrCelsius:
		return v*9/5 + 32, nil
	}
	return 0, errors.FormulaTransform(from.Abbr, abbrFahrenheit)
}
