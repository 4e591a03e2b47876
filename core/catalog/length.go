package catalog

// FamilyLength is the length family
const FamilyLength = "LENGTH"

// RegisterLength registers length units. Base unit: meter.
func RegisterLength(c *Catalog) {
	c.Register(FamilyLength,
		unit("Meter", "m", 1, "meter", "meters", "metre", "metres"),
		unit("Kilometer", "km", 1000, "kilometer", "kilometers", "kilometre", "kilometres"),
		unit("Centimeter", "cm", 0.01, "centimeter", "centimeters", "centimetre", "centimetres"),
		unit("Millimeter", "mm", 0.001, "millimeter", "millimeters", "millimetre", "millimetres"),
		unit("Micrometer", "μm", 1e-6, "micrometer", "micrometers", "micrometre", "micrometres"),
		unit("Nanometer", "nm", 1e-9, "nanometer", "nanometers", "nanometre", "nanometres"),
		unit("Mile", "mi", 1609.34, "mile", "miles"),
		unit("Nautical Mile", "nmi", 1852, "nautical mile", "nautical miles"),
		unit("Yard", "yd", 0.9144, "yard", "yards"),
		unit("Foot", "ft", 0.3048, "foot", "feet"),
		unit("Inch", "in", 0.0254, "″", "\"", "inch", "inches"),
	)
}
