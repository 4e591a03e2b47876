package catalog

// FamilyArea is the area family
const FamilyArea = "AREA"

// RegisterArea registers area units. Base unit: square meter.
func RegisterArea(c *Catalog) {
	c.Register(FamilyArea,
		unit("Square Meter", "m²", 1,
			"m2", "sq m", "square meter", "square meters", "square metre", "square metres"),
		unit("Square Kilometer", "km²", 1e+6,
			"km2", "sq km", "square kilometer", "square kilometers", "square kilometre", "square kilometres"),
		unit("Square Mile", "mi²", 2.59e+6, "mi2", "sq mi", "square mile", "square miles"),
		unit("Square Yard", "yd²", 0.836127, "yd2", "sq yd", "square yard", "square yards"),
		unit("Square Foot", "ft²", 0.092903, "ft2", "sq ft", "square foot", "square feet"),
		unit("Square Inch", "in²", 0.00064516, "in2", "sq in", "square inch", "square inches"),
		unit("Hectare", "ha", 10000, "hectare", "hectares"),
		unit("Acre", "a", 4046.86, "acre", "acres"),
	)
}
