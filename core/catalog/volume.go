package catalog

// FamilyVolume is the volume family
const FamilyVolume = "VOLUME"

// RegisterVolume registers volume units. Base unit: cubic meter.
func RegisterVolume(c *Catalog) {
	c.Register(FamilyVolume,
		unit("Cubic Meter", "m³", 1,
			"m3", "meter3", "meters3", "metre3", "metres3", "cubic meter", "cubic meters", "cubic metre", "cubic metres"),
		unit("Liter", "l", 0.001, "liter", "liters", "litre", "litres"),
		unit("Milliliter", "ml", 1e-6, "milliliter", "milliliters", "millilitre", "millilitres"),
		regional("Gallon • Imperial / US liquid", "gal", []string{"gallon", "gallons"},
			variant("Imperial", 0.00454609),
			variant("US liquid", 0.00378541),
		),
		regional("Quart • Imperial / US liquid", "qt", []string{"quart", "quarts"},
			variant("Imperial", 0.00113652),
			variant("US liquid", 0.000946353),
		),
		regional("Pint • Imperial / US liquid", "pt", []string{"pint", "pints"},
			variant("Imperial", 0.000568261),
			variant("US liquid", 0.000473176),
		),
		regional("Cup • Imperial / US legal", "c", []string{"cup", "cups"},
			variant("Imperial", 0.000284131),
			variant("US legal", 0.00024),
		),
		regional("Fluid Ounce • Imperial / US", "fl oz", []string{"floz", "fluid ounce", "fluid ounces", "oz", "ounce", "ounces"},
			variant("Imperial", 2.8413e-5),
			variant("US", 2.9574e-5),
		),
		regional("Tablespoon • Imperial / US", "tbsp", []string{"tablespoon", "tablespoons"},
			variant("Imperial", 1.7758e-5),
			variant("US", 1.4787e-5),
		),
		regional("Teaspoon • Imperial / US", "tsp", []string{"teaspoon", "teaspoons"},
			variant("Imperial", 5.9194e-6),
			variant("US", 4.9289e-6),
		),
		unit("Cubic Foot", "ft³", 0.0283168, "ft3", "cu ft", "cubic foot", "cubic feet"),
		unit("Cubic Inch", "in³", 1.6387e-5, "in3", "cu in", "cubic inch", "cubic inches"),
	)
}
