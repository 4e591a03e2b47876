package catalog

// FamilyMass is the mass family
const FamilyMass = "MASS"

// RegisterMass registers mass units. Base unit: kilogram.
func RegisterMass(c *Catalog) {
	c.Register(FamilyMass,
		unit("Kilogram", "kg", 1, "kilogram", "kilograms"),
		regional("Tonne • Metric / Imperial / US", "t", []string{"tonne", "tonnes"},
			variant("Metric", 1000),
			variant("Imperial", 1016.05),
			variant("US", 907.185),
		),
		unit("Gram", "gm", 0.001, "gram", "grams"),
		unit("Milligram", "mg", 1e-6, "milligram", "milligrams"),
		unit("Microgram", "µg", 1e-9, "microgram", "micrograms"),
		unit("Stone", "st", 6.35029, "stone", "stones"),
		unit("Pound", "lb", 0.453592, "pound", "pounds"),
		unit("Ounce", "oz", 0.0283495, "ounce", "ounces"),
	)
}
