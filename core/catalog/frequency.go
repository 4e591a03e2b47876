package catalog

// FamilyFrequency is the frequency family
const FamilyFrequency = "FREQUENCY"

// RegisterFrequency registers frequency units. Base unit: hertz.
func RegisterFrequency(c *Catalog) {
	c.Register(FamilyFrequency,
		unit("Hertz", "Hz", 1, "hertz"),
		unit("Kilohertz", "kHz", 1000, "kilohertz"),
		unit("Megahertz", "MHz", 1e+6, "megahertz"),
		unit("Gigahertz", "GHz", 1e+9, "gigahertz"),
	)
}
