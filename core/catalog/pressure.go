package catalog

// FamilyPressure is the pressure family
const FamilyPressure = "PRESSURE"

// RegisterPressure registers pressure units. Base unit: pascal.
func RegisterPressure(c *Catalog) {
	c.Register(FamilyPressure,
		unit("Pascal", "Pa", 1, "pascal", "pascals"),
		unit("Bar", "bar", 100000, "bars"),
		unit("Pound-Force per Square Inch", "psi", 6894.76, "psis", "lbf/in2", "pound-force per square inch"),
		unit("Standard Atmosphere", "atm", 101325, "atms", "standard atmosphere", "standard atmospheres"),
		unit("Torr", "Torr", 133.322, "torrs"),
	)
}
