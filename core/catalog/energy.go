package catalog

// FamilyEnergy is the energy family
const FamilyEnergy = "ENERGY"

// RegisterEnergy registers energy units. Base unit: joule.
func RegisterEnergy(c *Catalog) {
	c.Register(FamilyEnergy,
		unit("Joule", "J", 1, "joule", "joules"),
		unit("Kilojoule", "kJ", 1000, "kilojoule", "kilojoules"),
		unit("Calorie", "cal", 4.184, "cals", "calorie", "calories"),
		unit("Kilocalorie", "kcal", 4184, "kcals", "kilocalorie", "kilocalories"),
		unit("Watt-hour", "W⋅h", 3600,
			"wh", "whs", "watt-hour", "watt-hours", "watt hour", "watt hours"),
		unit("Kilowatt-hour", "kW⋅h", 3600000,
			"kwh", "kwhs", "kilowatt-hour", "kilowatt-hours", "kilowatt hour", "kilowatt hours"),
		unit("Electronvolt", "eV", 1.6022e-19,
			"evs", "electronvolt", "electronvolts", "electron-volt", "electron-volts", "electron volt", "electron volts"),
		unit("British Thermal Unit", "Btu", 1055.06, "btus", "british thermal unit", "british thermal units"),
		unit("Therm", "thm", 1.055e+8, "thms", "therm", "therms"),
		unit("Foot-Pound Force", "ft⋅lbf", 1.35582,
			"ftlbf", "ftlbfs", "ftlb", "ftlbs", "foot-pound force", "foot pound force", "foot-pound", "foot pound"),
	)
}
