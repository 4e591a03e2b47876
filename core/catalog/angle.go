package catalog

// FamilyPlaneAngle is the plane angle family
const FamilyPlaneAngle = "PLANE ANGLE"

// RegisterPlaneAngle registers angle units. Base unit: radian.
func RegisterPlaneAngle(c *Catalog) {
	c.Register(FamilyPlaneAngle,
		unit("Radian", "rad", 1, "rads", "r", "radian", "radians"),
		unit("Degree", "°", 0.0174533, "d", "degree", "degrees"),
		unit("Gradian", "ᵍ", 0.015708,
			"grad", "grads", "gradian", "gradians", "gr", "grs", "grd", "grds", "gon", "gons", "grade", "grades"),
		unit("Milliradian", "mrad", 0.001,
			"mrads", "mr", "mrs", "mil", "mils", "milliradian", "milliradians"),
		unit("Minute of Arc", "′", 0.000290888,
			"'", "minute of arc", "minutes of arc", "minute arc", "minutes arc", "arc minute", "arc minutes",
			"arcminute", "arcminutes", "arcmin", "arcmins", "ma", "am"),
		unit("Second of Arc", "″", 4.8481e-6,
			"\"", "second of arc", "seconds of arc", "second arc", "seconds arc", "arc second", "arc seconds",
			"arcsecond", "arcseconds", "arcsec", "arcsecs", "sa", "as"),
	)
}
