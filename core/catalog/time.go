package catalog

// FamilyTime is the time family
const FamilyTime = "TIME"

// RegisterTime registers time units. Base unit: second.
// Month and year use the mean Gregorian year of 365.2425 days.
func RegisterTime(c *Catalog) {
	c.Register(FamilyTime,
		unit("Second", "s", 1, "sec", "second", "seconds"),
		unit("Nanosecond", "ns", 1e-9, "nanosecond", "nanoseconds"),
		unit("Microsecond", "μs", 1e-6, "microsecond", "microseconds"),
		unit("Millisecond", "ms", 0.001, "millisecond", "milliseconds"),
		unit("Minute", "min", 60, "m", "mins", "minute", "minutes"),
		unit("Hour", "hr", 3600, "h", "hrs", "hour", "hours"),
		unit("Day", "d", 86400, "day", "days"),
		unit("Week", "wk", 604800, "w", "week", "weeks"),
		unit("Month", "mth", 2629746, "m", "month", "months"),
		unit("Year", "yr", 31556952, "y", "yrs", "year", "years"),
		unit("Decade", "dec", 315569520, "d", "decs", "decade", "decades"),
		unit("Century", "cent", 3155695200, "c", "century", "centuries"),
	)
}
