package catalog

// FamilyDigitalStorage is the digital storage family
const FamilyDigitalStorage = "DIGITAL STORAGE"

// RegisterDigitalStorage registers bit and byte units. Base unit: bit.
// Abbreviations differ only by case (b/B, kb/kB), so the resolver's
// case-sensitive pass decides between them.
func RegisterDigitalStorage(c *Catalog) {
	c.Register(FamilyDigitalStorage,
		unit("Bit", "b", 1, "bit", "bits"),
		unit("Kilobit", "kb", 1000, "kbit", "kbits", "kilobit", "kilobits"),
		unit("Kibibit", "Kib", 1024, "kibit", "kibits", "kibibit", "kibibits"),
		unit("Megabit", "Mb", 1e+6, "mbit", "mbits", "megabit", "megabits"),
		unit("Mebibit", "Mib", 1048576, "mibit", "mibits", "mebibit", "mebibits"),
		unit("Gigabit", "Gb", 1e+9, "gbit", "gbits", "gigabit", "gigabits"),
		unit("Gibibit", "Gib", 1073741824, "gibit", "gibits", "gibibit", "gibibits"),
		unit("Terabit", "Tb", 1e+12, "tbit", "tbits", "terabit", "terabits"),
		unit("Tebibit", "Tib", 1099511627776, "tibit", "tibits", "tebibit", "tebibits"),
		unit("Petabit", "Pb", 1e+15, "pbit", "pbits", "petabit", "petabits"),
		unit("Pebibit", "Pib", 1125899906842624, "pibit", "pibits", "pebibit", "pebibits"),
		unit("Byte", "B", 8, "byte", "bytes"),
		unit("Kilobyte", "kB", 8000, "kbyte", "kbytes", "kilobyte", "kilobytes"),
		unit("Kibibyte", "KiB", 8192, "kibyte", "kibytes", "kibibyte", "kibibytes"),
		unit("Megabyte", "MB", 8e+6, "mbyte", "mbytes", "megabyte", "megabytes"),
		unit("Mebibyte", "MiB", 8388608, "mibyte", "mibytes", "mebibyte", "mebibytes"),
		unit("Gigabyte", "GB", 8e+9, "gbyte", "gbytes", "gigabyte", "gigabytes"),
		unit("Gibibyte", "GiB", 8589934592, "gibyte", "gibytes", "gibibyte", "gibibytes"),
		unit("Terabyte", "TB", 8e+12, "tbyte", "tbytes", "terabyte", "terabytes"),
		unit("Tebibyte", "TiB", 8796093022208, "tibyte", "tibytes", "tebibyte", "tebibytes"),
		unit("Petabyte", "PB", 8e+15, "pbyte", "pbytes", "petabyte", "petabytes"),
		unit("Pebibyte", "PiB", 9007199254740992, "pibyte", "pibytes", "pebibyte", "pebibytes"),
	)
}
