package resolver_test

import (
	"testing"

	"unitconv/core/catalog"
	"unitconv/core/resolver"
)

func TestResolve(t *testing.T) {
	r := resolver.New(catalog.Default())

	tests := []struct {
		text   string
		family string
		abbr   string
	}{
		// exact abbreviation
		{"m", catalog.FamilyLength, "m"},
		{"b", catalog.FamilyDigitalStorage, "b"},
		{"B", catalog.FamilyDigitalStorage, "B"},
		{"kB", catalog.FamilyDigitalStorage, "kB"},
		{"kb", catalog.FamilyDigitalStorage, "kb"},
		{"MiB", catalog.FamilyDigitalStorage, "MiB"},
		{"°C", catalog.FamilyTemperature, "°C"},
		{"fl oz", catalog.FamilyVolume, "fl oz"},
		{"oz", catalog.FamilyMass, "oz"},
		// case-insensitive abbreviation
		{"KM", catalog.FamilyLength, "km"},
		{"KB", catalog.FamilyDigitalStorage, "kb"},
		{"hz", catalog.FamilyFrequency, "Hz"},
		// alias
		{"meters", catalog.FamilyLength, "m"},
		{"Miles", catalog.FamilyLength, "mi"},
		{"C", catalog.FamilyTemperature, "°C"},
		{"f", catalog.FamilyTemperature, "°F"},
		{"h", catalog.FamilyTime, "hr"},
		{"m2", catalog.FamilyArea, "m²"},
		{"lbf/in2", catalog.FamilyPressure, "psi"},
		{"\"", catalog.FamilyLength, "in"},
		// exact abbreviations beat aliases of earlier families
		{"″", catalog.FamilyPlaneAngle, "″"},
		{"d", catalog.FamilyTime, "d"},
		// micro sign and Greek mu fold together
		{"μg", catalog.FamilyMass, "µg"},
		{"µm", catalog.FamilyLength, "μm"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, ok := r.Resolve(tt.text)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing", tt.text)
			}
			if m.Family.Name != tt.family || m.Unit.Abbr != tt.abbr {
				t.Errorf("Resolve(%q) = %s/%s, want %s/%s",
					tt.text, m.Family.Name, m.Unit.Abbr, tt.family, tt.abbr)
			}
		})
	}
}

func TestResolveMiss(t *testing.T) {
	r := resolver.New(catalog.Default())

	for _, text := range []string{"", "parsec", "xyz", "m ", "meterss"} {
		t.Run(text, func(t *testing.T) {
			if m, ok := r.Resolve(text); ok {
				t.Errorf("Resolve(%q) = %s, want no match", text, m.Unit)
			}
		})
	}
}

func TestResolveIn(t *testing.T) {
	r := resolver.New(catalog.Default())

	tests := []struct {
		text   string
		family string
		abbr   string
		found  bool
	}{
		{"m", catalog.FamilyTime, "min", true},
		{"m", catalog.FamilyLength, "m", true},
		{"″", catalog.FamilyLength, "in", true},
		{"d", catalog.FamilyPlaneAngle, "°", true},
		{"c", catalog.FamilyVolume, "c", true},
		{"c", catalog.FamilyTime, "cent", true},
		{"kg", catalog.FamilyLength, "", false},
		{"m", "NO SUCH FAMILY", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.family+"/"+tt.text, func(t *testing.T) {
			m, ok := r.ResolveIn(tt.text, tt.family)
			if ok != tt.found {
				t.Fatalf("ResolveIn(%q, %q) found = %v, want %v", tt.text, tt.family, ok, tt.found)
			}
			if ok && m.Unit.Abbr != tt.abbr {
				t.Errorf("ResolveIn(%q, %q) = %s, want %s", tt.text, tt.family, m.Unit.Abbr, tt.abbr)
			}
		})
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := resolver.New(catalog.Default())
	done := make(chan bool)

	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if m, ok := r.Resolve("Meters"); !ok || m.Unit.Abbr != "m" {
					done <- false
					return
				}
			}
			done <- true
		}()
	}

	for i := 0; i < 8; i++ {
		if !<-done {
			t.Error("concurrent Resolve() returned a wrong match")
		}
	}
}
