package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"unitconv/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	prev := config.Get()
	t.Cleanup(func() { config.Set(prev) })

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))

	noConfig := filepath.Join(t.TempDir(), "none.hcl")
	root.SetArgs(normalizeArgs(append([]string{"--config", noConfig, "--no-color"}, args...)))
	err := root.Execute()
	return out.String(), err
}

func TestRootConvert(t *testing.T) {
	out, err := run(t, "", "5ft", "10in", "=", "m")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out, "[LENGTH] 5 ft 10 in = 1.78 m\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootConvertNegative(t *testing.T) {
	out, err := run(t, "", "-40", "F", "to", "C")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out, "[TEMPERATURE] -40 °F = -40 °C\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootConvertFailure(t *testing.T) {
	out, err := run(t, "", "5ft 10abc = m")
	if err != errConversionFailed {
		t.Errorf("Execute() error = %v, want %v", err, errConversionFailed)
	}
	if got, want := out, "[ Unknown unit: abc ]\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootConvertJSON(t *testing.T) {
	out, err := run(t, "", "-f", "json", "1gal = qt")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var reports []struct {
		Input   string `json:"input"`
		Results []struct {
			Value string `json:"value"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(reports) != 1 || len(reports[0].Results) != 4 {
		t.Fatalf("reports = %+v, want one report with 4 results", reports)
	}
}

func TestRootInvalidFormat(t *testing.T) {
	if _, err := run(t, "", "-f", "xml", "1 m = cm"); err == nil {
		t.Error("Execute() succeeded with an unknown format")
	}
}

func TestBatchCommand(t *testing.T) {
	stdin := "5ft = m\n# comment\n\n1 yd = ft\n"
	out, err := run(t, stdin, "batch", "--workers", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "[LENGTH] 5 ft = 1.52 m\n[LENGTH] 1 yd = 3 ft\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestBatchCommandFailure(t *testing.T) {
	out, err := run(t, "1 m = cm\n2 parsec = m\n", "batch")
	if err != errConversionFailed {
		t.Errorf("Execute() error = %v, want %v", err, errConversionFailed)
	}
	if !strings.Contains(out, "[LENGTH] 1 m = 100 cm") || !strings.Contains(out, "[ Unknown unit: parsec ]") {
		t.Errorf("output = %q", out)
	}
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "", "units", "--family", "temperature")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"TEMPERATURE", "Kelvin", "°F", "formula"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "LENGTH") {
		t.Errorf("output lists other families:\n%s", out)
	}

	if _, err := run(t, "", "units", "--family", "luminosity"); err == nil {
		t.Error("units with an unknown family succeeded")
	}
}

func TestUnitsCommandVariants(t *testing.T) {
	out, err := run(t, "", "units", "--family", "mass")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Metric 1000, Imperial 1016.05, US 907.185") {
		t.Errorf("tonne variants missing:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "unitconv version "+version+"\n" {
		t.Errorf("output = %q", out)
	}
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "", "-f", "yaml", "config", "show")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var cfg config.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if cfg.Output.Format != "yaml" || !cfg.Output.NoColor {
		t.Errorf("output config = %+v, want yaml without color", cfg.Output)
	}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"5ft", "=", "m"}, []string{"5ft", "=", "m"}},
		{[]string{"-5ft", "=", "m"}, []string{"--", "-5ft", "=", "m"}},
		{[]string{"-f", "json", "-.5", "m", "=", "cm"}, []string{"-f", "json", "--", "-.5", "m", "=", "cm"}},
		{[]string{"--", "-5ft"}, []string{"--", "-5ft"}},
		{[]string{"-v", "units"}, []string{"-v", "units"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got := normalizeArgs(tt.args)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("normalizeArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
