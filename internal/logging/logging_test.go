package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"unitconv/internal/errors"
	"unitconv/internal/logging"
)

func TestInitializeFileOutput(t *testing.T) {
	prev := logging.Logger
	t.Cleanup(func() { logging.Logger = prev })

	path := filepath.Join(t.TempDir(), "unitconv.log")
	err := logging.Initialize(logging.Config{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	logging.Debug("resolved target unit", zap.String("unit", "m"))
	logging.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"resolved target unit"`) || !strings.Contains(string(data), `"unit":"m"`) {
		t.Errorf("log file = %s", data)
	}
}

func TestInitializeBadOutput(t *testing.T) {
	prev := logging.Logger
	t.Cleanup(func() { logging.Logger = prev })

	path := filepath.Join(t.TempDir(), "missing", "dir", "unitconv.log")
	err := logging.Initialize(logging.Config{Level: "info", Output: path})
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("Initialize() error = %v, want %s", err, errors.TypeConfig)
	}
}

func TestDefaultLevelIsWarn(t *testing.T) {
	if got := logging.DefaultConfig().Level; got != "warn" {
		t.Errorf("default level = %q, want warn", got)
	}
}

func TestNamedAndReplace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logging.Replace(zap.New(core))

	logging.Named("batch").Debug("batch complete")
	logging.Info("precision directive rejected")
	restore()
	logging.Info("after restore")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].LoggerName != "batch" {
		t.Errorf("logger name = %q, want batch", entries[0].LoggerName)
	}
}
