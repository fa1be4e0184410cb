package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opsforge/check_junos/pkg/checkjunos/config"
)

func writeThresholds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write thresholds file: %v", err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeThresholds(t, `
cpu_load_re:
  warning: 70
  critical: 92
temperature:
  warning: 50
  critical: 60
`)
	ovr, err := config.LoadOverrides(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ovr) != 2 {
		t.Fatalf("got %d overrides, want 2", len(ovr))
	}
	if o := ovr["cpu_load_re"]; o.Warning != 70 || o.Critical != 92 {
		t.Errorf("cpu_load_re = %+v", o)
	}
	if o := ovr["temperature"]; o.Warning != 50 || o.Critical != 60 {
		t.Errorf("temperature = %+v", o)
	}
}

func TestLoadOverridesEmptyPath(t *testing.T) {
	ovr, err := config.LoadOverrides("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ovr != nil {
		t.Errorf("empty path must yield nil overrides, got %v", ovr)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := config.LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOverridesAccumulatesValidationErrors(t *testing.T) {
	path := writeThresholds(t, `
cpu_load_re:
  warning: 92
  critical: 70
temperature:
  warning: 60
  critical: 50
`)
	_, err := config.LoadOverrides(path, nil)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, id := range []string{"cpu_load_re", "temperature"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error must name %s: %v", id, err)
		}
	}
}

func TestLoadOverridesMalformedYAML(t *testing.T) {
	path := writeThresholds(t, "cpu_load_re: [not, a, mapping")
	_, err := config.LoadOverrides(path, nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestProbeConfigResolveDefaults(t *testing.T) {
	cfg := config.ProbeConfig{Target: "fw01.example.net"}.Resolve()
	if cfg.Port != 161 {
		t.Errorf("port = %d, want 161", cfg.Port)
	}
	if cfg.Version != "2c" {
		t.Errorf("version = %q, want 2c", cfg.Version)
	}
	if cfg.Timeout <= 0 {
		t.Errorf("timeout not defaulted: %v", cfg.Timeout)
	}
	if cfg.Retries <= 0 {
		t.Errorf("retries not defaulted: %v", cfg.Retries)
	}
}

func TestProbeConfigResolveKeepsExplicitValues(t *testing.T) {
	cfg := config.ProbeConfig{Target: "fw01", Port: 1161, Version: "3", Retries: 5}.Resolve()
	if cfg.Port != 1161 || cfg.Version != "3" || cfg.Retries != 5 {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}
