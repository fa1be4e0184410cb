package catalog_test

import (
	"strings"
	"testing"

	"github.com/opsforge/check_junos/pkg/checkjunos/catalog"
	"github.com/opsforge/check_junos/pkg/checkjunos/config"
)

var allModes = []string{
	"cp_sessions", "flow_sessions",
	"cpu_load_re", "cpu_load_fpc",
	"memory_fpc", "memory_re",
	"temperature",
	"interface_status", "interface_status_detail", "interface_list",
}

func TestDefaultCoversAllModes(t *testing.T) {
	cat := catalog.Default()
	for _, id := range allModes {
		def, ok := cat.Lookup(id)
		if !ok {
			t.Errorf("missing definition for %q", id)
			continue
		}
		if def.ID != id {
			t.Errorf("definition ID %q under key %q", def.ID, id)
		}
		if def.OID == "" {
			t.Errorf("%s: empty OID", id)
		}
		if def.Description == "" {
			t.Errorf("%s: empty description", id)
		}
	}
	if got := len(cat.IDs()); got != len(allModes) {
		t.Errorf("catalog has %d definitions, want %d: %v", got, len(allModes), cat.IDs())
	}
}

func TestDefaultThresholdsAreValid(t *testing.T) {
	cat := catalog.Default()
	for _, id := range cat.IDs() {
		def, _ := cat.Lookup(id)
		if err := def.Validate(); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}
}

func TestSessionMetricsCarryMaxAddress(t *testing.T) {
	cat := catalog.Default()
	for _, id := range []string{"cp_sessions", "flow_sessions"} {
		def, _ := cat.Lookup(id)
		if def.MaxOID == "" {
			t.Errorf("%s: ratio metric must carry a maximum-capacity address", id)
		}
	}
}

func TestInterfaceModesAreUnbounded(t *testing.T) {
	cat := catalog.Default()
	for _, id := range []string{"interface_status", "interface_status_detail", "interface_list"} {
		def, _ := cat.Lookup(id)
		if !def.Unbounded() {
			t.Errorf("%s: status mode must not carry numeric thresholds, got %v/%v",
				id, def.Warning, def.Critical)
		}
	}
}

func TestWithOverrides(t *testing.T) {
	orig := catalog.Default()
	over, err := orig.WithOverrides(config.Overrides{
		"cpu_load_re": {Warning: 70, Critical: 80},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def, _ := over.Lookup("cpu_load_re")
	if def.Warning != 70 || def.Critical != 80 {
		t.Errorf("override not applied: %v/%v", def.Warning, def.Critical)
	}

	// The original catalog is untouched.
	origDef, _ := orig.Lookup("cpu_load_re")
	if origDef.Warning != 85 || origDef.Critical != 95 {
		t.Errorf("original catalog mutated: %v/%v", origDef.Warning, origDef.Critical)
	}

	// Non-overridden metrics keep their defaults.
	temp, _ := over.Lookup("temperature")
	if temp.Warning != 45 || temp.Critical != 55 {
		t.Errorf("unrelated metric changed: %v/%v", temp.Warning, temp.Critical)
	}
}

func TestWithOverridesUnknownMetric(t *testing.T) {
	_, err := catalog.Default().WithOverrides(config.Overrides{
		"disk_usage": {Warning: 80, Critical: 90},
	})
	if err == nil || !strings.Contains(err.Error(), "disk_usage") {
		t.Fatalf("expected error naming the unknown metric, got %v", err)
	}
}

func TestWithOverridesInvalidThresholds(t *testing.T) {
	_, err := catalog.Default().WithOverrides(config.Overrides{
		"cpu_load_re": {Warning: 90, Critical: 80},
	})
	if err == nil {
		t.Fatal("expected threshold-ordering error")
	}
}

func TestInterfaceCountersReturnsCopy(t *testing.T) {
	cat := catalog.Default()
	first := cat.InterfaceCounters()
	first[0].ID = "clobbered"
	second := cat.InterfaceCounters()
	if second[0].ID == "clobbered" {
		t.Fatal("InterfaceCounters must return a copy")
	}
}
