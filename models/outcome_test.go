package models_test

import (
	"testing"

	"github.com/opsforge/check_junos/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Status ordering and aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestSeverityOrdering(t *testing.T) {
	if !(models.StatusOK < models.StatusWarning && models.StatusWarning < models.StatusCritical) {
		t.Fatalf("severity ranks must order OK < WARNING < CRITICAL, got %d %d %d",
			models.StatusOK, models.StatusWarning, models.StatusCritical)
	}
}

func TestWorst(t *testing.T) {
	cases := []struct {
		name string
		a, b models.Status
		want models.Status
	}{
		{"ok+ok", models.StatusOK, models.StatusOK, models.StatusOK},
		{"ok+warning", models.StatusOK, models.StatusWarning, models.StatusWarning},
		{"warning+critical", models.StatusWarning, models.StatusCritical, models.StatusCritical},
		{"critical+ok", models.StatusCritical, models.StatusOK, models.StatusCritical},
		{"unknown is sticky left", models.StatusUnknown, models.StatusCritical, models.StatusUnknown},
		{"unknown is sticky right", models.StatusOK, models.StatusUnknown, models.StatusUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := models.Worst(tc.a, tc.b); got != tc.want {
				t.Errorf("Worst(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	cases := map[models.Status]int{
		models.StatusOK:       0,
		models.StatusWarning:  1,
		models.StatusCritical: 2,
		models.StatusUnknown:  3,
	}
	for st, want := range cases {
		if got := st.ExitCode(); got != want {
			t.Errorf("%s.ExitCode() = %d, want %d", st, got, want)
		}
	}
	if got := models.Status(42).ExitCode(); got != 3 {
		t.Errorf("out-of-range status must exit 3, got %d", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Plugin output
// ─────────────────────────────────────────────────────────────────────────────

func TestPluginOutput(t *testing.T) {
	o := models.EvaluationOutcome{
		Status:   models.StatusWarning,
		Message:  "flow session table utilisation at 85.0%",
		PerfData: "flow_sessions=85%;80;90;0;100",
	}
	want := "WARNING - flow session table utilisation at 85.0% | flow_sessions=85%;80;90;0;100"
	if got := o.PluginOutput(); got != want {
		t.Errorf("PluginOutput() = %q, want %q", got, want)
	}
}

func TestPluginOutputWithoutPerfData(t *testing.T) {
	o := models.EvaluationOutcome{Status: models.StatusUnknown, Message: "cannot reach device"}
	want := "UNKNOWN - cannot reach device"
	if got := o.PluginOutput(); got != want {
		t.Errorf("PluginOutput() = %q, want %q", got, want)
	}
}
