package models

import "fmt"

// MetricDefinition describes a single named, independently thresholded
// quantity retrievable from the target device. Definitions are built at
// process start and never mutated afterwards.
type MetricDefinition struct {
	// ID is the metric identifier, e.g. "cpu_load_re". For the primary
	// catalog this equals the check mode string.
	ID string

	// OID is the SNMP base address polled for this metric.
	OID string

	// MaxOID, when non-empty, is the address of the capacity counter used as
	// the denominator for ratio-based metrics (e.g. maximum session count).
	MaxOID string

	// Description is the human-readable metric description used in messages.
	Description string

	// DiagnosticHint is a suggested device CLI command for closer inspection,
	// e.g. "show chassis routing-engine".
	DiagnosticHint string

	// RemediationActions lists suggested operator actions in order of
	// preference. Appended to the message on non-OK outcomes.
	RemediationActions []string

	// Warning is the warning threshold. Unit depends on the metric: percent
	// for ratio and utilisation metrics, degrees Celsius for temperature.
	Warning float64

	// Critical is the critical threshold, same unit as Warning. Must be
	// >= Warning unless both are 0, the sentinel meaning "not thresholded"
	// (informational metrics and denominator-only counters).
	Critical float64
}

// Unbounded reports whether the definition carries the 0/0 sentinel meaning
// the metric is informational and never classified against thresholds.
func (d MetricDefinition) Unbounded() bool {
	return d.Warning == 0 && d.Critical == 0
}

// Validate checks the threshold invariant: Critical >= Warning unless both
// are the unbounded sentinel.
func (d MetricDefinition) Validate() error {
	if d.Unbounded() {
		return nil
	}
	if d.Critical < d.Warning {
		return fmt.Errorf("metric %q: critical threshold %v below warning threshold %v",
			d.ID, d.Critical, d.Warning)
	}
	return nil
}
