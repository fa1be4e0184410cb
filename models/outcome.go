// Package models defines the core data structures shared across all layers of
// check_junos. These types represent the canonical in-memory form of a single
// check invocation; every other package depends on this package and nothing
// here depends on any other internal package.
package models

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Status
// ─────────────────────────────────────────────────────────────────────────────

// Status is the severity classification of a check outcome, following the
// Nagios plugin convention. OK < WARNING < CRITICAL form a strict order used
// for worst-wins aggregation. UNKNOWN is not part of that order — it signals
// "could not determine", not "worse than critical" — and is sticky under
// aggregation.
type Status int

const (
	// StatusOK means every evaluated value is below its warning threshold.
	StatusOK Status = 0

	// StatusWarning means at least one value reached its warning threshold
	// and none reached the critical threshold.
	StatusWarning Status = 1

	// StatusCritical means at least one value reached its critical threshold.
	StatusCritical Status = 2

	// StatusUnknown means the check could not determine a result, e.g. a
	// transport failure or an empty reading set.
	StatusUnknown Status = 3
)

// String returns the canonical upper-case status name used in plugin output.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	case StatusUnknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("INVALID(%d)", int(s))
	}
}

// ExitCode maps the status to the supervisor exit-code convention:
// OK=0, WARNING=1, CRITICAL=2, UNKNOWN=3.
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return int(StatusUnknown)
	}
	return int(s)
}

// Worst returns the more severe of the two statuses. UNKNOWN on either side
// yields UNKNOWN: an undeterminable component makes the aggregate
// undeterminable regardless of what the other components reported.
func Worst(a, b Status) Status {
	if a == StatusUnknown || b == StatusUnknown {
		return StatusUnknown
	}
	if b > a {
		return b
	}
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// EvaluationOutcome
// ─────────────────────────────────────────────────────────────────────────────

// EvaluationOutcome is the final result of one check invocation: a severity
// classification, a human-readable diagnostic message, and a machine-parsable
// performance-data string.
type EvaluationOutcome struct {
	// Status is the severity classification.
	Status Status

	// Message is the human-readable diagnostic, including remediation hints
	// for non-OK outcomes.
	Message string

	// PerfData is the space-separated list of performance-data records, empty
	// when the check produced no metrics.
	PerfData string
}

// PluginOutput renders the outcome in the monitoring plugin line format
// consumed by the supervisor:
//
//	STATUS - message | perfdata
//
// The " | perfdata" part is omitted when PerfData is empty.
func (o EvaluationOutcome) PluginOutput() string {
	out := fmt.Sprintf("%s - %s", o.Status, o.Message)
	if o.PerfData != "" {
		out += " | " + o.PerfData
	}
	return out
}
