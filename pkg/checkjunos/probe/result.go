package probe

import (
	"fmt"
	"strings"

	"github.com/opsforge/check_junos/format/perfdata"
	"github.com/opsforge/check_junos/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Result builder helpers
// ─────────────────────────────────────────────────────────────────────────────

// outcomeWith composes message and performance data into the final status
// envelope.
func outcomeWith(status models.Status, msg string, recs []perfdata.Record) models.EvaluationOutcome {
	return models.EvaluationOutcome{
		Status:   status,
		Message:  msg,
		PerfData: perfdata.Join(recs),
	}
}

// withGuidance appends the metric's diagnostic hint and remediation actions
// to a non-OK message so operators can act without re-running with tracing.
func withGuidance(msg string, def models.MetricDefinition) string {
	if def.DiagnosticHint != "" {
		msg += fmt.Sprintf(", inspect with '%s'", def.DiagnosticHint)
	}
	if len(def.RemediationActions) > 0 {
		msg += "; suggested actions: " + strings.Join(def.RemediationActions, "; ")
	}
	return msg
}

// unknownf builds an UNKNOWN outcome with a metric-scoped message.
func unknownf(def models.MetricDefinition, format string, args ...interface{}) models.EvaluationOutcome {
	return models.EvaluationOutcome{
		Status:  models.StatusUnknown,
		Message: fmt.Sprintf("%s: %s", def.ID, fmt.Sprintf(format, args...)),
	}
}

// criticalf builds a CRITICAL outcome with guidance attached. Used for the
// interface-resolution failure asymmetry where operators must be alerted
// immediately instead of receiving UNKNOWN.
func criticalf(def models.MetricDefinition, format string, args ...interface{}) models.EvaluationOutcome {
	return models.EvaluationOutcome{
		Status:  models.StatusCritical,
		Message: withGuidance(fmt.Sprintf(format, args...), def),
	}
}
