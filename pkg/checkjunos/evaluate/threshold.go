// Package evaluate classifies readings against metric thresholds. It
// implements the two evaluation shapes of the probe: ratio-based metrics
// (current vs. maximum capacity, thresholds in percent) and per-node
// absolute-value metrics (CPU, memory, temperature) aggregated worst-wins.
package evaluate

import (
	"fmt"

	"github.com/opsforge/check_junos/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ratio-based evaluation
// ─────────────────────────────────────────────────────────────────────────────

// Percentage computes current/max as a percentage in the 0–100 range.
//
// A zero (or negative) maximum resolves deterministically to 0, never a
// division fault. Devices transiently report max=0 for uninitialised
// counters; this keeps the documented "0% utilised" compatibility behaviour
// even though it can under-report real exhaustion.
func Percentage(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return current / max * 100
}

// Ratio classifies a current/maximum pair against the definition's percent
// thresholds and returns the classification together with the computed
// percentage.
func Ratio(current, max float64, def models.MetricDefinition) (models.Status, float64) {
	pct := Percentage(current, max)
	return Classify(pct, def), pct
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-value classification
// ─────────────────────────────────────────────────────────────────────────────

// Classify compares one value against the definition's thresholds using the
// fixed precedence policy: below warning → OK, below critical → WARNING,
// otherwise CRITICAL. Unbounded definitions (0/0 sentinel) always classify
// OK — they are informational.
func Classify(value float64, def models.MetricDefinition) models.Status {
	if def.Unbounded() {
		return models.StatusOK
	}
	switch {
	case value < def.Warning:
		return models.StatusOK
	case value < def.Critical:
		return models.StatusWarning
	default:
		return models.StatusCritical
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Per-node evaluation with worst-wins aggregation
// ─────────────────────────────────────────────────────────────────────────────

// NodeResult is the classification of a single node's reading.
type NodeResult struct {
	NodeKey string
	Value   float64
	Status  models.Status
}

// PerNode classifies every node's reading individually and aggregates with
// the worst-wins policy in a single pass over the set: the overall status is
// the maximum severity rank across all node classifications.
//
// An empty set yields UNKNOWN — a successful poll that returned nothing is an
// anomaly, never silently OK. A non-numeric reading makes the whole
// evaluation UNKNOWN with an error naming the offending node.
func PerNode(set models.ReadingSet, def models.MetricDefinition) (models.Status, []NodeResult, error) {
	if len(set) == 0 {
		return models.StatusUnknown, nil, nil
	}

	overall := models.StatusOK
	results := make([]NodeResult, 0, len(set))
	for _, key := range set.SortedKeys() {
		val, err := set[key].Float64()
		if err != nil {
			return models.StatusUnknown, nil, fmt.Errorf("metric %s: malformed reading: %w", def.ID, err)
		}
		st := Classify(val, def)
		results = append(results, NodeResult{NodeKey: key, Value: val, Status: st})
		overall = models.Worst(overall, st)
	}
	return overall, results, nil
}
