package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/opsforge/check_junos/format/perfdata"
	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/evaluate"
	"github.com/opsforge/check_junos/pkg/checkjunos/readings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Per-node absolute-value checks (CPU load, memory, temperature)
// ─────────────────────────────────────────────────────────────────────────────

// nodeShape describes how a per-node metric is rendered: the perfdata unit
// and value range. CPU and memory are percentages bounded 0–100; temperature
// has no upper bound.
type nodeShape struct {
	uom    string
	min    float64
	max    float64
	hasMax bool
}

// checkPerNode walks the metric's sub-tree, classifies each node's value
// individually and aggregates worst-wins. Every node contributes one
// performance-data record regardless of its classification.
func (p *Probe) checkPerNode(ctx context.Context, def models.MetricDefinition, shape nodeShape) models.EvaluationOutcome {
	entries, err := p.coll.Walk(ctx, def.OID)
	if err != nil {
		return unknownf(def, "readings unavailable: %v", err)
	}
	set, err := readings.Group(entries, def.OID)
	if err != nil {
		return unknownf(def, "readings unavailable: %v", err)
	}

	status, results, err := evaluate.PerNode(set, def)
	if err != nil {
		return unknownf(def, "%v", err)
	}
	if status == models.StatusUnknown {
		return unknownf(def, "readings unavailable: device returned no readings")
	}

	msg := nodeMessage(def, status, results, shape)
	if status != models.StatusOK {
		msg = withGuidance(msg, def)
	}

	recs := make([]perfdata.Record, 0, len(results))
	for _, r := range results {
		rec := perfdata.Record{
			Label: nodeLabel(def.ID, r.NodeKey),
			Value: r.Value,
			UOM:   shape.uom,
			Min:   perfdata.F(shape.min),
		}
		if !def.Unbounded() {
			rec.Warn = perfdata.F(def.Warning)
			rec.Crit = perfdata.F(def.Critical)
		}
		if shape.hasMax {
			rec.Max = perfdata.F(shape.max)
		}
		recs = append(recs, rec)
	}
	return outcomeWith(status, msg, recs)
}

// nodeMessage summarises the per-node results: a single line for all-OK, and
// an enumeration of the offending nodes otherwise.
func nodeMessage(def models.MetricDefinition, status models.Status, results []evaluate.NodeResult, shape nodeShape) string {
	if status == models.StatusOK {
		noun := "node"
		if len(results) != 1 {
			noun = "nodes"
		}
		return fmt.Sprintf("%s below thresholds on %d %s", def.Description, len(results), noun)
	}

	var problems []string
	for _, r := range results {
		if r.Status == models.StatusOK {
			continue
		}
		threshold := def.Warning
		if r.Status == models.StatusCritical {
			threshold = def.Critical
		}
		problems = append(problems, fmt.Sprintf("node %s at %s%s (%s from %s)",
			r.NodeKey,
			strconv.FormatFloat(r.Value, 'f', -1, 64), shape.uom,
			strings.ToLower(r.Status.String()),
			strconv.FormatFloat(threshold, 'f', -1, 64)))
	}
	return fmt.Sprintf("%s %s: %s",
		def.Description, strings.ToLower(status.String()), strings.Join(problems, ", "))
}

// nodeLabel builds the perfdata label for one node. Single-valued metrics
// (empty node key) use the bare metric identifier.
func nodeLabel(id, nodeKey string) string {
	if nodeKey == "" {
		return id
	}
	return id + "." + nodeKey
}
