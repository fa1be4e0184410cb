package probe

import (
	"context"
	"fmt"

	"github.com/opsforge/check_junos/format/perfdata"
	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/evaluate"
	"github.com/opsforge/check_junos/pkg/checkjunos/readings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ratio-based session checks (cp_sessions, flow_sessions)
// ─────────────────────────────────────────────────────────────────────────────

// checkSessions evaluates a session-table utilisation metric: the current
// session count against the configured maximum, both summed across SPUs, as a
// percentage classified against the metric's percent thresholds.
//
// Current and maximum are polled sequentially; whichever quantity is
// unavailable is named in the UNKNOWN message so the operator knows what to
// look at.
func (p *Probe) checkSessions(ctx context.Context, def models.MetricDefinition) models.EvaluationOutcome {
	current, spus, failed := p.sessionTotal(ctx, def, def.OID, "current session count")
	if failed != nil {
		return *failed
	}
	max, _, failed := p.sessionTotal(ctx, def, def.MaxOID, "maximum session count")
	if failed != nil {
		return *failed
	}

	status, pct := evaluate.Ratio(current, max, def)

	noun := "SPU"
	if spus != 1 {
		noun = "SPUs"
	}
	msg := fmt.Sprintf("%s at %.1f%% (%.0f of %.0f sessions across %d %s)",
		def.Description, pct, current, max, spus, noun)
	if status != models.StatusOK {
		msg = withGuidance(msg, def)
	}

	recs := []perfdata.Record{
		{
			Label: def.ID,
			Value: pct,
			UOM:   "%",
			Warn:  perfdata.F(def.Warning),
			Crit:  perfdata.F(def.Critical),
			Min:   perfdata.F(0),
			Max:   perfdata.F(100),
		},
		{
			Label: def.ID + "_count",
			Value: current,
			Min:   perfdata.F(0),
			Max:   perfdata.F(max),
		},
	}
	return outcomeWith(status, msg, recs)
}

// sessionTotal polls one session counter sub-tree and sums the per-SPU
// values. Any failure to obtain a usable total is returned as a ready-made
// UNKNOWN outcome naming the unavailable quantity.
func (p *Probe) sessionTotal(ctx context.Context, def models.MetricDefinition, oid, what string) (float64, int, *models.EvaluationOutcome) {
	entries, err := p.coll.Walk(ctx, oid)
	if err != nil {
		o := unknownf(def, "%s unavailable: %v", what, err)
		return 0, 0, &o
	}
	set, err := readings.Group(entries, oid)
	if err != nil {
		o := unknownf(def, "%s unavailable: %v", what, err)
		return 0, 0, &o
	}
	if len(set) == 0 {
		o := unknownf(def, "%s unavailable: device returned no readings", what)
		return 0, 0, &o
	}

	var total float64
	for _, key := range set.SortedKeys() {
		v, err := set[key].Float64()
		if err != nil {
			o := unknownf(def, "%s unavailable: %v", what, err)
			return 0, 0, &o
		}
		total += v
	}
	return total, len(set), nil
}
