package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opsforge/check_junos/format/perfdata"
	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/ifstate"
)

// ─────────────────────────────────────────────────────────────────────────────
// Interface status checks
// ─────────────────────────────────────────────────────────────────────────────

// checkInterface resolves the named interface and classifies its admin/oper
// status pair. Resolution failures (name absent from the description table,
// or a failed status poll) are CRITICAL, not UNKNOWN: an interface the probe
// cannot even look up is unusable and operators must be alerted immediately.
//
// With detail=true a fixed set of informational counters is additionally
// polled for the performance data; counter problems never change severity.
func (p *Probe) checkInterface(ctx context.Context, def models.MetricDefinition, name string, detail bool) models.EvaluationOutcome {
	resolver := ifstate.New(p.coll, p.logger)

	index, err := resolver.ResolveIndex(ctx, name)
	if err != nil {
		var notFound *ifstate.NotFoundError
		if errors.As(err, &notFound) {
			return criticalf(def, "interface %q not found on device", name)
		}
		return criticalf(def, "interface %q: resolution failed: %v", name, err)
	}

	st, err := resolver.Status(ctx, index)
	if err != nil {
		return criticalf(def, "interface %q: %v", name, err)
	}

	status, msg := ifstate.Classify(name, st)
	if status != models.StatusOK {
		msg = withGuidance(msg, def)
	}

	recs := []perfdata.Record{
		{Label: "admin_status", Value: float64(st.Admin)},
		{Label: "oper_status", Value: float64(st.Oper)},
	}

	if detail {
		counters, err := resolver.Detail(ctx, index, p.cat.InterfaceCounters())
		if err != nil {
			// Informational only: report what we have, keep the severity.
			p.logger.Warn("interface counters unavailable",
				"interface", name, "index", index, "error", err.Error())
		}
		for _, c := range counters {
			recs = append(recs, perfdata.Record{Label: c.Def.ID, Value: c.Value})
		}
	}
	return outcomeWith(status, msg, recs)
}

// checkInterfaceList reports the device's interface inventory with each
// interface's operational status. The mode is informational: it classifies OK
// whenever the inventory could be retrieved.
func (p *Probe) checkInterfaceList(ctx context.Context, def models.MetricDefinition) models.EvaluationOutcome {
	resolver := ifstate.New(p.coll, p.logger)

	infos, err := resolver.List(ctx)
	if err != nil {
		return unknownf(def, "interface inventory unavailable: %v", err)
	}
	if len(infos) == 0 {
		return unknownf(def, "interface inventory unavailable: device returned no interfaces")
	}

	up, down := 0, 0
	parts := make([]string, 0, len(infos))
	for _, info := range infos {
		switch info.Oper {
		case models.IfStatusUp:
			up++
		case models.IfStatusDown, models.IfStatusLowerLayerDown:
			down++
		}
		parts = append(parts, fmt.Sprintf("%s=%s", info.Name, info.Oper))
	}

	msg := fmt.Sprintf("%d interfaces (%d up, %d down): %s",
		len(infos), up, down, strings.Join(parts, ", "))

	recs := []perfdata.Record{
		{Label: "interfaces", Value: float64(len(infos)), Min: perfdata.F(0)},
		{Label: "interfaces_up", Value: float64(up), Min: perfdata.F(0)},
		{Label: "interfaces_down", Value: float64(down), Min: perfdata.F(0)},
	}
	return outcomeWith(models.StatusOK, msg, recs)
}
