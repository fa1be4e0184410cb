// Package probe wires one check invocation together: it dispatches the
// requested mode to its evaluation routine, drives the reading collector,
// threshold evaluator and interface state resolver, and builds the final
// status envelope with message and performance data.
package probe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/catalog"
	"github.com/opsforge/check_junos/snmp/collector"
)

// Request carries the per-invocation parameters consumed by the probe. All
// request state is explicit and immutable for the duration of the check.
type Request struct {
	// Mode is the check mode to execute.
	Mode Mode

	// InterfaceName is required by the interface_status and
	// interface_status_detail modes and ignored by all others.
	InterfaceName string
}

// Probe executes check requests against one device. It holds only read-only
// collaborators; nothing is shared mutable across invocations.
type Probe struct {
	coll   collector.Collector
	cat    *catalog.Catalog
	logger *slog.Logger
}

// New constructs a Probe. A nil logger is replaced with a no-op logger.
func New(coll collector.Collector, cat *catalog.Catalog, logger *slog.Logger) *Probe {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(noopWriter{}, nil))
	}
	return &Probe{coll: coll, cat: cat, logger: logger}
}

// Run executes the requested check and returns its outcome. The returned
// error is non-nil only for configuration problems detected before any
// network activity; all runtime failures (transport, missing data) are folded
// into the outcome per the error-handling policy.
func (p *Probe) Run(ctx context.Context, req Request) (models.EvaluationOutcome, error) {
	def, ok := p.cat.Lookup(req.Mode.String())
	if !ok {
		return models.EvaluationOutcome{}, &ConfigurationError{
			Reason: fmt.Sprintf("no catalog entry for mode %s", req.Mode)}
	}

	switch req.Mode {
	case ModeCPSessions, ModeFlowSessions:
		return p.checkSessions(ctx, def), nil

	case ModeCPULoadRE, ModeCPULoadFPC, ModeMemoryFPC, ModeMemoryRE:
		return p.checkPerNode(ctx, def, nodeShape{uom: "%", min: 0, max: 100, hasMax: true}), nil

	case ModeTemperature:
		return p.checkPerNode(ctx, def, nodeShape{min: 0}), nil

	case ModeInterfaceStatus:
		if req.InterfaceName == "" {
			return models.EvaluationOutcome{}, &ConfigurationError{
				Reason: "mode interface_status requires an interface name"}
		}
		return p.checkInterface(ctx, def, req.InterfaceName, false), nil

	case ModeInterfaceStatusDetail:
		if req.InterfaceName == "" {
			return models.EvaluationOutcome{}, &ConfigurationError{
				Reason: "mode interface_status_detail requires an interface name"}
		}
		return p.checkInterface(ctx, def, req.InterfaceName, true), nil

	case ModeInterfaceList:
		return p.checkInterfaceList(ctx, def), nil

	default:
		return models.EvaluationOutcome{}, &ConfigurationError{
			Reason: fmt.Sprintf("unrecognised check mode %q", req.Mode)}
	}
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
