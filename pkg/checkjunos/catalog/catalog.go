// Package catalog is the static registry of metric definitions: for each
// check mode the retrieval address, description, diagnostic hint, ordered
// remediation actions, and default warning/critical thresholds. The catalog
// is built at process start and never mutated during a check; threshold
// overrides produce a fresh catalog via WithOverrides.
//
// Addresses come from the Juniper enterprise MIBs (JUNIPER-SRX5000-SPU-
// MONITORING-MIB for session counters, JUNIPER-MIB jnxOperatingTable for
// per-node CPU, memory and temperature) and from IF-MIB for the interface
// checks.
package catalog

import (
	"fmt"
	"sort"

	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/config"
)

// ─────────────────────────────────────────────────────────────────────────────
// OID addresses
// ─────────────────────────────────────────────────────────────────────────────

const (
	// JUNIPER-SRX5000-SPU-MONITORING-MIB, per-SPU session counters.
	OIDSPUCurrentFlowSession = "1.3.6.1.4.1.2636.3.39.1.12.1.1.1.6"
	OIDSPUMaxFlowSession     = "1.3.6.1.4.1.2636.3.39.1.12.1.1.1.7"
	OIDSPUCurrentCPSession   = "1.3.6.1.4.1.2636.3.39.1.12.1.1.1.8"
	OIDSPUMaxCPSession       = "1.3.6.1.4.1.2636.3.39.1.12.1.1.1.9"

	// JUNIPER-MIB jnxOperatingTable columns, sub-rooted per container class
	// (9 = routing engine, 7 = FPC) where the check targets one class only.
	OIDOperatingCPURE     = "1.3.6.1.4.1.2636.3.1.13.1.8.9"
	OIDOperatingCPUFPC    = "1.3.6.1.4.1.2636.3.1.13.1.8.7"
	OIDOperatingBufferRE  = "1.3.6.1.4.1.2636.3.1.13.1.11.9"
	OIDOperatingBufferFPC = "1.3.6.1.4.1.2636.3.1.13.1.11.7"
	OIDOperatingTemp      = "1.3.6.1.4.1.2636.3.1.13.1.7"

	// IF-MIB ifTable columns.
	OIDIfDescr       = "1.3.6.1.2.1.2.2.1.2"
	OIDIfMtu         = "1.3.6.1.2.1.2.2.1.4"
	OIDIfSpeed       = "1.3.6.1.2.1.2.2.1.5"
	OIDIfAdminStatus = "1.3.6.1.2.1.2.2.1.7"
	OIDIfOperStatus  = "1.3.6.1.2.1.2.2.1.8"
	OIDIfInDiscards  = "1.3.6.1.2.1.2.2.1.13"
	OIDIfInErrors    = "1.3.6.1.2.1.2.2.1.14"
	OIDIfOutDiscards = "1.3.6.1.2.1.2.2.1.19"
	OIDIfOutErrors   = "1.3.6.1.2.1.2.2.1.20"
	OIDIfOutQLen     = "1.3.6.1.2.1.2.2.1.21"
)

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

// Catalog holds the metric definitions for all check modes plus the
// secondary read-only list of informational interface counters used by the
// interface-detail check. Lookup results are copies; the catalog itself is
// never mutated during a check.
type Catalog struct {
	defs       map[string]models.MetricDefinition
	ifCounters []models.MetricDefinition
}

// Default returns the built-in catalog.
func Default() *Catalog {
	defs := make(map[string]models.MetricDefinition, len(defaultDefs))
	for _, d := range defaultDefs {
		defs[d.ID] = d
	}
	return &Catalog{
		defs:       defs,
		ifCounters: defaultIfCounters,
	}
}

// Lookup returns the definition for the given metric identifier.
func (c *Catalog) Lookup(id string) (models.MetricDefinition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// IDs returns all metric identifiers in lexical order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InterfaceCounters returns the informational counters polled by the
// interface-detail check. These never affect severity, only the reported
// performance data. The returned slice is a copy.
func (c *Catalog) InterfaceCounters() []models.MetricDefinition {
	out := make([]models.MetricDefinition, len(c.ifCounters))
	copy(out, c.ifCounters)
	return out
}

// WithOverrides returns a new catalog with the warning/critical thresholds
// of the named metrics replaced. The receiver is unchanged. Unknown metric
// identifiers and threshold-invariant violations are reported together.
func (c *Catalog) WithOverrides(ovr config.Overrides) (*Catalog, error) {
	defs := make(map[string]models.MetricDefinition, len(c.defs))
	for id, d := range c.defs {
		defs[id] = d
	}

	ids := make([]string, 0, len(ovr))
	for id := range ovr {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d, ok := defs[id]
		if !ok {
			return nil, fmt.Errorf("threshold override for unknown metric %q", id)
		}
		d.Warning = ovr[id].Warning
		d.Critical = ovr[id].Critical
		if err := d.Validate(); err != nil {
			return nil, err
		}
		defs[id] = d
	}

	return &Catalog{defs: defs, ifCounters: c.ifCounters}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in definitions
// ─────────────────────────────────────────────────────────────────────────────

var defaultDefs = []models.MetricDefinition{
	{
		ID:             "cp_sessions",
		OID:            OIDSPUCurrentCPSession,
		MaxOID:         OIDSPUMaxCPSession,
		Description:    "central point session table utilisation",
		DiagnosticHint: "show security monitoring performance session",
		RemediationActions: []string{
			"check for session floods or asymmetric traffic",
			"verify screen options and session timeouts",
		},
		Warning:  80,
		Critical: 90,
	},
	{
		ID:             "flow_sessions",
		OID:            OIDSPUCurrentFlowSession,
		MaxOID:         OIDSPUMaxFlowSession,
		Description:    "flow session table utilisation",
		DiagnosticHint: "show security flow session summary",
		RemediationActions: []string{
			"identify top talkers and verify session timeouts",
			"consider SPC capacity upgrade if sustained",
		},
		Warning:  80,
		Critical: 90,
	},
	{
		ID:             "cpu_load_re",
		OID:            OIDOperatingCPURE,
		Description:    "routing engine CPU load",
		DiagnosticHint: "show chassis routing-engine",
		RemediationActions: []string{
			"inspect per-process load with 'show system processes extensive'",
			"check for routing protocol churn",
		},
		Warning:  85,
		Critical: 95,
	},
	{
		ID:             "cpu_load_fpc",
		OID:            OIDOperatingCPUFPC,
		Description:    "FPC CPU load",
		DiagnosticHint: "show chassis fpc",
		RemediationActions: []string{
			"check microcode/firewall filter load on the affected FPC",
			"redistribute traffic away from the affected PIC if possible",
		},
		Warning:  85,
		Critical: 95,
	},
	{
		ID:             "memory_re",
		OID:            OIDOperatingBufferRE,
		Description:    "routing engine memory utilisation",
		DiagnosticHint: "show chassis routing-engine",
		RemediationActions: []string{
			"inspect memory consumers with 'show system processes extensive'",
			"check for memory leaks in long-running daemons",
		},
		Warning:  80,
		Critical: 90,
	},
	{
		ID:             "memory_fpc",
		OID:            OIDOperatingBufferFPC,
		Description:    "FPC memory utilisation",
		DiagnosticHint: "show chassis fpc detail",
		RemediationActions: []string{
			"check FIB size against platform limits",
			"verify firewall filter and policer memory usage",
		},
		Warning:  80,
		Critical: 90,
	},
	{
		ID:             "temperature",
		OID:            OIDOperatingTemp,
		Description:    "chassis component temperature",
		DiagnosticHint: "show chassis environment",
		RemediationActions: []string{
			"verify fan trays and airflow",
			"check ambient datacenter temperature",
		},
		Warning:  45,
		Critical: 55,
	},
	{
		ID:             "interface_status",
		OID:            OIDIfDescr,
		Description:    "interface admin/operational status",
		DiagnosticHint: "show interfaces terse",
		RemediationActions: []string{
			"check physical link, optics and remote end",
			"verify interface configuration is not disabled",
		},
		// Status checks classify on interface state codes, not thresholds.
	},
	{
		ID:             "interface_status_detail",
		OID:            OIDIfDescr,
		Description:    "interface admin/operational status with counters",
		DiagnosticHint: "show interfaces extensive",
		RemediationActions: []string{
			"check physical link, optics and remote end",
			"inspect error and discard counters for trends",
		},
	},
	{
		ID:             "interface_list",
		OID:            OIDIfDescr,
		Description:    "interface inventory",
		DiagnosticHint: "show interfaces terse",
	},
}

// defaultIfCounters is the fixed informational counter list polled by the
// interface-detail check, kept separate from the primary definitions so a
// check never needs to mutate shared catalog data.
var defaultIfCounters = []models.MetricDefinition{
	{ID: "mtu", OID: OIDIfMtu, Description: "interface MTU"},
	{ID: "speed", OID: OIDIfSpeed, Description: "interface speed"},
	{ID: "in_discards", OID: OIDIfInDiscards, Description: "inbound discards"},
	{ID: "in_errors", OID: OIDIfInErrors, Description: "inbound errors"},
	{ID: "out_discards", OID: OIDIfOutDiscards, Description: "outbound discards"},
	{ID: "out_errors", OID: OIDIfOutErrors, Description: "outbound errors"},
	{ID: "out_queue_len", OID: OIDIfOutQLen, Description: "output queue length"},
}
