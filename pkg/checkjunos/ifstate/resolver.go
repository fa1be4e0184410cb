// Package ifstate implements the interface state machine of check_junos:
// resolving an interface name to its table index, retrieving the admin and
// operational status codes at that index, and classifying the pair with the
// status-code-specific severity rules. A detail variant additionally polls a
// fixed set of informational counters that never influence the severity.
package ifstate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/catalog"
	"github.com/opsforge/check_junos/pkg/checkjunos/readings"
	"github.com/opsforge/check_junos/snmp/collector"
)

// ─────────────────────────────────────────────────────────────────────────────
// Errors
// ─────────────────────────────────────────────────────────────────────────────

// NotFoundError is returned when the requested interface name is absent from
// the device's interface description table.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("interface %q not found in interface description table", e.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolver
// ─────────────────────────────────────────────────────────────────────────────

// Resolver resolves interface names and status codes against a device.
// Resolution is idempotent: the same name against an unchanged device yields
// the same index and classification.
type Resolver struct {
	coll   collector.Collector
	logger *slog.Logger
}

// New constructs a Resolver. A nil logger is replaced with a no-op logger.
func New(coll collector.Collector, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(noopWriter{}, nil))
	}
	return &Resolver{coll: coll, logger: logger}
}

// ResolveIndex walks the interface description table and returns the table
// index whose description exactly equals name (case-sensitive). A missing
// name yields a NotFoundError.
func (r *Resolver) ResolveIndex(ctx context.Context, name string) (string, error) {
	entries, err := r.coll.Walk(ctx, catalog.OIDIfDescr)
	if err != nil {
		return "", fmt.Errorf("resolve interface %q: %w", name, err)
	}
	set, err := readings.Group(entries, catalog.OIDIfDescr)
	if err != nil {
		return "", fmt.Errorf("resolve interface %q: %w", name, err)
	}

	for _, key := range set.SortedKeys() {
		if set[key].DisplayString() == name {
			r.logger.Debug("interface resolved", "name", name, "index", key)
			return key, nil
		}
	}
	return "", &NotFoundError{Name: name}
}

// Status retrieves the admin and operational status codes at the given
// interface index. A missing or non-numeric code is an error naming which
// quantity was unavailable.
func (r *Resolver) Status(ctx context.Context, index string) (models.InterfaceStatus, error) {
	var st models.InterfaceStatus

	adminOID := catalog.OIDIfAdminStatus + "." + index
	operOID := catalog.OIDIfOperStatus + "." + index

	entries, err := r.coll.Get(ctx, []string{adminOID, operOID})
	if err != nil {
		return st, fmt.Errorf("interface index %s: status poll failed: %w", index, err)
	}

	byOID := make(map[string]interface{}, len(entries))
	for _, e := range entries {
		byOID[collector.NormaliseOID(e.OID)] = e.Value
	}

	admin, err := statusCode(byOID, adminOID, "admin status", index)
	if err != nil {
		return st, err
	}
	oper, err := statusCode(byOID, operOID, "operational status", index)
	if err != nil {
		return st, err
	}

	st.Admin = admin
	st.Oper = oper
	return st, nil
}

func statusCode(byOID map[string]interface{}, oid, what, index string) (models.IfStatusCode, error) {
	raw, ok := byOID[collector.NormaliseOID(oid)]
	if !ok {
		return 0, fmt.Errorf("interface index %s: %s unavailable", index, what)
	}
	v, err := models.Reading{Value: raw}.Float64()
	if err != nil {
		return 0, fmt.Errorf("interface index %s: malformed %s: %w", index, what, err)
	}
	return models.IfStatusCode(int64(v)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// Classify applies the status-code severity rules to an admin/oper pair.
// Admin down, oper down and oper lowerLayerDown each contribute a CRITICAL
// fault; contributions accumulate into one message. Any other combination is
// informational and yields OK.
func Classify(name string, st models.InterfaceStatus) (models.Status, string) {
	var faults []string
	if st.Admin == models.IfStatusDown {
		faults = append(faults, "administratively down")
	}
	if st.Oper == models.IfStatusDown {
		faults = append(faults, "down")
	}
	if st.Oper == models.IfStatusLowerLayerDown {
		faults = append(faults, "lower layer down")
	}

	if len(faults) == 0 {
		return models.StatusOK, fmt.Sprintf("interface %s is %s (admin %s)", name, st.Oper, st.Admin)
	}
	return models.StatusCritical, fmt.Sprintf("interface %s is %s", name, strings.Join(faults, ", "))
}

// ─────────────────────────────────────────────────────────────────────────────
// Informational counters (detail variant)
// ─────────────────────────────────────────────────────────────────────────────

// CounterReading pairs an informational counter definition with its value at
// one interface index.
type CounterReading struct {
	Def   models.MetricDefinition
	Value float64
}

// Detail retrieves the informational counters at the given index. Counters
// the agent does not provide are simply absent from the result; they never
// affect the check severity.
func (r *Resolver) Detail(ctx context.Context, index string, counters []models.MetricDefinition) ([]CounterReading, error) {
	oids := make([]string, 0, len(counters))
	for _, c := range counters {
		oids = append(oids, c.OID+"."+index)
	}

	entries, err := r.coll.Get(ctx, oids)
	if err != nil {
		return nil, fmt.Errorf("interface index %s: counter poll failed: %w", index, err)
	}

	byOID := make(map[string]interface{}, len(entries))
	for _, e := range entries {
		byOID[collector.NormaliseOID(e.OID)] = e.Value
	}

	out := make([]CounterReading, 0, len(counters))
	for _, c := range counters {
		raw, ok := byOID[collector.NormaliseOID(c.OID+"."+index)]
		if !ok {
			continue
		}
		v, err := models.Reading{Value: raw}.Float64()
		if err != nil {
			r.logger.Debug("skipping non-numeric interface counter",
				"counter", c.ID, "index", index, "error", err.Error())
			continue
		}
		out = append(out, CounterReading{Def: c, Value: v})
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Inventory (interface_list mode)
// ─────────────────────────────────────────────────────────────────────────────

// InterfaceInfo is one row of the interface inventory.
type InterfaceInfo struct {
	Index string
	Name  string
	Oper  models.IfStatusCode
}

// List walks the description and operational-status tables and joins them by
// index, sorted by index for deterministic output. Interfaces without an
// operational status code are reported with the unknown code.
func (r *Resolver) List(ctx context.Context) ([]InterfaceInfo, error) {
	descrEntries, err := r.coll.Walk(ctx, catalog.OIDIfDescr)
	if err != nil {
		return nil, fmt.Errorf("interface inventory: %w", err)
	}
	descr, err := readings.Group(descrEntries, catalog.OIDIfDescr)
	if err != nil {
		return nil, fmt.Errorf("interface inventory: %w", err)
	}

	operEntries, err := r.coll.Walk(ctx, catalog.OIDIfOperStatus)
	if err != nil {
		return nil, fmt.Errorf("interface inventory: %w", err)
	}
	oper, err := readings.Group(operEntries, catalog.OIDIfOperStatus)
	if err != nil {
		return nil, fmt.Errorf("interface inventory: %w", err)
	}

	out := make([]InterfaceInfo, 0, len(descr))
	for _, key := range descr.SortedKeys() {
		info := InterfaceInfo{Index: key, Name: descr[key].DisplayString(), Oper: models.IfStatusUnknown}
		if o, ok := oper[key]; ok {
			if v, err := o.Float64(); err == nil {
				info.Oper = models.IfStatusCode(int64(v))
			}
		}
		out = append(out, info)
	}
	return out, nil
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
