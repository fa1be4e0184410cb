package models

import (
	"fmt"
	"sort"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Reading is one observed value for a single metric, optionally keyed by the
// hardware node (routing engine, FPC, sensor, interface index) that reported
// it. Readings are request-scoped: produced per poll, discarded after
// evaluation.
type Reading struct {
	// NodeKey identifies the reporting node; it is the OID suffix below the
	// metric's base address. Empty string for single-valued metrics.
	NodeKey string

	// Value is the raw value as returned by the transport: an integer,
	// unsigned, float, string, or byte slice.
	Value interface{}
}

// Float64 widens any numeric raw value to float64. It returns an error when
// the value is non-numeric, which callers surface as a malformed reading.
func (r Reading) Float64() (float64, error) {
	switch v := r.Value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("node %q: cannot convert %T to float64", r.NodeKey, r.Value)
	}
}

// DisplayString renders the raw value as a printable string, stripping any
// trailing null bytes that devices sometimes append to octet strings.
func (r Reading) DisplayString() string {
	switch v := r.Value.(type) {
	case string:
		return strings.TrimRight(v, "\x00")
	case []byte:
		return strings.TrimRight(string(v), "\x00")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ReadingSet
// ─────────────────────────────────────────────────────────────────────────────

// ReadingSet maps node keys to their readings for one poll of a metric's
// address. Insertion order is irrelevant; iterate via SortedKeys for
// deterministic output. A non-empty set is expected after a successful poll —
// an empty set is itself an anomaly and must yield UNKNOWN, never OK.
type ReadingSet map[string]Reading

// SortedKeys returns all node keys in lexical order.
func (s ReadingSet) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
