// Package collector implements the SNMP transport boundary of check_junos.
// It turns the probe configuration into a live gosnmp session and exposes the
// two polling operations the check routines consume: walking a sub-tree and
// getting a fixed set of instance OIDs.
//
// Every failure of the underlying transport — timeout, unreachable target,
// malformed response — is wrapped in a TransportError. The check routines
// treat all of them uniformly as "cannot determine status"; they never infer
// OK or CRITICAL from a transport failure. A walk that completes but yields
// zero entries is valid and returned as an empty slice, distinct from an
// error.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosnmp/gosnmp"

	"github.com/opsforge/check_junos/pkg/checkjunos/config"
)

// ─────────────────────────────────────────────────────────────────────────────
// Entry and Collector interface
// ─────────────────────────────────────────────────────────────────────────────

// Entry is one raw name/value pair returned by a poll. OID is in canonical
// no-leading-dot form; Value is the raw gosnmp value, not yet converted.
type Entry struct {
	OID   string
	Value interface{}
}

// Collector abstracts "fetch name/value pairs from the device". The
// production implementation is SNMPCollector; tests substitute mocks.
type Collector interface {
	// Walk retrieves every entry below baseOID. A nil/empty result with a nil
	// error means the sub-tree exists but is empty.
	Walk(ctx context.Context, baseOID string) ([]Entry, error)

	// Get retrieves the exact instance OIDs given. OIDs the agent reports as
	// missing (noSuchObject, noSuchInstance) are absent from the result.
	Get(ctx context.Context, oids []string) ([]Entry, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// TransportError
// ─────────────────────────────────────────────────────────────────────────────

// TransportError wraps any failure of the underlying SNMP transport.
type TransportError struct {
	// Op is the failed operation, "walk" or "get".
	Op string

	// Target is the device host the request was addressed to.
	Target string

	// Err is the underlying transport error.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("snmp %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ─────────────────────────────────────────────────────────────────────────────
// SNMPCollector — production implementation
// ─────────────────────────────────────────────────────────────────────────────

// SNMPCollector is the gosnmp-backed Collector. It owns a single connected
// session for the lifetime of one check invocation; callers must Close it.
type SNMPCollector struct {
	cfg    config.ProbeConfig
	conn   *gosnmp.GoSNMP
	logger *slog.Logger
}

// Dial creates a connected SNMPCollector for the given probe configuration.
func Dial(cfg config.ProbeConfig, logger *slog.Logger) (*SNMPCollector, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(noopWriter{}, nil))
	}
	conn, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &SNMPCollector{cfg: cfg, conn: conn, logger: logger}, nil
}

// Close releases the underlying session.
func (c *SNMPCollector) Close() error {
	if c.conn != nil && c.conn.Conn != nil {
		return c.conn.Conn.Close()
	}
	return nil
}

// Walk implements Collector. SNMPv1 uses GetNext-based walking; v2c and v3
// use GetBulk.
func (c *SNMPCollector) Walk(ctx context.Context, baseOID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Op: "walk", Target: c.cfg.Target, Err: err}
	}

	var (
		pdus []gosnmp.SnmpPDU
		err  error
	)
	if c.cfg.Version == "1" {
		pdus, err = c.conn.WalkAll(baseOID)
	} else {
		pdus, err = c.conn.BulkWalkAll(baseOID)
	}
	if err != nil {
		return nil, &TransportError{Op: "walk", Target: c.cfg.Target, Err: err}
	}

	entries := pdusToEntries(pdus)
	c.logger.Debug("walk completed",
		"target", c.cfg.Target,
		"base_oid", baseOID,
		"entry_count", len(entries),
	)
	return entries, nil
}

// Get implements Collector.
func (c *SNMPCollector) Get(ctx context.Context, oids []string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Op: "get", Target: c.cfg.Target, Err: err}
	}
	if len(oids) == 0 {
		return nil, nil
	}

	// gosnmp.Get has a MaxOids limit; split into batches if necessary.
	maxOids := int(c.conn.MaxOids)
	if maxOids <= 0 {
		maxOids = 60
	}

	var all []gosnmp.SnmpPDU
	for i := 0; i < len(oids); i += maxOids {
		end := i + maxOids
		if end > len(oids) {
			end = len(oids)
		}
		pkt, err := c.conn.Get(oids[i:end])
		if err != nil {
			return nil, &TransportError{Op: "get", Target: c.cfg.Target, Err: err}
		}
		all = append(all, pkt.Variables...)
	}

	entries := pdusToEntries(all)
	c.logger.Debug("get completed",
		"target", c.cfg.Target,
		"requested", len(oids),
		"entry_count", len(entries),
	)
	return entries, nil
}

// pdusToEntries converts raw PDUs to entries, dropping SNMP error sentinels
// (noSuchObject, noSuchInstance, endOfMibView) so callers detect missing
// instances by absence.
func pdusToEntries(pdus []gosnmp.SnmpPDU) []Entry {
	entries := make([]Entry, 0, len(pdus))
	for i := range pdus {
		pdu := &pdus[i]
		if IsErrorType(pdu.Type) {
			continue
		}
		entries = append(entries, Entry{
			OID:   NormaliseOID(pdu.Name),
			Value: pdu.Value,
		})
	}
	return entries
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
