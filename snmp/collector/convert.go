package collector

import (
	"strings"

	"github.com/gosnmp/gosnmp"
)

// ─────────────────────────────────────────────────────────────────────────────
// OID and PDU helpers
// ─────────────────────────────────────────────────────────────────────────────

// NormaliseOID strips a leading dot and any whitespace from an OID string.
// All OIDs inside this module are stored and compared in the no-leading-dot
// form.
func NormaliseOID(oid string) string {
	oid = strings.TrimSpace(oid)
	return strings.TrimPrefix(oid, ".")
}

// IsErrorType returns true when the PDU type signals an SNMP retrieval error
// rather than an actual value. Callers should skip these varbinds.
func IsErrorType(t gosnmp.Asn1BER) bool {
	return t == gosnmp.NoSuchObject || t == gosnmp.NoSuchInstance || t == gosnmp.EndOfMibView || t == gosnmp.Null
}
