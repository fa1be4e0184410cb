// Package readings groups raw polled entries by hardware node. Given the
// entries returned by a walk and the metric's known base address, it
// validates that each entry actually sits below that address and extracts the
// remaining OID suffix as the node key. Devices report these tables at
// inconsistent depths (a routing engine row and an FPC row do not share index
// arity), so the split is prefix-validated rather than positional.
package readings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/snmp/collector"
)

// ErrNoMatch is returned when a walk produced entries but none of them sit
// below the requested base address. This is distinct from a legitimately
// empty walk, which yields an empty ReadingSet and a nil error.
var ErrNoMatch = errors.New("no readings matched the requested address")

// Group builds a ReadingSet from raw walk entries rooted at baseOID.
//
// Entries exactly equal to the base address get the empty node key
// (single-valued metric). Entries below it get the dotted suffix as their
// node key, e.g. base "1.3.6.1.4.1.2636.3.1.13.1.8.9" and entry
// "...13.1.8.9.1.0.0" yield node key "1.0.0". Entries outside the base
// sub-tree are skipped; if every entry is outside it, Group returns
// ErrNoMatch so callers can tell "wrong address" from "empty table".
func Group(entries []collector.Entry, baseOID string) (models.ReadingSet, error) {
	base := collector.NormaliseOID(baseOID)
	if base == "" {
		return nil, fmt.Errorf("group readings: empty base address")
	}

	set := make(models.ReadingSet, len(entries))
	matched := 0
	for _, e := range entries {
		oid := collector.NormaliseOID(e.OID)
		var key string
		switch {
		case oid == base:
			key = ""
		case strings.HasPrefix(oid, base+"."):
			key = oid[len(base)+1:]
		default:
			// Outside the requested sub-tree; agents sometimes over-answer.
			continue
		}
		matched++
		set[key] = models.Reading{NodeKey: key, Value: e.Value}
	}

	if len(entries) > 0 && matched == 0 {
		return nil, fmt.Errorf("address %s: %w", base, ErrNoMatch)
	}
	return set, nil
}
