// Package perfdata renders check metrics in the performance-data record
// format consumed positionally by monitoring supervisors:
//
//	label=value<uom>;warn;crit;min;max
//
// The format is a byte-exact downstream contract: empty fields stay blank but
// every semicolon-delimited position is preserved, and multiple records
// concatenate with a single separating space.
package perfdata

import (
	"fmt"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Record
// ─────────────────────────────────────────────────────────────────────────────

// Record is a single performance-data record. Warn, Crit, Min and Max are
// optional; nil renders as a blank field.
type Record struct {
	Label string
	Value float64

	// UOM is the unit-of-measure suffix appended to the value, e.g. "%".
	UOM string

	Warn *float64
	Crit *float64
	Min  *float64
	Max  *float64
}

// F returns a pointer to v, for filling the optional Record fields inline.
func F(v float64) *float64 { return &v }

// String renders the record. All four threshold/range positions are always
// emitted, blank when the field is unset.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.Label)
	b.WriteByte('=')
	b.WriteString(formatFloat(r.Value))
	b.WriteString(r.UOM)
	for _, f := range []*float64{r.Warn, r.Crit, r.Min, r.Max} {
		b.WriteByte(';')
		if f != nil {
			b.WriteString(formatFloat(*f))
		}
	}
	return b.String()
}

// Join concatenates the rendered records with single spaces.
func Join(records []Record) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Parse
// ─────────────────────────────────────────────────────────────────────────────

// Parse recovers a Record from its rendered form. It is the inverse of
// String for records produced by this package; blank fields come back nil.
func Parse(s string) (Record, error) {
	var r Record

	eq := strings.Index(s, "=")
	if eq < 1 {
		return r, fmt.Errorf("perfdata %q: missing label", s)
	}
	r.Label = s[:eq]

	fields := strings.Split(s[eq+1:], ";")
	if len(fields) != 5 {
		return r, fmt.Errorf("perfdata %q: expected 5 value fields, got %d", s, len(fields))
	}

	value, uom, err := splitValueUOM(fields[0])
	if err != nil {
		return r, fmt.Errorf("perfdata %q: %w", s, err)
	}
	r.Value = value
	r.UOM = uom

	optional := []**float64{&r.Warn, &r.Crit, &r.Min, &r.Max}
	for i, dst := range optional {
		f := fields[i+1]
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return r, fmt.Errorf("perfdata %q: field %d: %w", s, i+1, err)
		}
		*dst = &v
	}
	return r, nil
}

// splitValueUOM separates the numeric value from its trailing unit suffix.
func splitValueUOM(s string) (float64, string, error) {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return 0, "", fmt.Errorf("no numeric value in %q", s)
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", err
	}
	return v, s[i:], nil
}
