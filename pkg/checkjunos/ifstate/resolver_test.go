package ifstate_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/opsforge/check_junos/models"
	"github.com/opsforge/check_junos/pkg/checkjunos/catalog"
	"github.com/opsforge/check_junos/pkg/checkjunos/ifstate"
	"github.com/opsforge/check_junos/snmp/collector"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mock collector
// ─────────────────────────────────────────────────────────────────────────────

// mockCollector serves canned walk sub-trees and get instances.
type mockCollector struct {
	walks    map[string][]collector.Entry
	gets     map[string]interface{}
	walkErr  error
	getErr   error
	getCalls int
}

func (m *mockCollector) Walk(_ context.Context, baseOID string) ([]collector.Entry, error) {
	if m.walkErr != nil {
		return nil, m.walkErr
	}
	return m.walks[collector.NormaliseOID(baseOID)], nil
}

func (m *mockCollector) Get(_ context.Context, oids []string) ([]collector.Entry, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []collector.Entry
	for _, oid := range oids {
		norm := collector.NormaliseOID(oid)
		if v, ok := m.gets[norm]; ok {
			out = append(out, collector.Entry{OID: norm, Value: v})
		}
	}
	return out, nil
}

// deviceWithInterfaces builds a mock with an ifDescr table and per-index
// admin/oper codes.
func deviceWithInterfaces(status map[string][2]int) *mockCollector {
	m := &mockCollector{
		walks: map[string][]collector.Entry{},
		gets:  map[string]interface{}{},
	}
	i := 1
	for name, codes := range status {
		idx := fmt.Sprintf("%d", i)
		m.walks[catalog.OIDIfDescr] = append(m.walks[catalog.OIDIfDescr],
			collector.Entry{OID: catalog.OIDIfDescr + "." + idx, Value: name})
		m.walks[catalog.OIDIfOperStatus] = append(m.walks[catalog.OIDIfOperStatus],
			collector.Entry{OID: catalog.OIDIfOperStatus + "." + idx, Value: codes[1]})
		m.gets[catalog.OIDIfAdminStatus+"."+idx] = codes[0]
		m.gets[catalog.OIDIfOperStatus+"."+idx] = codes[1]
		i++
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Name resolution
// ─────────────────────────────────────────────────────────────────────────────

func TestResolveIndex(t *testing.T) {
	m := &mockCollector{walks: map[string][]collector.Entry{
		catalog.OIDIfDescr: {
			{OID: catalog.OIDIfDescr + ".1", Value: "ge-0/0/0"},
			{OID: catalog.OIDIfDescr + ".2", Value: []byte("ge-0/0/1")},
		},
	}}
	r := ifstate.New(m, nil)

	idx, err := r.ResolveIndex(context.Background(), "ge-0/0/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != "2" {
		t.Errorf("index = %q, want %q", idx, "2")
	}
}

func TestResolveIndexIsCaseSensitive(t *testing.T) {
	m := &mockCollector{walks: map[string][]collector.Entry{
		catalog.OIDIfDescr: {{OID: catalog.OIDIfDescr + ".1", Value: "GE-0/0/0"}},
	}}
	r := ifstate.New(m, nil)

	_, err := r.ResolveIndex(context.Background(), "ge-0/0/0")
	var notFound *ifstate.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestResolveIndexNotFoundNamesInterface(t *testing.T) {
	m := deviceWithInterfaces(map[string][2]int{"ge-0/0/0": {1, 1}})
	r := ifstate.New(m, nil)

	_, err := r.ResolveIndex(context.Background(), "ge-0/0/1")
	var notFound *ifstate.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "ge-0/0/1") {
		t.Errorf("error must identify the missing name: %v", err)
	}
}

func TestResolutionIsIdempotent(t *testing.T) {
	m := deviceWithInterfaces(map[string][2]int{"ge-0/0/1": {2, 1}})
	r := ifstate.New(m, nil)
	ctx := context.Background()

	idx1, err := r.ResolveIndex(ctx, "ge-0/0/1")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	idx2, err := r.ResolveIndex(ctx, "ge-0/0/1")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if idx1 != idx2 {
		t.Fatalf("resolution not idempotent: %q vs %q", idx1, idx2)
	}

	st1, err := r.Status(ctx, idx1)
	if err != nil {
		t.Fatalf("first status: %v", err)
	}
	st2, err := r.Status(ctx, idx2)
	if err != nil {
		t.Fatalf("second status: %v", err)
	}
	s1, m1 := ifstate.Classify("ge-0/0/1", st1)
	s2, m2 := ifstate.Classify("ge-0/0/1", st2)
	if s1 != s2 || m1 != m2 {
		t.Errorf("classification not idempotent: (%s, %q) vs (%s, %q)", s1, m1, s2, m2)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Status retrieval
// ─────────────────────────────────────────────────────────────────────────────

func TestStatusNamesMissingQuantity(t *testing.T) {
	m := &mockCollector{gets: map[string]interface{}{
		catalog.OIDIfAdminStatus + ".3": 1,
		// Oper status intentionally absent.
	}}
	r := ifstate.New(m, nil)

	_, err := r.Status(context.Background(), "3")
	if err == nil || !strings.Contains(err.Error(), "operational status") {
		t.Fatalf("expected error naming the operational status, got %v", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		st         models.InterfaceStatus
		wantStatus models.Status
		wantInMsg  string
	}{
		{
			"up",
			models.InterfaceStatus{Admin: models.IfStatusUp, Oper: models.IfStatusUp},
			models.StatusOK, "up",
		},
		{
			"admin down with oper up",
			models.InterfaceStatus{Admin: models.IfStatusDown, Oper: models.IfStatusUp},
			models.StatusCritical, "administratively down",
		},
		{
			"oper down",
			models.InterfaceStatus{Admin: models.IfStatusUp, Oper: models.IfStatusDown},
			models.StatusCritical, "down",
		},
		{
			"lower layer down",
			models.InterfaceStatus{Admin: models.IfStatusUp, Oper: models.IfStatusLowerLayerDown},
			models.StatusCritical, "lower layer down",
		},
		{
			"dormant is informational",
			models.InterfaceStatus{Admin: models.IfStatusUp, Oper: models.IfStatusDormant},
			models.StatusOK, "dormant",
		},
		{
			"admin and oper down accumulate",
			models.InterfaceStatus{Admin: models.IfStatusDown, Oper: models.IfStatusDown},
			models.StatusCritical, "administratively down, down",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := ifstate.Classify("ge-0/0/1", tc.st)
			if status != tc.wantStatus {
				t.Errorf("status = %s, want %s", status, tc.wantStatus)
			}
			if !strings.Contains(msg, tc.wantInMsg) {
				t.Errorf("message %q must contain %q", msg, tc.wantInMsg)
			}
			if !strings.Contains(msg, "ge-0/0/1") {
				t.Errorf("message %q must identify the interface", msg)
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Detail counters and inventory
// ─────────────────────────────────────────────────────────────────────────────

func TestDetailSkipsMissingCounters(t *testing.T) {
	m := &mockCollector{gets: map[string]interface{}{
		catalog.OIDIfMtu + ".2":      1500,
		catalog.OIDIfInErrors + ".2": uint(4),
		// Remaining counters not provided by the agent.
	}}
	r := ifstate.New(m, nil)

	counters, err := r.Detail(context.Background(), "2", catalog.Default().InterfaceCounters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counters) != 2 {
		t.Fatalf("got %d counters, want 2: %+v", len(counters), counters)
	}
	if counters[0].Def.ID != "mtu" || counters[0].Value != 1500 {
		t.Errorf("first counter = %+v", counters[0])
	}
}

func TestList(t *testing.T) {
	m := deviceWithInterfaces(map[string][2]int{
		"ge-0/0/0": {1, 1},
		"ge-0/0/1": {1, 2},
	})
	r := ifstate.New(m, nil)

	infos, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d interfaces, want 2", len(infos))
	}
	byName := map[string]models.IfStatusCode{}
	for _, info := range infos {
		byName[info.Name] = info.Oper
	}
	if byName["ge-0/0/0"] != models.IfStatusUp || byName["ge-0/0/1"] != models.IfStatusDown {
		t.Errorf("inventory = %v", byName)
	}
}
