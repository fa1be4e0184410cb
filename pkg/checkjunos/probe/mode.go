package probe

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mode
// ─────────────────────────────────────────────────────────────────────────────

// Mode is the closed set of recognised check modes. Dispatch over Mode is an
// exhaustive switch, so every mode is guaranteed a handler at compile time.
type Mode int

const (
	ModeCPSessions Mode = iota
	ModeFlowSessions
	ModeCPULoadRE
	ModeCPULoadFPC
	ModeMemoryFPC
	ModeMemoryRE
	ModeTemperature
	ModeInterfaceStatus
	ModeInterfaceStatusDetail
	ModeInterfaceList
)

// modeNames maps each mode to its invocation string. The strings are a
// bit-exact contract with supervisor service definitions.
var modeNames = map[Mode]string{
	ModeCPSessions:            "cp_sessions",
	ModeFlowSessions:          "flow_sessions",
	ModeCPULoadRE:             "cpu_load_re",
	ModeCPULoadFPC:            "cpu_load_fpc",
	ModeMemoryFPC:             "memory_fpc",
	ModeMemoryRE:              "memory_re",
	ModeTemperature:           "temperature",
	ModeInterfaceStatus:       "interface_status",
	ModeInterfaceStatusDetail: "interface_status_detail",
	ModeInterfaceList:         "interface_list",
}

// String returns the invocation string for the mode.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("invalid(%d)", int(m))
}

// Modes returns all recognised modes in declaration order.
func Modes() []Mode {
	return []Mode{
		ModeCPSessions, ModeFlowSessions,
		ModeCPULoadRE, ModeCPULoadFPC,
		ModeMemoryFPC, ModeMemoryRE,
		ModeTemperature,
		ModeInterfaceStatus, ModeInterfaceStatusDetail, ModeInterfaceList,
	}
}

// ModeStrings returns the invocation strings of all recognised modes.
func ModeStrings() []string {
	out := make([]string, 0, len(modeNames))
	for _, m := range Modes() {
		out = append(out, m.String())
	}
	return out
}

// ParseMode maps an invocation string to its Mode. Unrecognised strings are a
// ConfigurationError, surfaced before any network activity — never as an
// UNKNOWN check result.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf(
		"unrecognised check mode %q (known modes: %s)", s, strings.Join(ModeStrings(), ", "))}
}

// ─────────────────────────────────────────────────────────────────────────────
// ConfigurationError
// ─────────────────────────────────────────────────────────────────────────────

// ConfigurationError reports an invalid invocation (unrecognised mode,
// missing required field). It aborts the check before any network activity
// and is reported distinctly from the four check severities.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}
