package models

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Interface status codes (IF-MIB ifAdminStatus / ifOperStatus)
// ─────────────────────────────────────────────────────────────────────────────

// IfStatusCode is a value from the standard IF-MIB interface status
// enumeration, shared by ifAdminStatus and ifOperStatus.
type IfStatusCode int64

const (
	IfStatusUp             IfStatusCode = 1
	IfStatusDown           IfStatusCode = 2
	IfStatusTesting        IfStatusCode = 3
	IfStatusUnknown        IfStatusCode = 4
	IfStatusDormant        IfStatusCode = 5
	IfStatusNotPresent     IfStatusCode = 6
	IfStatusLowerLayerDown IfStatusCode = 7
)

// String returns the MIB enumeration label for the code.
func (c IfStatusCode) String() string {
	switch c {
	case IfStatusUp:
		return "up"
	case IfStatusDown:
		return "down"
	case IfStatusTesting:
		return "testing"
	case IfStatusUnknown:
		return "unknown"
	case IfStatusDormant:
		return "dormant"
	case IfStatusNotPresent:
		return "notPresent"
	case IfStatusLowerLayerDown:
		return "lowerLayerDown"
	default:
		return fmt.Sprintf("invalid(%d)", int64(c))
	}
}

// InterfaceStatus is the admin/oper status code pair retrieved for one
// interface index. Only down and lowerLayerDown (and admin down) are treated
// as fault conditions; all other codes are informational.
type InterfaceStatus struct {
	Admin IfStatusCode
	Oper  IfStatusCode
}
