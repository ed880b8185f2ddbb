package schedule

// ======================================================
// Slot status
// ======================================================

type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusReserved    SlotStatus = "reserved"
	StatusBlocked     SlotStatus = "blocked"
	StatusClinic      SlotStatus = "clinic"
	StatusUnavailable SlotStatus = "unavailable"
)

// DeriveStatus resolves the display status from the reconciled flags. The
// case order is load-bearing: a slot in the past with no reservation or
// clinic reports unavailable even when it is also blocked.
func DeriveStatus(past, blocked, clinic, reserved bool) SlotStatus {
	switch {
	case past && !reserved && !clinic:
		return StatusUnavailable
	case blocked:
		return StatusBlocked
	case clinic:
		return StatusClinic
	case reserved:
		return StatusReserved
	default:
		return StatusAvailable
	}
}
