package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanReturn: only an active booking can be returned.
func CanReturn(current Status) error {
	if current != StatusActive {
		return ErrNotActive
	}
	return nil
}

// CanCancel: only an active booking can be cancelled.
func CanCancel(current Status) error {
	if current != StatusActive {
		return ErrNotActive
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
