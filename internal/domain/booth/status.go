package booth

// ApprovalStatus is the organizer's approval workflow for a booth listing. It does not affect scheduling.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "pending"
	ApprovalApproved  ApprovalStatus = "approved"
	ApprovalDeclined  ApprovalStatus = "declined"
	ApprovalCancelled ApprovalStatus = "cancelled"
)

func (s ApprovalStatus) String() string { return string(s) }

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalDeclined, ApprovalCancelled:
		return true
	default:
		return false
	}
}

// Availability is derived from the active reservations of a booth and never set by a client.
type Availability string

const (
	Available   Availability = "available"
	Reserved    Availability = "reserved"
	Unavailable Availability = "unavailable"
)

func (a Availability) String() string { return string(a) }

func (a Availability) IsValid() bool {
	switch a {
	case Available, Reserved, Unavailable:
		return true
	default:
		return false
	}
}

func ParseAvailability(s string) (Availability, bool) {
	a := Availability(s)
	return a, a.IsValid()
}
