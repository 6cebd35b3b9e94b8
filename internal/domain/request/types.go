package request

import (
	"resource-desk/internal/pkg/errs"
)

var (
	ErrInvalidKind     = errs.New("invalid request kind")
	ErrInvalidDecision = errs.New("Status must be 'Approved' or 'Rejected'")
	ErrAlreadyDecided  = errs.New("request already decided")
)

// Kind identifies one of the three request domains.
type Kind string

const (
	KindBorrowing Kind = "borrowing"
	KindBooking   Kind = "booking"
	KindAcquiring Kind = "acquiring"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBorrowing, KindBooking, KindAcquiring:
		return true
	default:
		return false
	}
}

// Title is the capitalized form used in notification titles and log details.
func (k Kind) Title() string {
	switch k {
	case KindBorrowing:
		return "Borrowing"
	case KindBooking:
		return "Booking"
	case KindAcquiring:
		return "Acquiring"
	default:
		return ""
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Status is the request's primary state. Every request starts Pending and is
// resolved to Approved or Rejected by an admin decision. Booking requests
// additionally reach Completed through the done-confirmation handshake.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// Decision is the admin's bulk-update verdict, parsed at the boundary.
type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

func ParseDecision(s string) (Decision, error) {
	d := Decision(s)
	switch d {
	case DecisionApproved, DecisionRejected:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

func (d Decision) Status() Status {
	if d == DecisionApproved {
		return StatusApproved
	}
	return StatusRejected
}

func (d Decision) Approved() bool {
	return d == DecisionApproved
}

// Verb is the past-tense form used in notification messages and log details.
func (d Decision) Verb() string {
	if d == DecisionApproved {
		return "approved"
	}
	return "rejected"
}

// Resolve applies an admin decision to the current status. Only Pending
// requests can be decided; anything terminal stays as it is.
func Resolve(current Status, d Decision) (Status, error) {
	if current.IsTerminal() {
		return "", ErrAlreadyDecided
	}
	return d.Status(), nil
}

// Availability is the equipment-side flag kept consistent with the latest
// resolved borrowing request.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBorrowed  Availability = "Borrowed"
)

func (a Availability) String() string {
	return string(a)
}

func (a Availability) IsValid() bool {
	return a == AvailabilityAvailable || a == AvailabilityBorrowed
}

// ReturnStatusReturned is the borrowing-side marker set when an admin
// confirms a return. Unreturned rows carry no value.
const ReturnStatusReturned = "Returned"
