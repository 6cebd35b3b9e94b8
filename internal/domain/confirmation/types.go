package confirmation

import (
	"resource-desk/internal/pkg/errs"
)

var (
	ErrAlreadyResolved   = errs.New("confirmation notification already resolved")
	ErrInvalidResolution = errs.New("invalid resolution for confirmation notification")
)

// Variant distinguishes the two confirmation kinds: a ReturnNotification is
// tied to a borrowing request, a DoneNotification to a booking request.
type Variant string

const (
	VariantReturn Variant = "return"
	VariantDone   Variant = "done"
)

// Status is the notification's adjudication state. A notification is created
// pending_confirmation and resolved exactly once by an admin: returns are
// confirmed or rejected, done notices are confirmed or dismissed.
type Status string

const (
	StatusPending   Status = "pending_confirmation"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusDismissed Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusDismissed:
		return true
	default:
		return false
	}
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

// Resolve transitions a notification out of pending_confirmation. Resolving
// an already-resolved notification fails rather than silently passing, and
// each variant only admits its own resolutions (rejected for returns,
// dismissed for done notices).
func Resolve(v Variant, current, next Status) (Status, error) {
	if !current.IsPending() {
		return "", ErrAlreadyResolved
	}
	switch next {
	case StatusConfirmed:
		return next, nil
	case StatusRejected:
		if v != VariantReturn {
			return "", ErrInvalidResolution
		}
		return next, nil
	case StatusDismissed:
		if v != VariantDone {
			return "", ErrInvalidResolution
		}
		return next, nil
	default:
		return "", ErrInvalidResolution
	}
}
