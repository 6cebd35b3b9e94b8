package queries

import (
	"time"

	"resource-desk/internal/pkg/patch"
)

const (
	defaultPage     int32 = 1
	defaultPageSize int32 = 10
	maxPageSize     int32 = 100
)

// ListParams is the normalized offset pagination input shared by all listings.
type ListParams struct {
	Page     int32
	PageSize int32
	Status   *string
}

// NewListParams applies defaults for missing values and clamps the rest into
// range, so read stores never see a negative offset or an unbounded limit.
func NewListParams(page, pageSize *int32, status *string) ListParams {
	p := patch.Coalesce(page, defaultPage)
	ps := patch.Coalesce(pageSize, defaultPageSize)
	if p < 1 {
		p = 1
	}
	if ps < 1 {
		ps = 1
	}
	if ps > maxPageSize {
		ps = maxPageSize
	}
	return ListParams{Page: p, PageSize: ps, Status: status}
}

func (p ListParams) Offset() int32 {
	return (p.Page - 1) * p.PageSize
}

// PageMeta describes one page of an offset-paginated result set. PageSize is
// kept for internal math but stays off the wire.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int32 `json:"page"`
	PageSize   int32 `json:"-"`
	TotalPages int32 `json:"total_pages"`
}

func NewPageMeta(total int64, p ListParams) PageMeta {
	pages := (total + int64(p.PageSize) - 1) / int64(p.PageSize)
	if pages < 1 {
		pages = 1
	}
	return PageMeta{
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: int32(pages),
	}
}

// ActiveReturnView is the currently pending return hand-off attached to a
// borrowing row, nil when none is in flight.
type ActiveReturnView struct {
	ID           int64  `json:"id"`
	ReceiverName string `json:"receiver_name"`
	Status       string `json:"status"`
}

// BorrowingRequestView represents read-optimized borrowing request data
type BorrowingRequestView struct {
	ID                 int64             `json:"id"`
	BorrowerID         int64             `json:"borrower_id"`
	BorrowerName       string            `json:"borrower_name"`
	BorrowerEmail      string            `json:"borrower_email"`
	Department         *string           `json:"department,omitempty"`
	EquipmentID        int64             `json:"equipment_id"`
	EquipmentName      string            `json:"equipment_name"`
	Purpose            *string           `json:"purpose,omitempty"`
	Status             string            `json:"status"`
	ReturnStatus       *string           `json:"return_status,omitempty"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            time.Time         `json:"end_date"`
	CreatedAt          time.Time         `json:"created_at"`
	ReturnNotification *ActiveReturnView `json:"return_notification"`
}

// BookingRequestView represents read-optimized booking request data
type BookingRequestView struct {
	ID           int64     `json:"id"`
	BookerID     int64     `json:"booker_id"`
	BookerName   string    `json:"booker_name"`
	BookerEmail  string    `json:"booker_email"`
	Department   *string   `json:"department,omitempty"`
	FacilityID   int64     `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Purpose      *string   `json:"purpose,omitempty"`
	Status       string    `json:"status"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// AcquiringRequestView represents read-optimized acquiring request data
type AcquiringRequestView struct {
	ID            int64     `json:"id"`
	AcquirerID    int64     `json:"acquirer_id"`
	AcquirerName  string    `json:"acquirer_name"`
	AcquirerEmail string    `json:"acquirer_email"`
	Department    *string   `json:"department,omitempty"`
	SupplyID      int64     `json:"supply_id"`
	SupplyName    string    `json:"supply_name"`
	Quantity      int32     `json:"quantity"`
	Purpose       *string   `json:"purpose,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReturnNotificationView represents a pending or resolved equipment return hand-off
type ReturnNotificationView struct {
	ID            int64     `json:"id"`
	BorrowingID   int64     `json:"borrowing_id"`
	EquipmentName string    `json:"equipment_name"`
	BorrowerName  string    `json:"borrower_name"`
	BorrowerEmail string    `json:"borrower_email"`
	ReceiverName  string    `json:"receiver_name"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DoneNotificationView represents a pending or resolved booking completion hand-off
type DoneNotificationView struct {
	ID              int64     `json:"id"`
	BookingID       int64     `json:"booking_id"`
	FacilityName    string    `json:"facility_name"`
	BookerName      string    `json:"booker_name"`
	BookerEmail     string    `json:"booker_email"`
	CompletionNotes *string   `json:"completion_notes,omitempty"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserNotificationView represents one entry of a user's notification feed
type UserNotificationView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department,omitempty"`
	IsActive   bool    `json:"is_active"`
}
