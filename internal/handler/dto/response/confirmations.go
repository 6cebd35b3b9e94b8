package response

import (
	"time"

	"resource-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Both pending-notice feeds are served as bare arrays.

type ReturnNotificationItem struct {
	ID            int64     `json:"id"`
	BorrowingID   int64     `json:"borrowing_id"`
	ReceiverName  string    `json:"receiver_name"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
	EquipmentName string    `json:"equipment_name"`
	BorrowerName  string    `json:"borrower_name"`
	BorrowerEmail string    `json:"borrower_email"`
}

type DoneNotificationItem struct {
	ID              int64     `json:"id"`
	BookingID       int64     `json:"booking_id"`
	CompletionNotes *string   `json:"completion_notes,omitempty"`
	Status          string    `json:"status"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
	FacilityName    string    `json:"facility_name"`
	BookerName      string    `json:"booker_name"`
	BookerEmail     string    `json:"booker_email"`
}

func NewReturnNotificationList(views []queries.ReturnNotificationView) ([]ReturnNotificationItem, error) {
	items := make([]ReturnNotificationItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return items, nil
}

func NewDoneNotificationList(views []queries.DoneNotificationView) ([]DoneNotificationItem, error) {
	items := make([]DoneNotificationItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return items, nil
}
