package response

import (
	"time"

	"resource-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// ActiveReturnItem is the pending return hand-off shown inline on a borrowing
// row; the key is always present, null when nothing is in flight.
type ActiveReturnItem struct {
	ID           int64  `json:"id"`
	ReceiverName string `json:"receiver_name"`
	Status       string `json:"status"`
}

type BorrowingRequestItem struct {
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
	ReturnNotification *ActiveReturnItem `json:"return_notification"`
}

type BookingRequestItem struct {
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

type AcquiringRequestItem struct {
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

type BorrowingRequestListResponse struct {
	Data []BorrowingRequestItem `json:"data"`
	queries.PageMeta
}

type BookingRequestListResponse struct {
	Data []BookingRequestItem `json:"data"`
	queries.PageMeta
}

type AcquiringRequestListResponse struct {
	Data []AcquiringRequestItem `json:"data"`
	queries.PageMeta
}

func NewBorrowingRequestList(views []queries.BorrowingRequestView, meta queries.PageMeta) (*BorrowingRequestListResponse, error) {
	items := make([]BorrowingRequestItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return &BorrowingRequestListResponse{Data: items, PageMeta: meta}, nil
}

func NewBookingRequestList(views []queries.BookingRequestView, meta queries.PageMeta) (*BookingRequestListResponse, error) {
	items := make([]BookingRequestItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return &BookingRequestListResponse{Data: items, PageMeta: meta}, nil
}

func NewAcquiringRequestList(views []queries.AcquiringRequestView, meta queries.PageMeta) (*AcquiringRequestListResponse, error) {
	items := make([]AcquiringRequestItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return &AcquiringRequestListResponse{Data: items, PageMeta: meta}, nil
}
