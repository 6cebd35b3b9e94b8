//go:build unit || e2e

package builder

import (
	"time"

	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/usecase/queries"
	"resource-desk/internal/usecase/shared"
)

// RequestBuilder produces the per-domain views and write-side snapshots the
// transition tests work with. One builder covers all three request kinds;
// Quantity and ReturnStatus only surface where the kind uses them.
type RequestBuilder struct {
	ID            int64
	RequesterID   int64
	RequesterName string
	Email         string
	ResourceID    int64
	ResourceName  string
	Quantity      int32
	Purpose       *string
	Status        string
	ReturnStatus  *string
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now()
	purpose := "Field survey"
	return &RequestBuilder{
		ID:            1,
		RequesterID:   10,
		RequesterName: "Staff User",
		Email:         "staff@example.com",
		ResourceID:    100,
		ResourceName:  "Latitude 5420",
		Quantity:      5,
		Purpose:       &purpose,
		Status:        string(request.StatusPending),
		StartDate:     now,
		EndDate:       now.Add(72 * time.Hour),
		CreatedAt:     now,
	}
}

func (r *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RequestBuilder) BuildBorrowingView() queries.BorrowingRequestView {
	return queries.BorrowingRequestView{
		ID:            r.ID,
		BorrowerID:    r.RequesterID,
		BorrowerName:  r.RequesterName,
		BorrowerEmail: r.Email,
		EquipmentID:   r.ResourceID,
		EquipmentName: r.ResourceName,
		Purpose:       r.Purpose,
		Status:        r.Status,
		ReturnStatus:  r.ReturnStatus,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *RequestBuilder) BuildBookingView() queries.BookingRequestView {
	return queries.BookingRequestView{
		ID:           r.ID,
		BookerID:     r.RequesterID,
		BookerName:   r.RequesterName,
		BookerEmail:  r.Email,
		FacilityID:   r.ResourceID,
		FacilityName: r.ResourceName,
		Purpose:      r.Purpose,
		Status:       r.Status,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *RequestBuilder) BuildAcquiringView() queries.AcquiringRequestView {
	return queries.AcquiringRequestView{
		ID:            r.ID,
		AcquirerID:    r.RequesterID,
		AcquirerName:  r.RequesterName,
		AcquirerEmail: r.Email,
		SupplyID:      r.ResourceID,
		SupplyName:    r.ResourceName,
		Quantity:      r.Quantity,
		Purpose:       r.Purpose,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *RequestBuilder) BuildSnapshot() shared.RequestSnapshot {
	return shared.RequestSnapshot{
		ID:           r.ID,
		RequesterID:  r.RequesterID,
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		Quantity:     r.Quantity,
		Status:       request.Status(r.Status),
		ReturnStatus: r.ReturnStatus,
	}
}

// Fluent builder methods
func (r *RequestBuilder) WithID(id int64) *RequestBuilder {
	r.ID = id
	return r
}

func (r *RequestBuilder) WithRequesterID(id int64) *RequestBuilder {
	r.RequesterID = id
	return r
}

func (r *RequestBuilder) WithResource(id int64, name string) *RequestBuilder {
	r.ResourceID = id
	r.ResourceName = name
	return r
}

func (r *RequestBuilder) WithQuantity(q int32) *RequestBuilder {
	r.Quantity = q
	return r
}

func (r *RequestBuilder) WithStatus(status string) *RequestBuilder {
	r.Status = status
	return r
}

func (r *RequestBuilder) AsReturned() *RequestBuilder {
	rs := request.ReturnStatusReturned
	r.ReturnStatus = &rs
	return r
}

// ConfirmationBuilder produces snapshots for the return/done handshake tests.
type ConfirmationBuilder struct {
	ID           int64
	RequestID    int64
	RequesterID  int64
	ResourceID   int64
	ResourceName string
	Status       string
}

func NewConfirmationBuilder() *ConfirmationBuilder {
	return &ConfirmationBuilder{
		ID:           1,
		RequestID:    1,
		RequesterID:  10,
		ResourceID:   100,
		ResourceName: "Latitude 5420",
		Status:       string(confirmation.StatusPending),
	}
}

func (c *ConfirmationBuilder) With(mutate func(*ConfirmationBuilder)) *ConfirmationBuilder {
	mutate(c)
	return c
}

func (c *ConfirmationBuilder) BuildSnapshot() shared.ConfirmationSnapshot {
	return shared.ConfirmationSnapshot{
		ID:           c.ID,
		RequestID:    c.RequestID,
		RequesterID:  c.RequesterID,
		ResourceID:   c.ResourceID,
		ResourceName: c.ResourceName,
		Status:       confirmation.Status(c.Status),
	}
}

func (c *ConfirmationBuilder) WithRequestID(id int64) *ConfirmationBuilder {
	c.RequestID = id
	return c
}

func (c *ConfirmationBuilder) WithStatus(status string) *ConfirmationBuilder {
	c.Status = status
	return c
}
