package shared

import (
	"context"

	"resource-desk/internal/domain/audit"
	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/domain/notification"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/domain/user"
	"resource-desk/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Borrowings() BorrowingRepository
	Bookings() BookingRepository
	Acquirings() AcquiringRepository
	Inventory() InventoryRepository
	Confirmations() ConfirmationRepository
	Notifications() NotificationRepository
	AuditLogs() AuditLogRepository
	Users() UserRepository
	DB() db.DBTX
}

// RequestSnapshot is the row-locked view of a request a transition works on,
// joined with the target resource's name for notification and log text.
type RequestSnapshot struct {
	ID           int64
	RequesterID  int64
	ResourceID   int64
	ResourceName string
	Quantity     int32 // acquiring only
	Status       request.Status
	ReturnStatus *string // borrowing only
}

type SupplySnapshot struct {
	ID       int64
	Name     string
	Quantity int32
}

// ConfirmationSnapshot carries the requester and resource of the linked
// request so resolutions can notify and log without extra lookups.
type ConfirmationSnapshot struct {
	ID           int64
	RequestID    int64
	RequesterID  int64
	ResourceID   int64
	ResourceName string
	Status       confirmation.Status
}

// RequestRepository is the per-domain write surface of the transition engine.
// FindForUpdate locks the request row for the remainder of the transaction.
type RequestRepository interface {
	FindForUpdate(ctx context.Context, db db.DBTX, id int64) (*RequestSnapshot, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id int64, status request.Status) error
	// DeleteConfirmations removes dependent confirmation notification rows
	// ahead of the request row itself.
	DeleteConfirmations(ctx context.Context, db db.DBTX, id int64) error
	Delete(ctx context.Context, db db.DBTX, id int64) error
}

type BorrowingRepository interface {
	RequestRepository
	SetReturnStatus(ctx context.Context, db db.DBTX, id int64, returnStatus string) error
}

type BookingRepository interface {
	RequestRepository
}

type AcquiringRepository interface {
	RequestRepository
}

type InventoryRepository interface {
	SetEquipmentAvailability(ctx context.Context, db db.DBTX, equipmentID int64, availability request.Availability) error
	// SupplyForUpdate locks the supply row so a check-then-deduct sequence
	// stays race-free within the transaction.
	SupplyForUpdate(ctx context.Context, db db.DBTX, supplyID int64) (*SupplySnapshot, error)
	DeductSupply(ctx context.Context, db db.DBTX, supplyID int64, quantity int32) error
}

type ConfirmationRepository interface {
	FindReturnForUpdate(ctx context.Context, db db.DBTX, id int64) (*ConfirmationSnapshot, error)
	FindDoneForUpdate(ctx context.Context, db db.DBTX, id int64) (*ConfirmationSnapshot, error)
	SetReturnStatus(ctx context.Context, db db.DBTX, id int64, status confirmation.Status) error
	SetDoneStatus(ctx context.Context, db db.DBTX, id int64, status confirmation.Status) error
	CreateReturn(ctx context.Context, db db.DBTX, borrowingID int64, receiverName, message string) (int64, error)
	CreateDone(ctx context.Context, db db.DBTX, bookingID int64, completionNotes, message string) (int64, error)
	HasPendingReturn(ctx context.Context, db db.DBTX, borrowingID int64) (bool, error)
	HasPendingDone(ctx context.Context, db db.DBTX, bookingID int64) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, db db.DBTX, userID int64, title, message string, typ notification.Type) error
	// CreateForRole fans one notification out to every user holding the role.
	CreateForRole(ctx context.Context, db db.DBTX, role user.Role, title, message string, typ notification.Type) error
	MarkRead(ctx context.Context, db db.DBTX, id, userID int64) error
	MarkAllRead(ctx context.Context, db db.DBTX, userID int64) (int64, error)
	Delete(ctx context.Context, db db.DBTX, id, userID int64) error
	DeleteAll(ctx context.Context, db db.DBTX, userID int64) (int64, error)
}

type AuditLogRepository interface {
	Append(ctx context.Context, db db.DBTX, sink audit.Sink, resourceID int64, action audit.Action, details, performedBy string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID int64) error
}
