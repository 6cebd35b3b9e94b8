package commands

import (
	"context"
	"fmt"

	"resource-desk/internal/domain/audit"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/pkg/errs"
	"resource-desk/internal/usecase/shared"
)

// Distinct interface types per domain so each handler receives the engine
// instance configured for its tables and side effects.
type BorrowingCommands interface {
	WorkflowCommands
}

type BookingCommands interface {
	WorkflowCommands
}

type AcquiringCommands interface {
	WorkflowCommands
}

// NewBorrowingCommands wires the workflow engine for equipment borrowing.
// Approval marks the equipment Borrowed; deleting an approved, unreturned
// request frees it again.
func NewBorrowingCommands(uow shared.UnitOfWork) BorrowingCommands {
	cfg := domainConfig{
		kind:          request.KindBorrowing,
		sink:          audit.SinkEquipment,
		requestPhrase: "borrowing request for equipment",
		requests: func(tx shared.Tx) shared.RequestRepository {
			return tx.Borrowings()
		},
		onApprove: func(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot) error {
			return tx.Inventory().SetEquipmentAvailability(ctx, tx.DB(), snap.ResourceID, request.AvailabilityBorrowed)
		},
		onDelete: func(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot) error {
			if snap.Status == request.StatusApproved && !isReturned(snap) {
				return tx.Inventory().SetEquipmentAvailability(ctx, tx.DB(), snap.ResourceID, request.AvailabilityAvailable)
			}
			return nil
		},
		decisionDetails: func(snap *shared.RequestSnapshot, d request.Decision) string {
			return fmt.Sprintf("Borrowing request ID %d %s for %s", snap.ID, d.Verb(), snap.ResourceName)
		},
	}
	return newWorkflow(cfg, uow)
}

// NewBookingCommands wires the workflow engine for facility booking. Bookings
// carry no inventory side effects; completion happens later through the
// done-confirmation handshake.
func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	cfg := domainConfig{
		kind:          request.KindBooking,
		sink:          audit.SinkFacility,
		requestPhrase: "facility booking request",
		requests: func(tx shared.Tx) shared.RequestRepository {
			return tx.Bookings()
		},
		decisionDetails: func(snap *shared.RequestSnapshot, d request.Decision) string {
			return fmt.Sprintf("Booking request ID %d %s", snap.ID, d.Verb())
		},
	}
	return newWorkflow(cfg, uow)
}

// NewAcquiringCommands wires the workflow engine for supply acquisition.
// Approval deducts stock under a row lock and fails the id when the supply
// cannot cover the requested quantity.
func NewAcquiringCommands(uow shared.UnitOfWork) AcquiringCommands {
	cfg := domainConfig{
		kind:          request.KindAcquiring,
		sink:          audit.SinkSupply,
		requestPhrase: "supply acquiring request",
		requests: func(tx shared.Tx) shared.RequestRepository {
			return tx.Acquirings()
		},
		onApprove: func(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot) error {
			sup, err := tx.Inventory().SupplyForUpdate(ctx, tx.DB(), snap.ResourceID)
			if err != nil {
				return err
			}
			if snap.Quantity > sup.Quantity {
				return insufficientStock(sup.Name, sup.Quantity, snap.Quantity)
			}
			return tx.Inventory().DeductSupply(ctx, tx.DB(), sup.ID, snap.Quantity)
		},
		decisionDetails: func(snap *shared.RequestSnapshot, d request.Decision) string {
			return fmt.Sprintf("Acquiring request ID %d %s, quantity: %d", snap.ID, d.Verb(), snap.Quantity)
		},
	}
	return newWorkflow(cfg, uow)
}

func isReturned(snap *shared.RequestSnapshot) bool {
	return snap.ReturnStatus != nil && *snap.ReturnStatus == request.ReturnStatusReturned
}

func insufficientStock(name string, available, requested int32) error {
	msg := fmt.Sprintf("Insufficient quantity for supply %s. Available: %d, Requested: %d", name, available, requested)
	return errs.Mark(errs.New(msg), ErrInsufficientStock)
}
