package commands

import (
	"context"
	"fmt"

	"resource-desk/internal/domain/audit"
	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/domain/notification"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/pkg/errs"
	"resource-desk/internal/usecase/shared"
)

// ErrRequestMismatch: the caller's request id and the notification's own
// borrowing/booking id disagree, so the pair cannot be resolved together.
var ErrRequestMismatch = errs.New("request record does not match notification")

// ConfirmationCommands resolves the hand-off notices staff file when they
// return equipment or finish with a booked facility. Each resolution is a
// single transaction covering the notice, the request, the resource state,
// the audit log and the requester's notification.
type ConfirmationCommands interface {
	ConfirmReturn(ctx context.Context, actor shared.Actor, notificationID, borrowingID int64) error
	RejectReturn(ctx context.Context, actor shared.Actor, notificationID int64) error
	ConfirmDone(ctx context.Context, actor shared.Actor, notificationID, bookingID int64) error
	DismissDone(ctx context.Context, actor shared.Actor, notificationID int64) error
}

type confirmationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewConfirmationUseCase(uow shared.UnitOfWork) ConfirmationCommands {
	return &confirmationUseCaseImpl{uow: uow}
}

func (uc *confirmationUseCaseImpl) ConfirmReturn(ctx context.Context, actor shared.Actor, notificationID, borrowingID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Confirmations().FindReturnForUpdate(ctx, tx.DB(), notificationID)
		if err != nil {
			return err
		}
		if snap.RequestID != borrowingID {
			return ErrRequestMismatch
		}
		next, err := confirmation.Resolve(confirmation.VariantReturn, snap.Status, confirmation.StatusConfirmed)
		if err != nil {
			return err
		}

		if err := tx.Confirmations().SetReturnStatus(ctx, tx.DB(), notificationID, next); err != nil {
			return err
		}
		if err := tx.Borrowings().SetReturnStatus(ctx, tx.DB(), snap.RequestID, request.ReturnStatusReturned); err != nil {
			return err
		}
		if err := tx.Inventory().SetEquipmentAvailability(ctx, tx.DB(), snap.ResourceID, request.AvailabilityAvailable); err != nil {
			return err
		}

		details := fmt.Sprintf("Equipment return confirmed for borrowing ID %d", snap.RequestID)
		if err := tx.AuditLogs().Append(ctx, tx.DB(), audit.SinkEquipment, snap.ResourceID, audit.ActionReturned, details, actor.Email); err != nil {
			return err
		}

		return tx.Notifications().Create(ctx, tx.DB(), snap.RequesterID, "Equipment Return Confirmed",
			"Your equipment return has been confirmed", notification.TypeSuccess)
	})
}

// RejectReturn resolves the notice without touching the borrowing request or
// the equipment: the borrower keeps the item and is told to follow up.
func (uc *confirmationUseCaseImpl) RejectReturn(ctx context.Context, actor shared.Actor, notificationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Confirmations().FindReturnForUpdate(ctx, tx.DB(), notificationID)
		if err != nil {
			return err
		}
		next, err := confirmation.Resolve(confirmation.VariantReturn, snap.Status, confirmation.StatusRejected)
		if err != nil {
			return err
		}

		if err := tx.Confirmations().SetReturnStatus(ctx, tx.DB(), notificationID, next); err != nil {
			return err
		}

		details := fmt.Sprintf("Equipment return rejected for borrowing ID %d", snap.RequestID)
		if err := tx.AuditLogs().Append(ctx, tx.DB(), audit.SinkEquipment, snap.ResourceID, audit.ActionReturnRejected, details, actor.Email); err != nil {
			return err
		}

		return tx.Notifications().Create(ctx, tx.DB(), snap.RequesterID, "Equipment Return Rejected",
			"Your equipment return has been rejected. Please contact the admin office.", notification.TypeError)
	})
}

func (uc *confirmationUseCaseImpl) ConfirmDone(ctx context.Context, actor shared.Actor, notificationID, bookingID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Confirmations().FindDoneForUpdate(ctx, tx.DB(), notificationID)
		if err != nil {
			return err
		}
		if snap.RequestID != bookingID {
			return ErrRequestMismatch
		}
		next, err := confirmation.Resolve(confirmation.VariantDone, snap.Status, confirmation.StatusConfirmed)
		if err != nil {
			return err
		}

		if err := tx.Confirmations().SetDoneStatus(ctx, tx.DB(), notificationID, next); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.RequestID, request.StatusCompleted); err != nil {
			return err
		}

		details := fmt.Sprintf("Booking completion confirmed for booking ID %d", snap.RequestID)
		if err := tx.AuditLogs().Append(ctx, tx.DB(), audit.SinkFacility, snap.ResourceID, audit.ActionCompleted, details, actor.Email); err != nil {
			return err
		}

		return tx.Notifications().Create(ctx, tx.DB(), snap.RequesterID, "Booking Completion Confirmed",
			"Your booking completion has been confirmed", notification.TypeSuccess)
	})
}

// DismissDone resolves the notice and leaves the booking Approved, so the
// requester can file another completion report later.
func (uc *confirmationUseCaseImpl) DismissDone(ctx context.Context, actor shared.Actor, notificationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Confirmations().FindDoneForUpdate(ctx, tx.DB(), notificationID)
		if err != nil {
			return err
		}
		next, err := confirmation.Resolve(confirmation.VariantDone, snap.Status, confirmation.StatusDismissed)
		if err != nil {
			return err
		}

		if err := tx.Confirmations().SetDoneStatus(ctx, tx.DB(), notificationID, next); err != nil {
			return err
		}

		details := fmt.Sprintf("Booking completion dismissed for booking ID %d", snap.RequestID)
		if err := tx.AuditLogs().Append(ctx, tx.DB(), audit.SinkFacility, snap.ResourceID, audit.ActionDismissed, details, actor.Email); err != nil {
			return err
		}

		return tx.Notifications().Create(ctx, tx.DB(), snap.RequesterID, "Booking Completion Dismissed",
			"Your booking completion notification has been dismissed", notification.TypeInfo)
	})
}
