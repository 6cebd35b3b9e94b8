package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resource-desk/internal/domain/notification"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/domain/user"
	"resource-desk/internal/infra"
	"resource-desk/internal/pkg/errs"
	"resource-desk/internal/usecase/shared"
)

var (
	ErrNotOwner            = errs.New("request not owned by user")
	ErrReceiverRequired    = errs.New("Receiver name is required")
	ErrRequestNotApproved  = errs.New("request is not approved")
	ErrAlreadyReturned     = errs.New("equipment already returned")
	ErrConfirmationPending = errs.New("confirmation already pending")
	ErrDeleteApproved      = errs.New("Cannot delete approved requests")
)

// MyRequestCommands is the staff-side surface: reporting a return or a
// completed booking, and withdrawing one's own requests.
type MyRequestCommands interface {
	MarkReturned(ctx context.Context, actor shared.Actor, borrowingID int64, receiverName string) error
	MarkDone(ctx context.Context, actor shared.Actor, bookingID int64, completionNotes string) error
	DeleteOwnBorrowing(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error)
	DeleteOwnBooking(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error)
	DeleteOwnAcquiring(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error)
}

type myRequestUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMyRequestUseCase(uow shared.UnitOfWork) MyRequestCommands {
	return &myRequestUseCaseImpl{uow: uow}
}

// MarkReturned files a return notice for an approved borrowing. The borrowing
// itself stays untouched until an admin confirms the hand-off.
func (uc *myRequestUseCaseImpl) MarkReturned(ctx context.Context, actor shared.Actor, borrowingID int64, receiverName string) error {
	receiverName = strings.TrimSpace(receiverName)
	if receiverName == "" {
		return ErrReceiverRequired
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Borrowings().FindForUpdate(ctx, tx.DB(), borrowingID)
		if err != nil {
			return err
		}
		if snap.RequesterID != actor.UserID {
			return ErrNotOwner
		}
		if snap.Status != request.StatusApproved {
			return ErrRequestNotApproved
		}
		if isReturned(snap) {
			return ErrAlreadyReturned
		}

		pending, err := tx.Confirmations().HasPendingReturn(ctx, tx.DB(), borrowingID)
		if err != nil {
			return err
		}
		if pending {
			return ErrConfirmationPending
		}

		message := fmt.Sprintf("Equipment returned by %s", actor.Email)
		if _, err := tx.Confirmations().CreateReturn(ctx, tx.DB(), borrowingID, receiverName, message); err != nil {
			return err
		}

		adminMessage := fmt.Sprintf("Return of %s reported by %s awaits confirmation.", snap.ResourceName, actor.Email)
		return tx.Notifications().CreateForRole(ctx, tx.DB(), user.RoleAdmin, "Equipment Return Pending", adminMessage, notification.TypeInfo)
	})
}

// MarkDone files a completion notice for an approved booking. The booking
// stays Approved until an admin confirms it.
func (uc *myRequestUseCaseImpl) MarkDone(ctx context.Context, actor shared.Actor, bookingID int64, completionNotes string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if snap.RequesterID != actor.UserID {
			return ErrNotOwner
		}
		if snap.Status != request.StatusApproved {
			return ErrRequestNotApproved
		}

		pending, err := tx.Confirmations().HasPendingDone(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if pending {
			return ErrConfirmationPending
		}

		message := fmt.Sprintf("Booking completed by %s", actor.Email)
		if _, err := tx.Confirmations().CreateDone(ctx, tx.DB(), bookingID, strings.TrimSpace(completionNotes), message); err != nil {
			return err
		}

		adminMessage := fmt.Sprintf("Completion of %s reported by %s awaits confirmation.", snap.ResourceName, actor.Email)
		return tx.Notifications().CreateForRole(ctx, tx.DB(), user.RoleAdmin, "Booking Completion Pending", adminMessage, notification.TypeInfo)
	})
}

func (uc *myRequestUseCaseImpl) DeleteOwnBorrowing(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error) {
	return uc.deleteOwn(ctx, actor, ids, func(tx shared.Tx) shared.RequestRepository {
		return tx.Borrowings()
	})
}

func (uc *myRequestUseCaseImpl) DeleteOwnBooking(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error) {
	return uc.deleteOwn(ctx, actor, ids, func(tx shared.Tx) shared.RequestRepository {
		return tx.Bookings()
	})
}

func (uc *myRequestUseCaseImpl) DeleteOwnAcquiring(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error) {
	return uc.deleteOwn(ctx, actor, ids, func(tx shared.Tx) shared.RequestRepository {
		return tx.Acquirings()
	})
}

// deleteOwn withdraws the caller's requests one transaction per id. Approved
// requests cannot be withdrawn; the admin side owns their lifecycle once a
// resource is committed.
func (uc *myRequestUseCaseImpl) deleteOwn(ctx context.Context, actor shared.Actor, ids []int64, requests func(tx shared.Tx) shared.RequestRepository) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}

	result := &BulkResult{}
	var firstErr error
	for _, id := range ids {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			snap, err := requests(tx).FindForUpdate(ctx, tx.DB(), id)
			if err != nil {
				return err
			}
			if snap.RequesterID != actor.UserID {
				return ErrNotOwner
			}
			if snap.Status == request.StatusApproved {
				return ErrDeleteApproved
			}
			if err := requests(tx).DeleteConfirmations(ctx, tx.DB(), id); err != nil {
				return err
			}
			return requests(tx).Delete(ctx, tx.DB(), id)
		})
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			result.Failed = append(result.Failed, FailedID{ID: id, Reason: ownDeleteFailureReason(err)})
			continue
		}
		result.Count++
	}

	if result.Count == 0 && firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func ownDeleteFailureReason(err error) string {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return "not found"
	case errors.Is(err, ErrNotOwner):
		return "not owned"
	case errors.Is(err, ErrDeleteApproved):
		return "approved requests cannot be deleted"
	default:
		return "internal error"
	}
}
