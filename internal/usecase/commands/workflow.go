package commands

import (
	"context"
	"errors"
	"fmt"

	"resource-desk/internal/domain/audit"
	"resource-desk/internal/domain/notification"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/infra"
	"resource-desk/internal/pkg/errs"
	"resource-desk/internal/usecase/shared"
)

var (
	ErrNoIDs             = errs.New("No IDs provided")
	ErrInsufficientStock = errs.New("insufficient stock")
)

type FailedID struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// BulkResult reports how many requests a bulk operation changed and which
// ids it had to skip.
type BulkResult struct {
	Count  int
	Failed []FailedID
}

// WorkflowCommands is the admin-side lifecycle surface shared by all three
// request domains.
type WorkflowCommands interface {
	BulkUpdateStatus(ctx context.Context, actor shared.Actor, ids []int64, decision string) (*BulkResult, error)
	BulkDelete(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error)
}

// domainConfig captures what differs between borrowing, booking and acquiring:
// which repository handles the rows, which log table records the action, the
// side effects an approval or deletion carries, and the wording the requester
// sees.
type domainConfig struct {
	kind request.Kind
	sink audit.Sink
	// requestPhrase completes "Your … has been approved." in decision
	// notifications.
	requestPhrase string
	requests      func(tx shared.Tx) shared.RequestRepository

	onApprove func(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot) error
	onDelete  func(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot) error

	decisionDetails func(snap *shared.RequestSnapshot, d request.Decision) string
}

type workflowImpl struct {
	cfg domainConfig
	uow shared.UnitOfWork
}

func newWorkflow(cfg domainConfig, uow shared.UnitOfWork) *workflowImpl {
	return &workflowImpl{cfg: cfg, uow: uow}
}

// BulkUpdateStatus approves or rejects each id in its own transaction, so one
// bad id cannot roll back decisions already made for the others.
func (w *workflowImpl) BulkUpdateStatus(ctx context.Context, actor shared.Actor, ids []int64, decision string) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	d, err := request.ParseDecision(decision)
	if err != nil {
		return nil, err
	}

	result := &BulkResult{}
	var firstErr error
	for _, id := range ids {
		err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return w.applyDecision(ctx, tx, actor, id, d)
		})
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			result.Failed = append(result.Failed, FailedID{ID: id, Reason: failureReason(err)})
			continue
		}
		result.Count++
	}

	if result.Count == 0 && firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func (w *workflowImpl) applyDecision(ctx context.Context, tx shared.Tx, actor shared.Actor, id int64, d request.Decision) error {
	snap, err := w.cfg.requests(tx).FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return err
	}

	next, err := request.Resolve(snap.Status, d)
	if err != nil {
		return err
	}

	if d.Approved() && w.cfg.onApprove != nil {
		if err := w.cfg.onApprove(ctx, tx, snap); err != nil {
			return err
		}
	}

	if err := w.cfg.requests(tx).UpdateStatus(ctx, tx.DB(), id, next); err != nil {
		return err
	}

	if err := tx.AuditLogs().Append(ctx, tx.DB(), w.cfg.sink, snap.ResourceID, audit.ForDecision(d.Approved()), w.cfg.decisionDetails(snap, d), actor.Email); err != nil {
		return err
	}

	return w.notifyDecision(ctx, tx, snap, d)
}

func (w *workflowImpl) notifyDecision(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot, d request.Decision) error {
	verb := "Rejected"
	typ := notification.TypeWarning
	if d.Approved() {
		verb = "Approved"
		typ = notification.TypeInfo
	}
	title := fmt.Sprintf("%s Request %s", w.cfg.kind.Title(), verb)
	message := fmt.Sprintf("Your %s has been %s.", w.cfg.requestPhrase, d.Verb())
	return tx.Notifications().Create(ctx, tx.DB(), snap.RequesterID, title, message, typ)
}

// BulkDelete removes each id in its own transaction, releasing any resource
// an approved request still holds before the rows go away.
func (w *workflowImpl) BulkDelete(ctx context.Context, actor shared.Actor, ids []int64) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}

	result := &BulkResult{}
	var firstErr error
	for _, id := range ids {
		err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return w.applyDelete(ctx, tx, actor, id)
		})
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			result.Failed = append(result.Failed, FailedID{ID: id, Reason: failureReason(err)})
			continue
		}
		result.Count++
	}

	if result.Count == 0 && firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func (w *workflowImpl) applyDelete(ctx context.Context, tx shared.Tx, actor shared.Actor, id int64) error {
	snap, err := w.cfg.requests(tx).FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return err
	}

	if w.cfg.onDelete != nil {
		if err := w.cfg.onDelete(ctx, tx, snap); err != nil {
			return err
		}
	}

	if err := w.cfg.requests(tx).DeleteConfirmations(ctx, tx.DB(), id); err != nil {
		return err
	}
	if err := w.cfg.requests(tx).Delete(ctx, tx.DB(), id); err != nil {
		return err
	}

	details := fmt.Sprintf("%s request ID %d deleted", w.cfg.kind.Title(), snap.ID)
	if err := tx.AuditLogs().Append(ctx, tx.DB(), w.cfg.sink, snap.ResourceID, audit.ActionDeleted, details, actor.Email); err != nil {
		return err
	}

	title := fmt.Sprintf("%s Request Deleted", w.cfg.kind.Title())
	message := fmt.Sprintf("Your %s request has been deleted by an administrator.", w.cfg.kind)
	return tx.Notifications().Create(ctx, tx.DB(), snap.RequesterID, title, message, notification.TypeWarning)
}

// failureReason condenses an error into the short per-id reason reported to
// the caller of a bulk operation.
func failureReason(err error) string {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return "not found"
	case errors.Is(err, request.ErrAlreadyDecided):
		return "already decided"
	case errors.Is(err, ErrInsufficientStock):
		return err.Error()
	default:
		return "internal error"
	}
}
