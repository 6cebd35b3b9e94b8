package queries

import (
	"context"
)

type ConfirmationReadStore interface {
	ListPendingReturns(ctx context.Context) ([]ReturnNotificationView, error)
	ListPendingDones(ctx context.Context) ([]DoneNotificationView, error)
}

// ConfirmationQueries lists the unresolved hand-off notices admins act on.
type ConfirmationQueries interface {
	PendingReturnNotifications(ctx context.Context) ([]ReturnNotificationView, error)
	PendingDoneNotifications(ctx context.Context) ([]DoneNotificationView, error)
}

type confirmationQueriesImpl struct {
	readStore ConfirmationReadStore
}

func NewConfirmationQueries(readStore ConfirmationReadStore) ConfirmationQueries {
	return &confirmationQueriesImpl{
		readStore: readStore,
	}
}

func (q *confirmationQueriesImpl) PendingReturnNotifications(ctx context.Context) ([]ReturnNotificationView, error) {
	return q.readStore.ListPendingReturns(ctx)
}

func (q *confirmationQueriesImpl) PendingDoneNotifications(ctx context.Context) ([]DoneNotificationView, error) {
	return q.readStore.ListPendingDones(ctx)
}
