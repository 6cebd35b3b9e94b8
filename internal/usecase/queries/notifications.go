package queries

import (
	"context"
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID int64) ([]UserNotificationView, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type NotificationQueries interface {
	ListForUser(ctx context.Context, userID int64) ([]UserNotificationView, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{
		readStore: readStore,
	}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID int64) ([]UserNotificationView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return q.readStore.CountUnread(ctx, userID)
}
