package readstore

import (
	"context"

	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// Polling surface: newest first, hard cap so a never-cleaning user cannot
// drag the whole table across the wire.
const listNotificationsSQL = `
SELECT id, user_id, title, message, type, is_read, created_at
FROM user_notifications
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 100`

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID int64) ([]queries.UserNotificationView, error) {
	rows, err := r.db.Query(ctx, listNotificationsSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user notifications", err)
	}
	defer rows.Close()

	items := make([]queries.UserNotificationView, 0)
	for rows.Next() {
		var (
			v         queries.UserNotificationView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.Message, &v.Type, &v.IsRead, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user notification row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user notification rows", err)
	}
	return items, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
