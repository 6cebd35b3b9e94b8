package repository

import (
	"context"

	"resource-desk/internal/domain/notification"
	"resource-desk/internal/domain/user"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, db db.DBTX, userID int64, title, message string, typ notification.Type) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_notifications (user_id, title, message, type, is_read) VALUES ($1, $2, $3, $4, FALSE)`,
		userID, title, message, string(typ),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user notification", err)
	}
	return nil
}

func (r *NotificationRepository) CreateForRole(ctx context.Context, db db.DBTX, role user.Role, title, message string, typ notification.Type) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_notifications (user_id, title, message, type, is_read)
		 SELECT id, $2, $3, $4, FALSE FROM users WHERE role = $1`,
		string(role), title, message, string(typ),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notifications for role", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, db db.DBTX, id, userID int64) error {
	tag, err := db.Exec(ctx,
		`UPDATE user_notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, db db.DBTX, userID int64) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE user_notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark all notifications read", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, db db.DBTX, id, userID int64) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM user_notifications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) DeleteAll(ctx context.Context, db db.DBTX, userID int64) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM user_notifications WHERE user_id = $1`, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete notifications", err)
	}
	return tag.RowsAffected(), nil
}
