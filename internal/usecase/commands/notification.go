package commands

import (
	"context"

	"resource-desk/internal/usecase/shared"
)

// NotificationCommands lets a user manage their own notification feed. Every
// operation is scoped to the caller; ids belonging to someone else read as
// not found.
type NotificationCommands interface {
	MarkRead(ctx context.Context, actor shared.Actor, notificationID int64) error
	MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error)
	Delete(ctx context.Context, actor shared.Actor, notificationID int64) error
	DeleteAll(ctx context.Context, actor shared.Actor) (int64, error)
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, actor shared.Actor, notificationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, actor.UserID)
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error) {
	var count int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.UserID)
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (uc *notificationUseCaseImpl) Delete(ctx context.Context, actor shared.Actor, notificationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Delete(ctx, tx.DB(), notificationID, actor.UserID)
	})
}

func (uc *notificationUseCaseImpl) DeleteAll(ctx context.Context, actor shared.Actor) (int64, error) {
	var count int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().DeleteAll(ctx, tx.DB(), actor.UserID)
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
