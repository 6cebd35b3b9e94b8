//go:build unit

package commands_test

import (
	"context"
	"testing"

	"resource-desk/internal/infra"
	"resource-desk/internal/usecase/commands"
	"resource-desk/tests/common/builder"
	sharedmock "resource-desk/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationCommands_MarkRead(t *testing.T) {
	ctx := context.Background()
	actor := staffActor().BuildActor()

	t.Run("success: marks the caller's notification read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.notifications.EXPECT().MarkRead(gomock.Any(), m.db, int64(5), actor.UserID).Return(nil)

		uc := commands.NewNotificationUseCase(mockUow)
		err := uc.MarkRead(ctx, actor, 5)

		require.NoError(t, err)
	})

	t.Run("error: someone else's notification reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.notifications.EXPECT().MarkRead(gomock.Any(), m.db, int64(5), actor.UserID).
			Return(infra.WrapRepoErr("notification not found", pgx.ErrNoRows, infra.KindNotFound))

		uc := commands.NewNotificationUseCase(mockUow)
		err := uc.MarkRead(ctx, actor, 5)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "expected kind [%v] but got [%T] (%v)", infra.KindNotFound, err, err)
	})
}

func TestNotificationCommands_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	actor := staffActor().BuildActor()

	t.Run("success: reports how many were marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.notifications.EXPECT().MarkAllRead(gomock.Any(), m.db, actor.UserID).Return(int64(7), nil)

		uc := commands.NewNotificationUseCase(mockUow)
		count, err := uc.MarkAllRead(ctx, actor)

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}

func TestNotificationCommands_Delete(t *testing.T) {
	ctx := context.Background()
	actor := staffActor().BuildActor()

	t.Run("success: deletes the caller's notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.notifications.EXPECT().Delete(gomock.Any(), m.db, int64(5), actor.UserID).Return(nil)

		uc := commands.NewNotificationUseCase(mockUow)
		err := uc.Delete(ctx, actor, 5)

		require.NoError(t, err)
	})
}

func TestNotificationCommands_DeleteAll(t *testing.T) {
	ctx := context.Background()
	actor := staffActor().BuildActor()

	t.Run("success: reports how many were deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.notifications.EXPECT().DeleteAll(gomock.Any(), m.db, actor.UserID).Return(int64(3), nil)

		uc := commands.NewNotificationUseCase(mockUow)
		count, err := uc.DeleteAll(ctx, actor)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("success: empty feed deletes zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.notifications.EXPECT().DeleteAll(gomock.Any(), m.db, actor.UserID).Return(int64(0), nil)

		uc := commands.NewNotificationUseCase(mockUow)
		count, err := uc.DeleteAll(ctx, actor)

		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
