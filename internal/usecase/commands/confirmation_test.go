//go:build unit

package commands_test

import (
	"context"
	"testing"

	"resource-desk/internal/domain/audit"
	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/domain/notification"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/infra"
	"resource-desk/internal/usecase/commands"
	"resource-desk/tests/common/builder"
	sharedmock "resource-desk/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// ConfirmReturn Tests
// =============================================================================

func TestConfirmationCommands_ConfirmReturn(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewUserBuilder().BuildActor()

	t.Run("success: marks the loan returned and frees the equipment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().BuildSnapshot()
		gomock.InOrder(
			m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil),
			m.confirmations.EXPECT().SetReturnStatus(gomock.Any(), m.db, int64(1), confirmation.StatusConfirmed).Return(nil),
			m.borrowings.EXPECT().SetReturnStatus(gomock.Any(), m.db, int64(1), request.ReturnStatusReturned).Return(nil),
			m.inventory.EXPECT().SetEquipmentAvailability(gomock.Any(), m.db, int64(100), request.AvailabilityAvailable).Return(nil),
			m.auditLogs.EXPECT().Append(gomock.Any(), m.db, audit.SinkEquipment, int64(100), audit.ActionReturned,
				"Equipment return confirmed for borrowing ID 1", actor.Email).Return(nil),
			m.notifications.EXPECT().Create(gomock.Any(), m.db, int64(10), "Equipment Return Confirmed",
				"Your equipment return has been confirmed", notification.TypeSuccess).Return(nil),
		)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmReturn(ctx, actor, 1, 1)

		require.NoError(t, err)
	})

	t.Run("error: borrowing id does not match the notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().BuildSnapshot()
		m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmReturn(ctx, actor, 1, 2)

		require.ErrorIs(t, err, commands.ErrRequestMismatch)
	})

	t.Run("error: mismatch wins over an already-resolved notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().WithStatus(string(confirmation.StatusConfirmed)).BuildSnapshot()
		m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmReturn(ctx, actor, 1, 2)

		require.ErrorIs(t, err, commands.ErrRequestMismatch)
	})

	t.Run("error: already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().WithStatus(string(confirmation.StatusConfirmed)).BuildSnapshot()
		m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmReturn(ctx, actor, 1, 1)

		require.ErrorIs(t, err, confirmation.ErrAlreadyResolved)
	})

	t.Run("error: notice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(404)).
			Return(nil, infra.WrapRepoErr("return_notification not found", pgx.ErrNoRows, infra.KindNotFound))

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmReturn(ctx, actor, 404, 1)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "expected kind [%v] but got [%T] (%v)", infra.KindNotFound, err, err)
	})
}

// =============================================================================
// RejectReturn Tests
// =============================================================================

func TestConfirmationCommands_RejectReturn(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewUserBuilder().BuildActor()

	t.Run("success: resolves the notice and leaves loan and equipment alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		// borrowings and inventory carry no expectations: the borrower keeps
		// the item.
		snap := builder.NewConfirmationBuilder().BuildSnapshot()
		gomock.InOrder(
			m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil),
			m.confirmations.EXPECT().SetReturnStatus(gomock.Any(), m.db, int64(1), confirmation.StatusRejected).Return(nil),
			m.auditLogs.EXPECT().Append(gomock.Any(), m.db, audit.SinkEquipment, int64(100), audit.ActionReturnRejected,
				"Equipment return rejected for borrowing ID 1", actor.Email).Return(nil),
			m.notifications.EXPECT().Create(gomock.Any(), m.db, int64(10), "Equipment Return Rejected",
				"Your equipment return has been rejected. Please contact the admin office.", notification.TypeError).Return(nil),
		)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.RejectReturn(ctx, actor, 1)

		require.NoError(t, err)
	})

	t.Run("error: already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().WithStatus(string(confirmation.StatusRejected)).BuildSnapshot()
		m.confirmations.EXPECT().FindReturnForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.RejectReturn(ctx, actor, 1)

		require.ErrorIs(t, err, confirmation.ErrAlreadyResolved)
	})
}

// =============================================================================
// ConfirmDone Tests
// =============================================================================

func TestConfirmationCommands_ConfirmDone(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewUserBuilder().BuildActor()

	t.Run("success: completes the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().With(func(c *builder.ConfirmationBuilder) {
			c.ResourceName = "Conference Room A"
		}).BuildSnapshot()
		gomock.InOrder(
			m.confirmations.EXPECT().FindDoneForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil),
			m.confirmations.EXPECT().SetDoneStatus(gomock.Any(), m.db, int64(1), confirmation.StatusConfirmed).Return(nil),
			m.bookings.EXPECT().UpdateStatus(gomock.Any(), m.db, int64(1), request.StatusCompleted).Return(nil),
			m.auditLogs.EXPECT().Append(gomock.Any(), m.db, audit.SinkFacility, int64(100), audit.ActionCompleted,
				"Booking completion confirmed for booking ID 1", actor.Email).Return(nil),
			m.notifications.EXPECT().Create(gomock.Any(), m.db, int64(10), "Booking Completion Confirmed",
				"Your booking completion has been confirmed", notification.TypeSuccess).Return(nil),
		)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmDone(ctx, actor, 1, 1)

		require.NoError(t, err)
	})

	t.Run("error: booking id does not match the notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().BuildSnapshot()
		m.confirmations.EXPECT().FindDoneForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmDone(ctx, actor, 1, 2)

		require.ErrorIs(t, err, commands.ErrRequestMismatch)
	})

	t.Run("error: already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		snap := builder.NewConfirmationBuilder().WithStatus(string(confirmation.StatusDismissed)).BuildSnapshot()
		m.confirmations.EXPECT().FindDoneForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.ConfirmDone(ctx, actor, 1, 1)

		require.ErrorIs(t, err, confirmation.ErrAlreadyResolved)
	})
}

// =============================================================================
// DismissDone Tests
// =============================================================================

func TestConfirmationCommands_DismissDone(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewUserBuilder().BuildActor()

	t.Run("success: resolves the notice and keeps the booking approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUow := sharedmock.NewMockUnitOfWork(ctrl)
		m := newTxMocks(ctrl)
		expectWithin(mockUow, m.tx)

		// bookings carries no expectations: the requester may report again.
		snap := builder.NewConfirmationBuilder().BuildSnapshot()
		gomock.InOrder(
			m.confirmations.EXPECT().FindDoneForUpdate(gomock.Any(), m.db, int64(1)).Return(&snap, nil),
			m.confirmations.EXPECT().SetDoneStatus(gomock.Any(), m.db, int64(1), confirmation.StatusDismissed).Return(nil),
			m.auditLogs.EXPECT().Append(gomock.Any(), m.db, audit.SinkFacility, int64(100), audit.ActionDismissed,
				"Booking completion dismissed for booking ID 1", actor.Email).Return(nil),
			m.notifications.EXPECT().Create(gomock.Any(), m.db, int64(10), "Booking Completion Dismissed",
				"Your booking completion notification has been dismissed", notification.TypeInfo).Return(nil),
		)

		uc := commands.NewConfirmationUseCase(mockUow)
		err := uc.DismissDone(ctx, actor, 1)

		require.NoError(t, err)
	})
}
