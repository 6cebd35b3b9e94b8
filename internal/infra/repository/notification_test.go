//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"resource-desk/internal/domain/notification"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Create Notification Tests
// =============================================================================

func TestNotificationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		db            *stubDBTX
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:          "success: notification created",
			db:            &stubDBTX{execTag: pgconn.NewCommandTag("INSERT 0 1")},
			expectedError: false,
		},
		{
			name: "error: recipient deleted concurrently",
			db: &stubDBTX{execErr: &pgconn.PgError{
				Code:    "23503",
				Message: `insert or update on table "user_notifications" violates foreign key constraint`,
			}},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name:          "error: database error occurs",
			db:            &stubDBTX{execErr: errors.New("database connection error")},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewNotificationRepository()

			actualError := repo.Create(ctx, tc.db, 1, "Borrowing Request Approved", "Your borrowing request for equipment has been approved.", notification.TypeInfo)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Mark Read Tests
// =============================================================================

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		db            *stubDBTX
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:          "success: notification marked read",
			db:            &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 1")},
			expectedError: false,
		},
		{
			name:          "error: no row for id and owner",
			db:            &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 0")},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error occurs",
			db:            &stubDBTX{execErr: errors.New("database connection error")},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewNotificationRepository()

			actualError := repo.MarkRead(ctx, tc.db, 10, 1)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Mark All Read Tests
// =============================================================================

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns affected row count", func(t *testing.T) {
		repo := repository.NewNotificationRepository()

		count, err := repo.MarkAllRead(ctx, &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 3")}, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo := repository.NewNotificationRepository()

		count, err := repo.MarkAllRead(ctx, &stubDBTX{execErr: errors.New("database connection error")}, 1)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Equal(t, int64(0), count)
	})
}

// =============================================================================
// Delete Notification Tests
// =============================================================================

func TestNotificationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		db            *stubDBTX
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:          "success: notification deleted",
			db:            &stubDBTX{execTag: pgconn.NewCommandTag("DELETE 1")},
			expectedError: false,
		},
		{
			name:          "error: no row for id and owner",
			db:            &stubDBTX{execTag: pgconn.NewCommandTag("DELETE 0")},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewNotificationRepository()

			actualError := repo.Delete(ctx, tc.db, 10, 1)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// stubDBTX is a canned db.DBTX implementation for classification tests.
type stubDBTX struct {
	execTag pgconn.CommandTag
	execErr error
	row     stubRow
}

func (s *stubDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return s.execTag, s.execErr
}

func (s *stubDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("stubDBTX.Query was called unexpectedly")
}

func (s *stubDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.row
}

// stubRow fails with err when set, otherwise hands dest to fill.
type stubRow struct {
	err  error
	fill func(dest ...any)
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.fill != nil {
		r.fill(dest...)
	}
	return nil
}
