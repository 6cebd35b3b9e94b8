//go:build unit

package confirmation_test

import (
	"testing"

	"resource-desk/internal/domain/confirmation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name    string
		variant confirmation.Variant
		current confirmation.Status
		next    confirmation.Status
		want    confirmation.Status
		errIs   error
	}{
		{
			name:    "return confirmed",
			variant: confirmation.VariantReturn,
			current: confirmation.StatusPending,
			next:    confirmation.StatusConfirmed,
			want:    confirmation.StatusConfirmed,
		},
		{
			name:    "return rejected",
			variant: confirmation.VariantReturn,
			current: confirmation.StatusPending,
			next:    confirmation.StatusRejected,
			want:    confirmation.StatusRejected,
		},
		{
			name:    "done confirmed",
			variant: confirmation.VariantDone,
			current: confirmation.StatusPending,
			next:    confirmation.StatusConfirmed,
			want:    confirmation.StatusConfirmed,
		},
		{
			name:    "done dismissed",
			variant: confirmation.VariantDone,
			current: confirmation.StatusPending,
			next:    confirmation.StatusDismissed,
			want:    confirmation.StatusDismissed,
		},
		{
			name:    "return cannot be dismissed",
			variant: confirmation.VariantReturn,
			current: confirmation.StatusPending,
			next:    confirmation.StatusDismissed,
			errIs:   confirmation.ErrInvalidResolution,
		},
		{
			name:    "done cannot be rejected",
			variant: confirmation.VariantDone,
			current: confirmation.StatusPending,
			next:    confirmation.StatusRejected,
			errIs:   confirmation.ErrInvalidResolution,
		},
		{
			name:    "cannot resolve back to pending",
			variant: confirmation.VariantReturn,
			current: confirmation.StatusPending,
			next:    confirmation.StatusPending,
			errIs:   confirmation.ErrInvalidResolution,
		},
		{
			name:    "confirmed is final",
			variant: confirmation.VariantReturn,
			current: confirmation.StatusConfirmed,
			next:    confirmation.StatusRejected,
			errIs:   confirmation.ErrAlreadyResolved,
		},
		{
			name:    "rejected is final",
			variant: confirmation.VariantReturn,
			current: confirmation.StatusRejected,
			next:    confirmation.StatusConfirmed,
			errIs:   confirmation.ErrAlreadyResolved,
		},
		{
			name:    "dismissed is final",
			variant: confirmation.VariantDone,
			current: confirmation.StatusDismissed,
			next:    confirmation.StatusConfirmed,
			errIs:   confirmation.ErrAlreadyResolved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := confirmation.Resolve(tc.variant, tc.current, tc.next)

			if tc.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus(t *testing.T) {
	t.Run("only pending_confirmation is pending", func(t *testing.T) {
		assert.True(t, confirmation.StatusPending.IsPending())
		assert.False(t, confirmation.StatusConfirmed.IsPending())
		assert.False(t, confirmation.StatusRejected.IsPending())
		assert.False(t, confirmation.StatusDismissed.IsPending())
	})

	t.Run("validity", func(t *testing.T) {
		for _, s := range []confirmation.Status{
			confirmation.StatusPending,
			confirmation.StatusConfirmed,
			confirmation.StatusRejected,
			confirmation.StatusDismissed,
		} {
			assert.True(t, s.IsValid())
		}
		assert.False(t, confirmation.Status("pending").IsValid())
		assert.False(t, confirmation.Status("").IsValid())
	})
}
