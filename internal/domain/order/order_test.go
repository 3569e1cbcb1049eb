//go:build unit

package order_test

import (
	"testing"
	"time"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/domain/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	snapshot := registration.Request{
		Name:           "Asha",
		Email:          "asha@example.com",
		WhatsApp:       "+919800000001",
		SelectedEvents: []int{1, 2},
	}
	ord, err := order.New("order_test123", 198, "INR", "uid-1", "asha@example.com", snapshot, nil, time.Now())
	require.NoError(t, err)
	return ord
}

func TestNew(t *testing.T) {
	t.Run("zero amount is rejected", func(t *testing.T) {
		_, err := order.New("order_x", 0, "INR", "uid-1", "a@b.c", registration.Request{}, nil, time.Now())
		assert.ErrorIs(t, err, order.ErrInvalidAmount)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := order.New("order_x", -50, "INR", "uid-1", "a@b.c", registration.Request{}, nil, time.Now())
		assert.ErrorIs(t, err, order.ErrInvalidAmount)
	})

	t.Run("new order starts as created", func(t *testing.T) {
		ord := newTestOrder(t)
		assert.Equal(t, order.StatusCreated, ord.Status)
		assert.False(t, ord.IsCompleted())
		assert.Empty(t, ord.RegistrationID)
	})
}

func TestComplete(t *testing.T) {
	t.Run("records payment and registration link", func(t *testing.T) {
		ord := newTestOrder(t)
		now := time.Now()

		require.NoError(t, ord.Complete("pay_abc", "TF2025-1A2B3C4D", now))

		assert.True(t, ord.IsCompleted())
		assert.Equal(t, "pay_abc", ord.PaymentID)
		assert.Equal(t, "TF2025-1A2B3C4D", ord.RegistrationID)
		require.NotNil(t, ord.CompletedAt)
		assert.Equal(t, now, *ord.CompletedAt)
	})

	t.Run("completing twice is rejected", func(t *testing.T) {
		ord := newTestOrder(t)
		require.NoError(t, ord.Complete("pay_abc", "TF2025-1A2B3C4D", time.Now()))

		err := ord.Complete("pay_other", "TF2025-FFFFFFFF", time.Now())
		assert.ErrorIs(t, err, order.ErrAlreadyCompleted)
		assert.Equal(t, "pay_abc", ord.PaymentID)
	})

	t.Run("completing a failed order is rejected", func(t *testing.T) {
		ord := newTestOrder(t)
		require.NoError(t, ord.Fail())

		err := ord.Complete("pay_abc", "TF2025-1A2B3C4D", time.Now())
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestFail(t *testing.T) {
	t.Run("failing a completed order is rejected", func(t *testing.T) {
		ord := newTestOrder(t)
		require.NoError(t, ord.Complete("pay_abc", "TF2025-1A2B3C4D", time.Now()))

		assert.ErrorIs(t, ord.Fail(), order.ErrInvalidTransition)
	})
}

func TestIsOwnedBy(t *testing.T) {
	ord := newTestOrder(t)
	assert.True(t, ord.IsOwnedBy("uid-1"))
	assert.False(t, ord.IsOwnedBy("uid-2"))
}
