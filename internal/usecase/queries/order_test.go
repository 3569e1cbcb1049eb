//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/infra"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
	"techfest-backend/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderReadStore struct {
	order *order.Order
}

func (f *fakeOrderReadStore) FindByID(_ context.Context, orderID string) (*order.Order, error) {
	if f.order == nil || f.order.ID != orderID {
		return nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)
	}
	return f.order, nil
}

func TestGetStatus(t *testing.T) {
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	ord, err := order.New("order_1", 198, "INR", "uid-1", "asha@example.com", registration.Request{
		Name:           "Asha",
		Email:          "asha@example.com",
		WhatsApp:       "+919800000001",
		SelectedEvents: []int{1, 2},
	}, nil, now)
	require.NoError(t, err)

	owner := usecase.Caller{UID: "uid-1", Email: "asha@example.com"}

	t.Run("owner sees the order status", func(t *testing.T) {
		q := queries.NewOrderQueries(&fakeOrderReadStore{order: ord})

		view, err := q.GetStatus(context.Background(), owner, "order_1")
		require.NoError(t, err)
		assert.Equal(t, "order_1", view.OrderID)
		assert.Equal(t, 198, view.Amount)
		assert.Equal(t, "created", view.Status)
		assert.Empty(t, view.RegistrationID)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		q := queries.NewOrderQueries(&fakeOrderReadStore{order: ord})
		other := usecase.Caller{UID: "uid-2", Email: "other@example.com"}

		_, err := q.GetStatus(context.Background(), other, "order_1")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown order", func(t *testing.T) {
		q := queries.NewOrderQueries(&fakeOrderReadStore{})

		_, err := q.GetStatus(context.Background(), owner, "order_x")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})
}
