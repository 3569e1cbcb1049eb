package queries

import (
	"context"
	"time"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/infra"
	"techfest-backend/internal/pkg/errs"
	"techfest-backend/internal/usecase"
)

// OrderStatusView is the owner-restricted order snapshot returned by the
// status endpoint.
type OrderStatusView struct {
	OrderID        string
	Amount         int
	Currency       string
	Status         string
	RegistrationID string
	CreatedAt      time.Time
}

type OrderReadStore interface {
	FindByID(ctx context.Context, orderID string) (*order.Order, error)
}

type OrderQueries interface {
	GetStatus(ctx context.Context, caller usecase.Caller, orderID string) (*OrderStatusView, error)
}

type orderQueriesImpl struct {
	orders OrderReadStore
}

func NewOrderQueries(orders OrderReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

func (q *orderQueriesImpl) GetStatus(ctx context.Context, caller usecase.Caller, orderID string) (*OrderStatusView, error) {
	ord, err := q.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !ord.IsOwnedBy(caller.UID) {
		return nil, errs.ErrForbidden
	}

	return &OrderStatusView{
		OrderID:        ord.ID,
		Amount:         ord.AmountRupees,
		Currency:       ord.Currency,
		Status:         string(ord.Status),
		RegistrationID: ord.RegistrationID,
		CreatedAt:      ord.CreatedAt,
	}, nil
}
