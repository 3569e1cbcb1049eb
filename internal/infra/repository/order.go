package repository

import (
	"context"
	"encoding/json"
	"time"

	"techfest-backend/internal/domain/order"
	"techfest-backend/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	snapshot, err := json.Marshal(o.Snapshot)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order snapshot", err)
	}
	notes, err := json.Marshal(o.Notes)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order notes", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO payment_orders
			(order_id, amount, currency, status, user_id, user_email, snapshot, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.AmountRupees, o.Currency, string(o.Status), o.UserID, o.UserEmail,
		snapshot, notes, o.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT order_id, amount, currency, status, user_id, user_email, snapshot, notes,
		       COALESCE(payment_id, ''), COALESCE(registration_id, ''), created_at, completed_at
		FROM payment_orders
		WHERE order_id = $1`,
		orderID,
	)

	var (
		o           order.Order
		status      string
		snapshot    []byte
		notes       []byte
		completedAt *time.Time
	)
	err := row.Scan(&o.ID, &o.AmountRupees, &o.Currency, &status, &o.UserID, &o.UserEmail,
		&snapshot, &notes, &o.PaymentID, &o.RegistrationID, &o.CreatedAt, &completedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	o.Status = order.Status(status)
	o.CompletedAt = completedAt
	if err := json.Unmarshal(snapshot, &o.Snapshot); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order snapshot", err)
	}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &o.Notes); err != nil {
			return nil, infra.WrapRepoErr("failed to decode order notes", err)
		}
	}
	return &o, nil
}

// Complete links the registration to the order and marks it completed. The
// conditional WHERE is the idempotency guard: only one caller ever observes
// linked=true for a given order.
func (r *OrderRepository) Complete(ctx context.Context, orderID, paymentID, registrationID string, completedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payment_orders
		SET status = $2, payment_id = $3, registration_id = $4, completed_at = $5
		WHERE order_id = $1 AND registration_id IS NULL AND status <> $2`,
		orderID, string(order.StatusCompleted), paymentID, registrationID, completedAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete order", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) MarkFailed(ctx context.Context, orderID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE payment_orders
		SET status = $2
		WHERE order_id = $1 AND status = $3`,
		orderID, string(order.StatusFailed), string(order.StatusCreated),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order failed", err)
	}
	return nil
}
