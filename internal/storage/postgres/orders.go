package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
)

const orderColumns = `id, client_id, event_type_id, event_date, start_time, end_time, location,
                      total, currency, status, correlation_id, request_token, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.ClientID, &o.EventTypeID, &o.EventDate, &o.StartTime, &o.EndTime,
		&o.Location, &o.Total, &o.Currency, &o.Status, &o.CorrelationID, &o.RequestToken,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, bool, error) {
	const insertOrder = `INSERT INTO orders
            (id, client_id, event_type_id, event_date, start_time, end_time, location,
             total, currency, status, correlation_id, request_token)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (request_token) DO NOTHING
        RETURNING created_at, updated_at`

	const insertItem = `INSERT INTO order_items
            (id, order_id, kind, catalog_ref, quantity, unit_price, line_total)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var (
		result  *model.Order
		created bool
	)

	err := r.storage.WithinTransaction(ctx, func(txCtx context.Context) error {
		q := r.storage.q(txCtx)
		err := q.QueryRow(txCtx, insertOrder,
			order.ID, order.ClientID, order.EventTypeID, order.EventDate, order.StartTime,
			order.EndTime, order.Location, order.Total, order.Currency, order.Status,
			order.CorrelationID, order.RequestToken,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			// No row back means the token already exists: return the
			// winner's order so retried submissions are transparent.
			if errors.Is(err, pgx.ErrNoRows) {
				existing, err := r.getByToken(txCtx, order.RequestToken)
				if err != nil {
					return err
				}
				result = existing
				return nil
			}
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if _, err := q.Exec(txCtx, insertItem,
				items[i].ID, items[i].OrderID, items[i].Kind, items[i].CatalogRef,
				items[i].Quantity, items[i].UnitPrice, items[i].LineTotal,
			); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		result = order
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

func (r *orderRepository) getByToken(ctx context.Context, token string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE request_token=$1`
	order, err := scanOrder(r.storage.q(ctx).QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.q(ctx).QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetForClient(ctx context.Context, clientID, orderID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND client_id=$2`
	order, err := scanOrder(r.storage.q(ctx).QueryRow(ctx, query, orderID, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE client_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.q(ctx).Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.EventTypeID, &o.EventDate, &o.StartTime,
			&o.EndTime, &o.Location, &o.Total, &o.Currency, &o.Status, &o.CorrelationID,
			&o.RequestToken, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, kind, catalog_ref, quantity, unit_price, line_total, created_at
                   FROM order_items WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.q(ctx).Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Kind, &it.CatalogRef, &it.Quantity,
			&it.UnitPrice, &it.LineTotal, &it.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) AddItems(ctx context.Context, orderID string, items []model.OrderItem) error {
	const insertItem = `INSERT INTO order_items
            (id, order_id, kind, catalog_ref, quantity, unit_price, line_total)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	q := r.storage.q(ctx)
	for i := range items {
		items[i].OrderID = orderID
		if _, err := q.Exec(ctx, insertItem,
			items[i].ID, items[i].OrderID, items[i].Kind, items[i].CatalogRef,
			items[i].Quantity, items[i].UnitPrice, items[i].LineTotal,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *orderRepository) RemoveItems(ctx context.Context, orderID string, itemIDs []string) error {
	const query = `DELETE FROM order_items WHERE order_id=$1 AND id = ANY($2)`
	if _, err := r.storage.q(ctx).Exec(ctx, query, orderID, itemIDs); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// RecomputeTotal is the only write path for order totals outside creation.
func (r *orderRepository) RecomputeTotal(ctx context.Context, orderID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.storage.WithinTransaction(ctx, func(txCtx context.Context) error {
		q := r.storage.q(txCtx)
		const sumQuery = `SELECT COALESCE(SUM(line_total), 0) FROM order_items WHERE order_id=$1`
		if err := q.QueryRow(txCtx, sumQuery, orderID).Scan(&total); err != nil {
			return err
		}
		const updQuery = `UPDATE orders SET total=$1, updated_at=NOW() WHERE id=$2`
		if _, err := q.Exec(txCtx, updQuery, total, orderID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// UpdateStatus re-checks the persisted status at write time; losing a
// concurrent race surfaces as an invalid transition, never an overwrite.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`
	q := r.storage.q(ctx)
	tag, err := q.Exec(ctx, query, to, orderID, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var current model.OrderStatus
	err = q.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, orderID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return &domainErrors.InvalidTransitionError{From: int(current), To: int(to)}
}
