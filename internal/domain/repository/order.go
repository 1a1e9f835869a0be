package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their
// line items.
type OrderRepository interface {
	// Create inserts the order with its items atomically. When the
	// request token already exists the stored order is returned with
	// created=false and no error.
	Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, bool, error)
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	GetForClient(ctx context.Context, clientID, orderID string) (*model.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]model.Order, error)
	ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	AddItems(ctx context.Context, orderID string, items []model.OrderItem) error
	RemoveItems(ctx context.Context, orderID string, itemIDs []string) error
	// RecomputeTotal sums live line items and persists the new total.
	RecomputeTotal(ctx context.Context, orderID string) (decimal.Decimal, error)
	// UpdateStatus applies from->to optimistically: the write re-checks
	// the persisted status and fails when it no longer matches from.
	UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error
}
