package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order, []model.OrderItem) (*model.Order, bool, error)
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	GetForClientFn func(context.Context, string, string) (*model.Order, error)
	ListByClientFn func(context.Context, string) ([]model.Order, error)
	ListItemsFn    func(context.Context, string) ([]model.OrderItem, error)
	AddItemsFn     func(context.Context, string, []model.OrderItem) error
	RemoveItemsFn  func(context.Context, string, []string) error
	RecomputeFn    func(context.Context, string) (decimal.Decimal, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus, model.OrderStatus) error

	Orders []model.Order
	Items  []model.OrderItem
}

// Create returns the submitted order as newly created unless overridden.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, items)
	}
	s.Orders = append(s.Orders, *order)
	s.Items = append(s.Items, items...)
	return order, true, nil
}

// GetByID returns a stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetForClient returns a stored order scoped to the client.
func (s *OrderRepositoryStub) GetForClient(ctx context.Context, clientID, orderID string) (*model.Order, error) {
	if s.GetForClientFn != nil {
		return s.GetForClientFn(ctx, clientID, orderID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID && o.ClientID == clientID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByClient returns stored orders of the client.
func (s *OrderRepositoryStub) ListByClient(ctx context.Context, clientID string) ([]model.Order, error) {
	if s.ListByClientFn != nil {
		return s.ListByClientFn(ctx, clientID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.ClientID == clientID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListItems returns stored line items of the order.
func (s *OrderRepositoryStub) ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	if s.ListItemsFn != nil {
		return s.ListItemsFn(ctx, orderID)
	}
	var result []model.OrderItem
	for _, item := range s.Items {
		if item.OrderID == orderID {
			result = append(result, item)
		}
	}
	return result, nil
}

// AddItems appends items unless overridden.
func (s *OrderRepositoryStub) AddItems(ctx context.Context, orderID string, items []model.OrderItem) error {
	if s.AddItemsFn != nil {
		return s.AddItemsFn(ctx, orderID, items)
	}
	s.Items = append(s.Items, items...)
	return nil
}

// RemoveItems drops matching items unless overridden.
func (s *OrderRepositoryStub) RemoveItems(ctx context.Context, orderID string, itemIDs []string) error {
	if s.RemoveItemsFn != nil {
		return s.RemoveItemsFn(ctx, orderID, itemIDs)
	}
	drop := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = true
	}
	kept := s.Items[:0]
	for _, item := range s.Items {
		if !(item.OrderID == orderID && drop[item.ID]) {
			kept = append(kept, item)
		}
	}
	s.Items = kept
	return nil
}

// RecomputeTotal sums stored line totals unless overridden.
func (s *OrderRepositoryStub) RecomputeTotal(ctx context.Context, orderID string) (decimal.Decimal, error) {
	if s.RecomputeFn != nil {
		return s.RecomputeFn(ctx, orderID)
	}
	total := decimal.Zero
	for _, item := range s.Items {
		if item.OrderID == orderID {
			total = total.Add(item.LineTotal)
		}
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Total = total
		}
	}
	return total, nil
}

// UpdateStatus applies the transition to the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = to
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// HoldRepositoryStub stores holds in-memory for tests.
type HoldRepositoryStub struct {
	CreateFn  func(context.Context, *model.Hold) error
	GetFn     func(context.Context, string) (*model.Hold, error)
	OverlapFn func(context.Context, string, model.TimeWindow, time.Time, *string) (*model.Hold, error)
	ReleaseFn func(context.Context, string) error

	Holds []model.Hold
}

// Create stores the hold unless overridden.
func (s *HoldRepositoryStub) Create(ctx context.Context, hold *model.Hold) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, hold)
	}
	s.Holds = append(s.Holds, *hold)
	return nil
}

// GetByID returns a stored hold or not found.
func (s *HoldRepositoryStub) GetByID(ctx context.Context, holdID string) (*model.Hold, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, holdID)
	}
	for _, h := range s.Holds {
		if h.ID == holdID {
			hold := h
			return &hold, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindLiveOverlapping scans stored holds unless overridden.
func (s *HoldRepositoryStub) FindLiveOverlapping(ctx context.Context, providerID string, window model.TimeWindow, now time.Time, excludeID *string) (*model.Hold, error) {
	if s.OverlapFn != nil {
		return s.OverlapFn(ctx, providerID, window, now, excludeID)
	}
	for _, h := range s.Holds {
		if excludeID != nil && h.ID == *excludeID {
			continue
		}
		if h.ProviderID == providerID && h.Live(now) && h.Window.Overlaps(window) {
			hold := h
			return &hold, nil
		}
	}
	return nil, nil
}

// Release marks a stored active hold released.
func (s *HoldRepositoryStub) Release(ctx context.Context, holdID string) error {
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, holdID)
	}
	for i := range s.Holds {
		if s.Holds[i].ID == holdID {
			if s.Holds[i].Status != model.HoldStatusActive {
				return domainErrors.ErrHoldNotActive
			}
			s.Holds[i].Status = model.HoldStatusReleased
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ReservationRepositoryStub stores reservations in-memory for tests.
type ReservationRepositoryStub struct {
	CreateFn  func(context.Context, *model.Reservation) error
	OverlapFn func(context.Context, string, model.TimeWindow) (*model.Reservation, error)

	Reservations []model.Reservation
}

// Create stores the reservation unless overridden.
func (s *ReservationRepositoryStub) Create(ctx context.Context, res *model.Reservation) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, res)
	}
	s.Reservations = append(s.Reservations, *res)
	return nil
}

// FindConfirmedOverlapping scans stored reservations unless overridden.
func (s *ReservationRepositoryStub) FindConfirmedOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Reservation, error) {
	if s.OverlapFn != nil {
		return s.OverlapFn(ctx, providerID, window)
	}
	for _, r := range s.Reservations {
		if r.ProviderID == providerID && r.Status == model.ReservationStatusConfirmed && r.Window.Overlaps(window) {
			res := r
			return &res, nil
		}
	}
	return nil, nil
}

// BlackoutRepositoryStub returns configured blackout periods.
type BlackoutRepositoryStub struct {
	OverlapFn func(context.Context, string, model.TimeWindow) (*model.Blackout, error)

	Blackouts []model.Blackout
}

// FindBreakOverlapping scans stored blackouts unless overridden.
func (s *BlackoutRepositoryStub) FindBreakOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Blackout, error) {
	if s.OverlapFn != nil {
		return s.OverlapFn(ctx, providerID, window)
	}
	for _, b := range s.Blackouts {
		if b.ProviderID == providerID && b.Kind == model.BlackoutKindBreak && b.Window.Overlaps(window) {
			blackout := b
			return &blackout, nil
		}
	}
	return nil, nil
}

// OutboxRepositoryStub stores queued messages in-memory for tests.
type OutboxRepositoryStub struct {
	EnqueueFn     func(context.Context, *model.EmailMessage) (*model.EmailMessage, error)
	PickPendingFn func(context.Context, int) ([]model.EmailMessage, error)
	MarkSentFn    func(context.Context, string) error
	MarkErrorFn   func(context.Context, string, string) error

	Messages []model.EmailMessage
	Sent     []string
	Errors   map[string]string
}

// Enqueue stores the message unless overridden.
func (s *OutboxRepositoryStub) Enqueue(ctx context.Context, msg *model.EmailMessage) (*model.EmailMessage, error) {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, msg)
	}
	msg.Status = model.OutboxStatusPending
	s.Messages = append(s.Messages, *msg)
	return msg, nil
}

// PickPending returns stored pending messages up to limit.
func (s *OutboxRepositoryStub) PickPending(ctx context.Context, limit int) ([]model.EmailMessage, error) {
	if s.PickPendingFn != nil {
		return s.PickPendingFn(ctx, limit)
	}
	var result []model.EmailMessage
	for _, msg := range s.Messages {
		if len(result) == limit {
			break
		}
		if msg.Status == model.OutboxStatusPending || msg.Status == model.OutboxStatusRetry {
			result = append(result, msg)
		}
	}
	return result, nil
}

// MarkSent records the delivery.
func (s *OutboxRepositoryStub) MarkSent(ctx context.Context, id string) error {
	if s.MarkSentFn != nil {
		return s.MarkSentFn(ctx, id)
	}
	s.Sent = append(s.Sent, id)
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages[i].Status = model.OutboxStatusSent
		}
	}
	return nil
}

// MarkError records the failure.
func (s *OutboxRepositoryStub) MarkError(ctx context.Context, id, errMsg string) error {
	if s.MarkErrorFn != nil {
		return s.MarkErrorFn(ctx, id, errMsg)
	}
	if s.Errors == nil {
		s.Errors = make(map[string]string)
	}
	s.Errors[id] = errMsg
	return nil
}

// TxRunnerStub runs callbacks inline without a database.
type TxRunnerStub struct {
	LockCalls int
	LockedIDs []string
}

// WithinTransaction runs fn with the same context.
func (s *TxRunnerStub) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// WithProviderLock records the lock request and runs fn inline.
func (s *TxRunnerStub) WithProviderLock(ctx context.Context, providerID string, fn func(ctx context.Context) error) error {
	s.LockCalls++
	s.LockedIDs = append(s.LockedIDs, providerID)
	return fn(ctx)
}
