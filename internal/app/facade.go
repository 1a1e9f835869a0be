package app

import (
	"context"

	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

// BookingFacade aggregates the use cases behind a single application surface
// consumed by HTTP handlers and the outbox dispatcher.
type BookingFacade struct {
	orders      *usecase.OrderService
	holds       *usecase.HoldService
	assignments *usecase.AssignmentService
	outbox      *usecase.OutboxService
}

// NewBookingFacade constructs BookingFacade.
func NewBookingFacade(
	orders *usecase.OrderService,
	holds *usecase.HoldService,
	assignments *usecase.AssignmentService,
	outbox *usecase.OutboxService,
) *BookingFacade {
	return &BookingFacade{orders: orders, holds: holds, assignments: assignments, outbox: outbox}
}

func (f *BookingFacade) CreateOrderFromPackage(ctx context.Context, clientID, packageID string, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
	return f.orders.CreateFromPackage(ctx, clientID, packageID, details, requestToken)
}

func (f *BookingFacade) CreateOrderCustom(ctx context.Context, clientID string, items []usecase.ItemRequest, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
	return f.orders.CreateCustom(ctx, clientID, items, details, requestToken)
}

func (f *BookingFacade) Order(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, principal, orderID)
}

func (f *BookingFacade) Orders(ctx context.Context, principal model.Principal) ([]model.Order, error) {
	return f.orders.List(ctx, principal)
}

func (f *BookingFacade) OrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return f.orders.Items(ctx, orderID)
}

func (f *BookingFacade) SendOrderSummary(ctx context.Context, principal model.Principal, orderID, toEmail string) (*model.EmailMessage, error) {
	return f.orders.SendSummary(ctx, principal, orderID, toEmail)
}

func (f *BookingFacade) CreateHold(ctx context.Context, principal model.Principal, in usecase.CreateHoldInput) (*model.Hold, error) {
	return f.holds.CreateHold(ctx, principal, in)
}

func (f *BookingFacade) ReleaseHold(ctx context.Context, principal model.Principal, holdID string) error {
	return f.holds.ReleaseHold(ctx, principal, holdID)
}

func (f *BookingFacade) SetOrderStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	return f.orders.SetStatus(ctx, orderID, to)
}

func (f *BookingFacade) AddOrderItems(ctx context.Context, orderID string, items []usecase.ItemRequest) (*model.Order, error) {
	return f.orders.AddItems(ctx, orderID, items)
}

func (f *BookingFacade) RemoveOrderItems(ctx context.Context, orderID string, itemIDs []string) (*model.Order, error) {
	return f.orders.RemoveItems(ctx, orderID, itemIDs)
}

func (f *BookingFacade) AssignProvider(ctx context.Context, orderID, providerID string, window model.TimeWindow, holdID *string) (*model.Order, error) {
	return f.assignments.AssignProvider(ctx, orderID, providerID, window, holdID)
}

func (f *BookingFacade) PickOutboxBatch(ctx context.Context, limit int) ([]model.EmailMessage, error) {
	return f.outbox.PickBatch(ctx, limit)
}

func (f *BookingFacade) DispatchOutboxMessage(ctx context.Context, msg model.EmailMessage) error {
	return f.outbox.Dispatch(ctx, msg)
}
