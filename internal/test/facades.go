package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dmarquina/eventbooking/internal/adapter/catalog"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFromPackageFn func(context.Context, string, string, usecase.EventDetails, string) (*model.Order, bool, error)
	CreateCustomFn      func(context.Context, string, []usecase.ItemRequest, usecase.EventDetails, string) (*model.Order, bool, error)
	OrderFn             func(context.Context, model.Principal, string) (*model.Order, error)
	OrdersFn            func(context.Context, model.Principal) ([]model.Order, error)
	OrderItemsFn        func(context.Context, string) ([]model.OrderItem, error)
	SendSummaryFn       func(context.Context, model.Principal, string, string) (*model.EmailMessage, error)
}

// CreateOrderFromPackage delegates to the override or returns a default order.
func (s OrderFacadeStub) CreateOrderFromPackage(ctx context.Context, clientID, packageID string, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
	if s.CreateFromPackageFn != nil {
		return s.CreateFromPackageFn(ctx, clientID, packageID, details, requestToken)
	}
	return &model.Order{ID: "ord-1", ClientID: clientID, Status: model.OrderStatusQuoted, Total: decimal.NewFromInt(100), Currency: "USD", RequestToken: requestToken}, true, nil
}

// CreateOrderCustom delegates to the override or returns a default order.
func (s OrderFacadeStub) CreateOrderCustom(ctx context.Context, clientID string, items []usecase.ItemRequest, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
	if s.CreateCustomFn != nil {
		return s.CreateCustomFn(ctx, clientID, items, details, requestToken)
	}
	return &model.Order{ID: "ord-1", ClientID: clientID, Status: model.OrderStatusQuoted, Total: decimal.NewFromInt(100), Currency: "USD", RequestToken: requestToken}, true, nil
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, principal, orderID)
	}
	return &model.Order{ID: orderID, ClientID: principal.ID, Status: model.OrderStatusQuoted}, nil
}

// Orders returns predefined orders for the principal.
func (s OrderFacadeStub) Orders(ctx context.Context, principal model.Principal) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, principal)
	}
	return []model.Order{{ID: "ord-1", ClientID: principal.ID}}, nil
}

// OrderItems returns predefined line items.
func (s OrderFacadeStub) OrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	if s.OrderItemsFn != nil {
		return s.OrderItemsFn(ctx, orderID)
	}
	return []model.OrderItem{{ID: "item-1", OrderID: orderID, Kind: model.ItemKindOption, Quantity: 1}}, nil
}

// SendOrderSummary returns a queued message.
func (s OrderFacadeStub) SendOrderSummary(ctx context.Context, principal model.Principal, orderID, toEmail string) (*model.EmailMessage, error) {
	if s.SendSummaryFn != nil {
		return s.SendSummaryFn(ctx, principal, orderID, toEmail)
	}
	return &model.EmailMessage{ID: "msg-1", ToEmail: toEmail, Status: model.OutboxStatusPending}, nil
}

// HoldFacadeStub simulates hold operations.
type HoldFacadeStub struct {
	CreateHoldFn  func(context.Context, model.Principal, usecase.CreateHoldInput) (*model.Hold, error)
	ReleaseHoldFn func(context.Context, model.Principal, string) error
}

// CreateHold returns a configured hold.
func (s HoldFacadeStub) CreateHold(ctx context.Context, principal model.Principal, in usecase.CreateHoldInput) (*model.Hold, error) {
	if s.CreateHoldFn != nil {
		return s.CreateHoldFn(ctx, principal, in)
	}
	return &model.Hold{ID: "hold-1", ProviderID: in.ProviderID, OptionID: in.OptionID, Window: in.Window, Status: model.HoldStatusActive, CreatedBy: principal.ID}, nil
}

// ReleaseHold executes the configured release handler.
func (s HoldFacadeStub) ReleaseHold(ctx context.Context, principal model.Principal, holdID string) error {
	if s.ReleaseHoldFn != nil {
		return s.ReleaseHoldFn(ctx, principal, holdID)
	}
	return nil
}

// AdminFacadeStub simulates privileged order mutations.
type AdminFacadeStub struct {
	SetStatusFn      func(context.Context, string, model.OrderStatus) (*model.Order, error)
	AddItemsFn       func(context.Context, string, []usecase.ItemRequest) (*model.Order, error)
	RemoveItemsFn    func(context.Context, string, []string) (*model.Order, error)
	AssignProviderFn func(context.Context, string, string, model.TimeWindow, *string) (*model.Order, error)
}

// SetOrderStatus returns the order in the requested status.
func (s AdminFacadeStub) SetOrderStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, to)
	}
	return &model.Order{ID: orderID, Status: to}, nil
}

// AddOrderItems returns the order after the mutation.
func (s AdminFacadeStub) AddOrderItems(ctx context.Context, orderID string, items []usecase.ItemRequest) (*model.Order, error) {
	if s.AddItemsFn != nil {
		return s.AddItemsFn(ctx, orderID, items)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusQuoted}, nil
}

// RemoveOrderItems returns the order after the mutation.
func (s AdminFacadeStub) RemoveOrderItems(ctx context.Context, orderID string, itemIDs []string) (*model.Order, error) {
	if s.RemoveItemsFn != nil {
		return s.RemoveItemsFn(ctx, orderID, itemIDs)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusQuoted}, nil
}

// AssignProvider returns the order in ASSIGNED status.
func (s AdminFacadeStub) AssignProvider(ctx context.Context, orderID, providerID string, window model.TimeWindow, holdID *string) (*model.Order, error) {
	if s.AssignProviderFn != nil {
		return s.AssignProviderFn(ctx, orderID, providerID, window, holdID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusAssigned}, nil
}

// BookingFacadeStub aggregates facade dependencies for HTTP layer tests.
type BookingFacadeStub struct {
	OrderFacadeStub
	HoldFacadeStub
	AdminFacadeStub
}

// OutboxFacadeStub mimics dispatcher interactions with the booking facade.
type OutboxFacadeStub struct {
	sync.Mutex

	Batches    [][]model.EmailMessage
	PickFn     func(context.Context, int) ([]model.EmailMessage, error)
	DispatchFn func(context.Context, model.EmailMessage) error

	Dispatched []model.EmailMessage
}

// PickOutboxBatch pops the next configured batch.
func (s *OutboxFacadeStub) PickOutboxBatch(ctx context.Context, limit int) ([]model.EmailMessage, error) {
	if s.PickFn != nil {
		return s.PickFn(ctx, limit)
	}
	s.Lock()
	defer s.Unlock()
	if len(s.Batches) == 0 {
		return nil, nil
	}
	batch := s.Batches[0]
	s.Batches = s.Batches[1:]
	return batch, nil
}

// DispatchOutboxMessage records the dispatched message.
func (s *OutboxFacadeStub) DispatchOutboxMessage(ctx context.Context, msg model.EmailMessage) error {
	if s.DispatchFn != nil {
		return s.DispatchFn(ctx, msg)
	}
	s.Lock()
	defer s.Unlock()
	s.Dispatched = append(s.Dispatched, msg)
	return nil
}

// CatalogClientStub returns configured prices and package contents.
type CatalogClientStub struct {
	PriceFn        func(context.Context, string) (*catalog.Price, error)
	PackagePriceFn func(context.Context, string) (*catalog.Price, error)
	PackageItemsFn func(context.Context, string) (*catalog.PackageContents, error)
}

// CurrentPrice returns a default option price unless overridden.
func (s CatalogClientStub) CurrentPrice(ctx context.Context, optionID string) (*catalog.Price, error) {
	if s.PriceFn != nil {
		return s.PriceFn(ctx, optionID)
	}
	return &catalog.Price{Currency: "USD", Amount: decimal.NewFromInt(100)}, nil
}

// CurrentPackagePrice returns a default package price unless overridden.
func (s CatalogClientStub) CurrentPackagePrice(ctx context.Context, packageID string) (*catalog.Price, error) {
	if s.PackagePriceFn != nil {
		return s.PackagePriceFn(ctx, packageID)
	}
	return &catalog.Price{Currency: "USD", Amount: decimal.NewFromInt(1000)}, nil
}

// PackageItems returns default package contents unless overridden.
func (s CatalogClientStub) PackageItems(ctx context.Context, packageID string) (*catalog.PackageContents, error) {
	if s.PackageItemsFn != nil {
		return s.PackageItemsFn(ctx, packageID)
	}
	return &catalog.PackageContents{EventTypeID: "evt-1", OptionIDs: []string{"opt-1"}}, nil
}

// MailSenderStub records sent messages.
type MailSenderStub struct {
	sync.Mutex

	SendFn func(model.EmailMessage) error
	Sent   []model.EmailMessage
}

// Send records the message or delegates to the override.
func (s *MailSenderStub) Send(msg model.EmailMessage) error {
	if s.SendFn != nil {
		return s.SendFn(msg)
	}
	s.Lock()
	defer s.Unlock()
	s.Sent = append(s.Sent, msg)
	return nil
}
