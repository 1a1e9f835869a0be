package handlers

import (
	"context"

	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrderFromPackage(ctx context.Context, clientID, packageID string, details usecase.EventDetails, requestToken string) (*model.Order, bool, error)
	CreateOrderCustom(ctx context.Context, clientID string, items []usecase.ItemRequest, details usecase.EventDetails, requestToken string) (*model.Order, bool, error)
	Order(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error)
	Orders(ctx context.Context, principal model.Principal) ([]model.Order, error)
	OrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	SendOrderSummary(ctx context.Context, principal model.Principal, orderID, toEmail string) (*model.EmailMessage, error)
}

// HoldFacade encapsulates hold operations exposed via HTTP.
type HoldFacade interface {
	CreateHold(ctx context.Context, principal model.Principal, in usecase.CreateHoldInput) (*model.Hold, error)
	ReleaseHold(ctx context.Context, principal model.Principal, holdID string) error
}

// AdminFacade encapsulates privileged order mutations.
type AdminFacade interface {
	SetOrderStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error)
	AddOrderItems(ctx context.Context, orderID string, items []usecase.ItemRequest) (*model.Order, error)
	RemoveOrderItems(ctx context.Context, orderID string, itemIDs []string) (*model.Order, error)
	AssignProvider(ctx context.Context, orderID, providerID string, window model.TimeWindow, holdID *string) (*model.Order, error)
}

// BookingFacade aggregates the full set of operations used across handlers.
type BookingFacade interface {
	OrderFacade
	HoldFacade
	AdminFacade
}
