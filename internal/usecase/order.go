package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmarquina/eventbooking/internal/adapter/catalog"
	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/domain/repository"
)

// EventDetails carries the scheduling attributes shared by both order
// creation flows.
type EventDetails struct {
	EventTypeID   string
	EventDate     time.Time
	StartTime     string
	EndTime       *string
	Location      string
	CorrelationID *string
}

// OrderService encapsulates order lifecycle logic.
type OrderService struct {
	orders  repository.OrderRepository
	outbox  repository.OutboxRepository
	tx      repository.TxRunner
	pricing *PricingService
	catalog catalog.Client
}

// NewOrderService constructs OrderService.
func NewOrderService(
	orders repository.OrderRepository,
	outbox repository.OutboxRepository,
	tx repository.TxRunner,
	pricing *PricingService,
	c catalog.Client,
) *OrderService {
	return &OrderService{
		orders:  orders,
		outbox:  outbox,
		tx:      tx,
		pricing: pricing,
		catalog: c,
	}
}

// CreateFromPackage prices the package, resolves its contents and creates
// the order with a single package line item. Returns whether the order was
// newly created; a repeated request token returns the stored order.
func (s *OrderService) CreateFromPackage(ctx context.Context, clientID, packageID string, details EventDetails, requestToken string) (*model.Order, bool, error) {
	price, err := s.pricing.ResolvePackagePrice(ctx, packageID)
	if err != nil {
		return nil, false, err
	}

	contents, err := s.catalog.PackageItems(ctx, packageID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, false, domainErrors.ErrPackageEmpty
		}
		return nil, false, err
	}
	if len(contents.OptionIDs) == 0 {
		return nil, false, domainErrors.ErrPackageEmpty
	}

	eventTypeID := details.EventTypeID
	if eventTypeID == "" {
		eventTypeID = contents.EventTypeID
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		EventTypeID:   eventTypeID,
		EventDate:     details.EventDate,
		StartTime:     details.StartTime,
		EndTime:       details.EndTime,
		Location:      details.Location,
		Total:         price.Amount,
		Currency:      price.Currency,
		Status:        model.InitialOrderStatus(price.Amount),
		CorrelationID: details.CorrelationID,
		RequestToken:  requestToken,
	}
	items := []model.OrderItem{{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		Kind:       model.ItemKindPackage,
		CatalogRef: packageID,
		Quantity:   1,
		UnitPrice:  price.Amount,
		LineTotal:  price.Amount,
	}}

	return s.orders.Create(ctx, order, items)
}

// CreateCustom prices the requested options and creates the order with one
// line item per option.
func (s *OrderService) CreateCustom(ctx context.Context, clientID string, requests []ItemRequest, details EventDetails, requestToken string) (*model.Order, bool, error) {
	quote, err := s.pricing.ResolveCustomItems(ctx, requests)
	if err != nil {
		return nil, false, err
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		EventTypeID:   details.EventTypeID,
		EventDate:     details.EventDate,
		StartTime:     details.StartTime,
		EndTime:       details.EndTime,
		Location:      details.Location,
		Total:         quote.Total,
		Currency:      quote.Currency,
		Status:        model.InitialOrderStatus(quote.Total),
		CorrelationID: details.CorrelationID,
		RequestToken:  requestToken,
	}

	items := make([]model.OrderItem, 0, len(quote.Items))
	for _, line := range quote.Items {
		items = append(items, model.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			Kind:       model.ItemKindOption,
			CatalogRef: line.OptionID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			LineTotal:  line.LineTotal,
		})
	}

	return s.orders.Create(ctx, order, items)
}

// Get returns a single order visible to the principal. Admins see any
// order; clients see only their own.
func (s *OrderService) Get(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
	if principal.IsAdmin() {
		return s.orders.GetByID(ctx, orderID)
	}
	return s.orders.GetForClient(ctx, principal.ID, orderID)
}

// List returns the principal's orders, newest first.
func (s *OrderService) List(ctx context.Context, principal model.Principal) ([]model.Order, error) {
	return s.orders.ListByClient(ctx, principal.ID)
}

// Items returns an order's line items in insertion order.
func (s *OrderService) Items(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return s.orders.ListItems(ctx, orderID)
}

// SetStatus applies a transition against the current persisted status.
// Transitions into APPROVED and later working states require a positive
// total.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !to.Valid() || !order.Status.CanTransition(to) {
		return nil, &domainErrors.InvalidTransitionError{From: int(order.Status), To: int(to)}
	}

	if requiresPositiveTotal(to) && !order.Total.IsPositive() {
		return nil, domainErrors.ErrInvalidTotal
	}

	if err := s.orders.UpdateStatus(ctx, orderID, order.Status, to); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}

func requiresPositiveTotal(to model.OrderStatus) bool {
	switch to {
	case model.OrderStatusApproved, model.OrderStatusAssigned, model.OrderStatusClosed:
		return true
	default:
		return false
	}
}

// AddItems prices the requested options, appends them to the order and
// recomputes the total in one transaction.
func (s *OrderService) AddItems(ctx context.Context, orderID string, requests []ItemRequest) (*model.Order, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	quote, err := s.pricing.ResolveCustomItems(ctx, requests)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(quote.Items))
	for _, line := range quote.Items {
		items = append(items, model.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			Kind:       model.ItemKindOption,
			CatalogRef: line.OptionID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			LineTotal:  line.LineTotal,
		})
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.AddItems(ctx, orderID, items); err != nil {
			return err
		}
		_, err := s.orders.RecomputeTotal(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}

// RemoveItems deletes the given line items and recomputes the total in one
// transaction.
func (s *OrderService) RemoveItems(ctx context.Context, orderID string, itemIDs []string) (*model.Order, error) {
	if len(itemIDs) == 0 {
		return nil, domainErrors.ErrEmptyItemIDs
	}

	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.RemoveItems(ctx, orderID, itemIDs); err != nil {
			return err
		}
		_, err := s.orders.RecomputeTotal(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}

// SendSummary enqueues an order summary email for asynchronous dispatch.
func (s *OrderService) SendSummary(ctx context.Context, principal model.Principal, orderID, toEmail string) (*model.EmailMessage, error) {
	order, err := s.Get(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	msg := &model.EmailMessage{
		ID:            uuid.NewString(),
		ToEmail:       toEmail,
		Subject:       fmt.Sprintf("Order %s summary", order.ID),
		Body:          summaryBody(order, items),
		Template:      "order_summary",
		CorrelationID: order.CorrelationID,
		CreatedBy:     principal.ID,
	}
	return s.outbox.Enqueue(ctx, msg)
}

func summaryBody(order *model.Order, items []model.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s\n", order.ID)
	fmt.Fprintf(&b, "Event date: %s %s\n", order.EventDate.Format("2006-01-02"), order.StartTime)
	fmt.Fprintf(&b, "Location: %s\n", order.Location)
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x%d @ %s = %s\n",
			item.CatalogRef, item.Quantity, item.UnitPrice.StringFixed(2), item.LineTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s %s\n", order.Total.StringFixed(2), order.Currency)
	return b.String()
}
