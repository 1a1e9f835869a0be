package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/domain/repository"
)

// AssignmentService binds a provider to an order's first line item and
// advances the order to ASSIGNED.
type AssignmentService struct {
	orders       repository.OrderRepository
	reservations repository.ReservationRepository
	holds        *HoldService
	conflicts    *ConflictDetector
	tx           repository.TxRunner
}

// NewAssignmentService constructs AssignmentService.
func NewAssignmentService(
	orders repository.OrderRepository,
	reservations repository.ReservationRepository,
	holds *HoldService,
	conflicts *ConflictDetector,
	tx repository.TxRunner,
) *AssignmentService {
	return &AssignmentService{
		orders:       orders,
		reservations: reservations,
		holds:        holds,
		conflicts:    conflicts,
		tx:           tx,
	}
}

// AssignProvider runs hold validation, conflict detection, reservation
// insert and the status transition against one consistent snapshot,
// serialized per provider. A serialization failure from a concurrent
// assignment is retried once.
func (s *AssignmentService) AssignProvider(ctx context.Context, orderID, providerID string, window model.TimeWindow, holdID *string) (*model.Order, error) {
	if !window.Valid() {
		return nil, domainErrors.ErrInvalidWindow
	}

	attempt := func() error {
		return s.tx.WithProviderLock(ctx, providerID, func(ctx context.Context) error {
			return s.assign(ctx, orderID, providerID, window, holdID)
		})
	}

	err := attempt()
	if errors.Is(err, domainErrors.ErrSerializationFailure) {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}

func (s *AssignmentService) assign(ctx context.Context, orderID, providerID string, window model.TimeWindow, holdID *string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status < model.OrderStatusApproved {
		return domainErrors.ErrAssignmentNotAllowed
	}
	if !order.Status.CanTransition(model.OrderStatusAssigned) {
		return &domainErrors.InvalidTransitionError{From: int(order.Status), To: int(model.OrderStatusAssigned)}
	}
	if !order.Total.IsPositive() {
		return domainErrors.ErrInvalidTotal
	}

	if holdID != nil {
		ok, err := s.holds.ValidateHold(ctx, *holdID, providerID, window)
		if err != nil {
			return err
		}
		if !ok {
			return domainErrors.ErrInvalidHold
		}
	}

	conflict, err := s.conflicts.HasConflict(ctx, providerID, window, holdID)
	if err != nil {
		return err
	}
	if conflict {
		return domainErrors.ErrProviderConflict
	}

	items, err := s.orders.ListItems(ctx, orderID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return domainErrors.ErrNoItems
	}
	first := items[0]

	res := &model.Reservation{
		ID:          uuid.NewString(),
		OrderItemID: first.ID,
		ProviderID:  providerID,
		Window:      window,
		Status:      model.ReservationStatusConfirmed,
		HoldID:      holdID,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return err
	}

	return s.orders.UpdateStatus(ctx, orderID, order.Status, model.OrderStatusAssigned)
}
