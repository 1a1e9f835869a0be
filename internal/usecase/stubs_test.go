package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarquina/eventbooking/internal/adapter/catalog"
	"github.com/dmarquina/eventbooking/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubCatalogClient struct {
	currentPriceFn        func(ctx context.Context, optionID string) (*catalog.Price, error)
	currentPackagePriceFn func(ctx context.Context, packageID string) (*catalog.Price, error)
	packageItemsFn        func(ctx context.Context, packageID string) (*catalog.PackageContents, error)
}

func (s *stubCatalogClient) CurrentPrice(ctx context.Context, optionID string) (*catalog.Price, error) {
	if s.currentPriceFn == nil {
		panic("not implemented")
	}
	return s.currentPriceFn(ctx, optionID)
}

func (s *stubCatalogClient) CurrentPackagePrice(ctx context.Context, packageID string) (*catalog.Price, error) {
	if s.currentPackagePriceFn == nil {
		panic("not implemented")
	}
	return s.currentPackagePriceFn(ctx, packageID)
}

func (s *stubCatalogClient) PackageItems(ctx context.Context, packageID string) (*catalog.PackageContents, error) {
	if s.packageItemsFn == nil {
		panic("not implemented")
	}
	return s.packageItemsFn(ctx, packageID)
}

type stubOrderRepository struct {
	createFn         func(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, bool, error)
	getByIDFn        func(ctx context.Context, orderID string) (*model.Order, error)
	getForClientFn   func(ctx context.Context, clientID, orderID string) (*model.Order, error)
	listByClientFn   func(ctx context.Context, clientID string) ([]model.Order, error)
	listItemsFn      func(ctx context.Context, orderID string) ([]model.OrderItem, error)
	addItemsFn       func(ctx context.Context, orderID string, items []model.OrderItem) error
	removeItemsFn    func(ctx context.Context, orderID string, itemIDs []string) error
	recomputeTotalFn func(ctx context.Context, orderID string) (decimal.Decimal, error)
	updateStatusFn   func(ctx context.Context, orderID string, from, to model.OrderStatus) error
}

func (s *stubOrderRepository) Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, bool, error) {
	if s.createFn == nil {
		panic("not implemented")
	}
	return s.createFn(ctx, order, items)
}

func (s *stubOrderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.getByIDFn == nil {
		panic("not implemented")
	}
	return s.getByIDFn(ctx, orderID)
}

func (s *stubOrderRepository) GetForClient(ctx context.Context, clientID, orderID string) (*model.Order, error) {
	if s.getForClientFn == nil {
		panic("not implemented")
	}
	return s.getForClientFn(ctx, clientID, orderID)
}

func (s *stubOrderRepository) ListByClient(ctx context.Context, clientID string) ([]model.Order, error) {
	if s.listByClientFn == nil {
		panic("not implemented")
	}
	return s.listByClientFn(ctx, clientID)
}

func (s *stubOrderRepository) ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	if s.listItemsFn == nil {
		panic("not implemented")
	}
	return s.listItemsFn(ctx, orderID)
}

func (s *stubOrderRepository) AddItems(ctx context.Context, orderID string, items []model.OrderItem) error {
	if s.addItemsFn == nil {
		panic("not implemented")
	}
	return s.addItemsFn(ctx, orderID, items)
}

func (s *stubOrderRepository) RemoveItems(ctx context.Context, orderID string, itemIDs []string) error {
	if s.removeItemsFn == nil {
		panic("not implemented")
	}
	return s.removeItemsFn(ctx, orderID, itemIDs)
}

func (s *stubOrderRepository) RecomputeTotal(ctx context.Context, orderID string) (decimal.Decimal, error) {
	if s.recomputeTotalFn == nil {
		panic("not implemented")
	}
	return s.recomputeTotalFn(ctx, orderID)
}

func (s *stubOrderRepository) UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	if s.updateStatusFn == nil {
		panic("not implemented")
	}
	return s.updateStatusFn(ctx, orderID, from, to)
}

type stubHoldRepository struct {
	createFn              func(ctx context.Context, hold *model.Hold) error
	getByIDFn             func(ctx context.Context, holdID string) (*model.Hold, error)
	findLiveOverlappingFn func(ctx context.Context, providerID string, window model.TimeWindow, now time.Time, excludeID *string) (*model.Hold, error)
	releaseFn             func(ctx context.Context, holdID string) error
}

func (s *stubHoldRepository) Create(ctx context.Context, hold *model.Hold) error {
	if s.createFn == nil {
		panic("not implemented")
	}
	return s.createFn(ctx, hold)
}

func (s *stubHoldRepository) GetByID(ctx context.Context, holdID string) (*model.Hold, error) {
	if s.getByIDFn == nil {
		panic("not implemented")
	}
	return s.getByIDFn(ctx, holdID)
}

func (s *stubHoldRepository) FindLiveOverlapping(ctx context.Context, providerID string, window model.TimeWindow, now time.Time, excludeID *string) (*model.Hold, error) {
	if s.findLiveOverlappingFn == nil {
		panic("not implemented")
	}
	return s.findLiveOverlappingFn(ctx, providerID, window, now, excludeID)
}

func (s *stubHoldRepository) Release(ctx context.Context, holdID string) error {
	if s.releaseFn == nil {
		panic("not implemented")
	}
	return s.releaseFn(ctx, holdID)
}

type stubReservationRepository struct {
	createFn                   func(ctx context.Context, res *model.Reservation) error
	findConfirmedOverlappingFn func(ctx context.Context, providerID string, window model.TimeWindow) (*model.Reservation, error)
}

func (s *stubReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	if s.createFn == nil {
		panic("not implemented")
	}
	return s.createFn(ctx, res)
}

func (s *stubReservationRepository) FindConfirmedOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Reservation, error) {
	if s.findConfirmedOverlappingFn == nil {
		panic("not implemented")
	}
	return s.findConfirmedOverlappingFn(ctx, providerID, window)
}

type stubBlackoutRepository struct {
	findBreakOverlappingFn func(ctx context.Context, providerID string, window model.TimeWindow) (*model.Blackout, error)
}

func (s *stubBlackoutRepository) FindBreakOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Blackout, error) {
	if s.findBreakOverlappingFn == nil {
		panic("not implemented")
	}
	return s.findBreakOverlappingFn(ctx, providerID, window)
}

type stubOutboxRepository struct {
	enqueueFn     func(ctx context.Context, msg *model.EmailMessage) (*model.EmailMessage, error)
	pickPendingFn func(ctx context.Context, limit int) ([]model.EmailMessage, error)
	markSentFn    func(ctx context.Context, id string) error
	markErrorFn   func(ctx context.Context, id, errMsg string) error
}

func (s *stubOutboxRepository) Enqueue(ctx context.Context, msg *model.EmailMessage) (*model.EmailMessage, error) {
	if s.enqueueFn == nil {
		panic("not implemented")
	}
	return s.enqueueFn(ctx, msg)
}

func (s *stubOutboxRepository) PickPending(ctx context.Context, limit int) ([]model.EmailMessage, error) {
	if s.pickPendingFn == nil {
		panic("not implemented")
	}
	return s.pickPendingFn(ctx, limit)
}

func (s *stubOutboxRepository) MarkSent(ctx context.Context, id string) error {
	if s.markSentFn == nil {
		panic("not implemented")
	}
	return s.markSentFn(ctx, id)
}

func (s *stubOutboxRepository) MarkError(ctx context.Context, id, errMsg string) error {
	if s.markErrorFn == nil {
		panic("not implemented")
	}
	return s.markErrorFn(ctx, id, errMsg)
}

// stubTxRunner runs fn inline and counts lock acquisitions.
type stubTxRunner struct {
	txCalls     int
	lockCalls   int
	lockedID    string
	withinTxErr error
}

func (s *stubTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txCalls++
	if s.withinTxErr != nil {
		return s.withinTxErr
	}
	return fn(ctx)
}

func (s *stubTxRunner) WithProviderLock(ctx context.Context, providerID string, fn func(ctx context.Context) error) error {
	s.lockCalls++
	s.lockedID = providerID
	return fn(ctx)
}

type stubMailSender struct {
	sendFn func(msg model.EmailMessage) error
}

func (s *stubMailSender) Send(msg model.EmailMessage) error {
	if s.sendFn == nil {
		panic("not implemented")
	}
	return s.sendFn(msg)
}
