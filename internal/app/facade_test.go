package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarquina/eventbooking/internal/clock"
	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	testhelpers "github.com/dmarquina/eventbooking/internal/test"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

var facadeNow = time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)

type facadeFixture struct {
	facade       *BookingFacade
	orders       *testhelpers.OrderRepositoryStub
	holds        *testhelpers.HoldRepositoryStub
	reservations *testhelpers.ReservationRepositoryStub
	outbox       *testhelpers.OutboxRepositoryStub
	sender       *testhelpers.MailSenderStub
}

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	clk := clock.Fixed{Instant: facadeNow}

	orders := &testhelpers.OrderRepositoryStub{}
	holds := &testhelpers.HoldRepositoryStub{}
	reservations := &testhelpers.ReservationRepositoryStub{}
	blackouts := &testhelpers.BlackoutRepositoryStub{}
	outbox := &testhelpers.OutboxRepositoryStub{}
	sender := &testhelpers.MailSenderStub{}
	tx := &testhelpers.TxRunnerStub{}
	catalogClient := testhelpers.CatalogClientStub{}

	pricing := usecase.NewPricingService(catalogClient)
	orderService := usecase.NewOrderService(orders, outbox, tx, pricing, catalogClient)
	conflicts := usecase.NewConflictDetector(holds, reservations, blackouts, clk, logger)
	holdService := usecase.NewHoldService(holds, conflicts, tx, clk)
	assignments := usecase.NewAssignmentService(orders, reservations, holdService, conflicts, tx)
	outboxService := usecase.NewOutboxService(outbox, sender)

	return &facadeFixture{
		facade:       NewBookingFacade(orderService, holdService, assignments, outboxService),
		orders:       orders,
		holds:        holds,
		reservations: reservations,
		outbox:       outbox,
		sender:       sender,
	}
}

func facadeWindow() model.TimeWindow {
	return model.TimeWindow{
		Start: time.Date(2026, time.October, 1, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.October, 1, 22, 0, 0, 0, time.UTC),
	}
}

func TestBookingFacadeOrders(t *testing.T) {
	f := newFacadeFixture()
	details := usecase.EventDetails{
		EventTypeID: "evt-wedding",
		EventDate:   time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		Location:    "Lima",
	}

	order, created, err := f.facade.CreateOrderFromPackage(context.Background(), "client-1", "pkg-1", details, "tok-1")
	if err != nil || !created || order == nil {
		t.Fatalf("unexpected create result: order=%v created=%v err=%v", order, created, err)
	}
	if order.Status != model.OrderStatusQuoted {
		t.Fatalf("expected QUOTED order, got %s", order.Status)
	}
	if order.Total.StringFixed(2) != "1000.00" {
		t.Fatalf("unexpected total %s", order.Total.StringFixed(2))
	}

	listed, err := f.facade.Orders(context.Background(), model.Principal{ID: "client-1", Role: model.RoleClient})
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	fetched, err := f.facade.Order(context.Background(), model.Principal{ID: "admin-1", Role: model.RoleAdmin}, order.ID)
	if err != nil {
		t.Fatalf("order returned error: %v", err)
	}
	if fetched.ID != order.ID {
		t.Fatalf("expected order %s, got %s", order.ID, fetched.ID)
	}

	items, err := f.facade.OrderItems(context.Background(), order.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one line item, got %v err=%v", items, err)
	}
	if items[0].Kind != model.ItemKindPackage {
		t.Fatalf("expected package line item, got %v", items[0].Kind)
	}
}

func TestBookingFacadeSendOrderSummary(t *testing.T) {
	f := newFacadeFixture()
	details := usecase.EventDetails{
		EventDate: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		Location:  "Lima",
	}
	order, _, err := f.facade.CreateOrderCustom(context.Background(), "client-1", []usecase.ItemRequest{{OptionID: "opt-1", Quantity: 2}}, details, "tok-2")
	if err != nil {
		t.Fatalf("create custom returned error: %v", err)
	}

	msg, err := f.facade.SendOrderSummary(context.Background(), model.Principal{ID: "client-1", Role: model.RoleClient}, order.ID, "client@example.com")
	if err != nil {
		t.Fatalf("send summary returned error: %v", err)
	}
	if msg.ToEmail != "client@example.com" || msg.Status != model.OutboxStatusPending {
		t.Fatalf("unexpected queued message: %+v", msg)
	}
	if len(f.outbox.Messages) != 1 {
		t.Fatalf("expected one queued message, got %d", len(f.outbox.Messages))
	}
}

func TestBookingFacadeHolds(t *testing.T) {
	f := newFacadeFixture()
	principal := model.Principal{ID: "client-1", Role: model.RoleClient}

	hold, err := f.facade.CreateHold(context.Background(), principal, usecase.CreateHoldInput{
		ProviderID: "prov-1",
		OptionID:   "opt-1",
		Window:     facadeWindow(),
	})
	if err != nil {
		t.Fatalf("create hold returned error: %v", err)
	}
	if hold.ExpiresAt != facadeNow.Add(30*time.Minute) {
		t.Fatalf("expected default TTL expiry, got %s", hold.ExpiresAt)
	}
	if len(f.holds.Holds) != 1 {
		t.Fatalf("expected hold to be stored, got %d", len(f.holds.Holds))
	}

	if err := f.facade.ReleaseHold(context.Background(), model.Principal{ID: "client-2", Role: model.RoleClient}, hold.ID); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign release, got %v", err)
	}
	if err := f.facade.ReleaseHold(context.Background(), principal, hold.ID); err != nil {
		t.Fatalf("release returned error: %v", err)
	}
	if f.holds.Holds[0].Status != model.HoldStatusReleased {
		t.Fatalf("expected released hold, got %d", f.holds.Holds[0].Status)
	}
}

func TestBookingFacadeAdmin(t *testing.T) {
	f := newFacadeFixture()
	f.orders.Orders = []model.Order{{
		ID:       "ord-1",
		ClientID: "client-1",
		Status:   model.OrderStatusQuoted,
		Total:    decimal.NewFromInt(500),
		Currency: "USD",
	}}
	f.orders.Items = []model.OrderItem{{
		ID:        "item-1",
		OrderID:   "ord-1",
		Kind:      model.ItemKindOption,
		Quantity:  1,
		LineTotal: decimal.NewFromInt(500),
	}}

	order, err := f.facade.SetOrderStatus(context.Background(), "ord-1", model.OrderStatusApproved)
	if err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if order.Status != model.OrderStatusApproved {
		t.Fatalf("expected APPROVED, got %s", order.Status)
	}

	order, err = f.facade.AddOrderItems(context.Background(), "ord-1", []usecase.ItemRequest{{OptionID: "opt-2", Quantity: 1}})
	if err != nil {
		t.Fatalf("add items returned error: %v", err)
	}
	if order.Total.StringFixed(2) != "600.00" {
		t.Fatalf("expected recomputed total 600.00, got %s", order.Total.StringFixed(2))
	}

	order, err = f.facade.AssignProvider(context.Background(), "ord-1", "prov-1", facadeWindow(), nil)
	if err != nil {
		t.Fatalf("assign provider returned error: %v", err)
	}
	if order.Status != model.OrderStatusAssigned {
		t.Fatalf("expected ASSIGNED, got %s", order.Status)
	}
	if len(f.reservations.Reservations) != 1 {
		t.Fatalf("expected one reservation, got %d", len(f.reservations.Reservations))
	}
}

func TestBookingFacadeOutbox(t *testing.T) {
	f := newFacadeFixture()
	f.outbox.Messages = []model.EmailMessage{
		{ID: "msg-1", ToEmail: "a@example.com", Status: model.OutboxStatusPending},
		{ID: "msg-2", ToEmail: "b@example.com", Status: model.OutboxStatusSent},
	}

	batch, err := f.facade.PickOutboxBatch(context.Background(), 10)
	if err != nil || len(batch) != 1 {
		t.Fatalf("expected one pending message, got %v err=%v", batch, err)
	}

	if err := f.facade.DispatchOutboxMessage(context.Background(), batch[0]); err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	if len(f.sender.Sent) != 1 || f.sender.Sent[0].ID != "msg-1" {
		t.Fatalf("expected msg-1 to be sent, got %+v", f.sender.Sent)
	}
	if len(f.outbox.Sent) != 1 || f.outbox.Sent[0] != "msg-1" {
		t.Fatalf("expected msg-1 marked sent, got %v", f.outbox.Sent)
	}
}
