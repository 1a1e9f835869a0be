package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/server/http/dto"
	"github.com/dmarquina/eventbooking/internal/server/http/middleware"
	testhelpers "github.com/dmarquina/eventbooking/internal/test"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func asClient(c *gin.Context) {
	c.Set(middleware.PrincipalContextKey, model.Principal{ID: "client-1", Role: model.RoleClient})
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentPrincipal(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentPrincipal(c); got.ID != "" {
		t.Fatalf("expected empty principal when not set, got %+v", got)
	}

	c.Set(middleware.PrincipalContextKey, model.Principal{ID: "client-1", Role: model.RoleClient})
	if got := CurrentPrincipal(c); got.ID != "client-1" {
		t.Fatalf("expected client-1, got %+v", got)
	}
}

func validCreateBody(t *testing.T, mutate func(*dto.CreateOrderRequest)) []byte {
	t.Helper()
	req := dto.CreateOrderRequest{
		RequestToken: "tok-1",
		PackageID:    "pkg-1",
		EventDate:    "2026-10-01",
		StartTime:    "18:00",
		Location:     "Lima",
	}
	if mutate != nil {
		mutate(&req)
	}
	body, _ := json.Marshal(req)
	return body
}

func TestOrderHandlerCreateFromPackage(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		CreateFromPackageFn: func(ctx context.Context, clientID, packageID string, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
			if clientID != "client-1" || packageID != "pkg-1" || requestToken != "tok-1" {
				t.Fatalf("unexpected arguments: %q %q %q", clientID, packageID, requestToken)
			}
			if details.EventDate.Format("2006-01-02") != "2026-10-01" {
				t.Fatalf("unexpected event date %v", details.EventDate)
			}
			return &model.Order{ID: "ord-1", ClientID: clientID, Status: model.OrderStatusQuoted, Total: decimal.NewFromInt(2500), Currency: "USD"}, true, nil
		},
	}}

	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asClient, validCreateBody(t, nil), jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Total != "2500.00" || decoded.Status != "QUOTED" {
		t.Fatalf("unexpected response: %+v", decoded)
	}
}

func TestOrderHandlerCreateReplayReturns200(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		CreateFromPackageFn: func(ctx context.Context, clientID, packageID string, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
			return &model.Order{ID: "ord-existing", Status: model.OrderStatusQuoted}, false, nil
		},
	}}

	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asClient, validCreateBody(t, nil), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for replay, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateCustom(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		CreateCustomFn: func(ctx context.Context, clientID string, items []usecase.ItemRequest, details usecase.EventDetails, requestToken string) (*model.Order, bool, error) {
			if len(items) != 2 || items[0].OptionID != "opt-1" || items[0].Quantity != 2 {
				t.Fatalf("unexpected items: %+v", items)
			}
			return &model.Order{ID: "ord-1", Status: model.OrderStatusQuoted}, true, nil
		},
	}}

	body := validCreateBody(t, func(req *dto.CreateOrderRequest) {
		req.PackageID = ""
		req.Items = []dto.ItemRequest{{OptionID: "opt-1", Quantity: 2}, {OptionID: "opt-2"}}
	})
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asClient, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "missing token", body: validCreateBody(t, func(r *dto.CreateOrderRequest) { r.RequestToken = "" }), status: http.StatusBadRequest},
		{name: "both package and items", body: validCreateBody(t, func(r *dto.CreateOrderRequest) {
			r.Items = []dto.ItemRequest{{OptionID: "opt-1"}}
		}), status: http.StatusBadRequest},
		{name: "neither package nor items", body: validCreateBody(t, func(r *dto.CreateOrderRequest) { r.PackageID = "" }), status: http.StatusBadRequest},
		{name: "bad event date", body: validCreateBody(t, func(r *dto.CreateOrderRequest) { r.EventDate = "01-10-2026" }), status: http.StatusBadRequest},
		{name: "no active price", body: validCreateBody(t, nil), facade: testhelpers.OrderFacadeStub{CreateFromPackageFn: func(context.Context, string, string, usecase.EventDetails, string) (*model.Order, bool, error) {
			return nil, false, domainErrors.ErrNoActivePrice
		}}, status: http.StatusUnprocessableEntity},
		{name: "empty package", body: validCreateBody(t, nil), facade: testhelpers.OrderFacadeStub{CreateFromPackageFn: func(context.Context, string, string, usecase.EventDetails, string) (*model.Order, bool, error) {
			return nil, false, domainErrors.ErrPackageEmpty
		}}, status: http.StatusUnprocessableEntity},
		{name: "internal", body: validCreateBody(t, nil), facade: testhelpers.OrderFacadeStub{CreateFromPackageFn: func(context.Context, string, string, usecase.EventDetails, string) (*model.Order, bool, error) {
			return nil, false, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{OrderFacadeStub: tt.facade}
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asClient, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	orders := []model.Order{{ID: "ord-1"}, {ID: "ord-2"}}
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		OrdersFn: func(context.Context, model.Principal) ([]model.Order, error) {
			return orders, nil
		},
	}}

	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asClient, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(decoded))
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		OrdersFn: func(context.Context, model.Principal) ([]model.Order, error) {
			return nil, nil
		},
	}}

	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asClient, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		OrderFn: func(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
			return &model.Order{ID: orderID, Status: model.OrderStatusQuoted, Total: decimal.NewFromInt(150)}, nil
		},
		OrderItemsFn: func(ctx context.Context, orderID string) ([]model.OrderItem, error) {
			return []model.OrderItem{{ID: "item-1", Kind: model.ItemKindPackage, Quantity: 1, UnitPrice: decimal.NewFromInt(150), LineTotal: decimal.NewFromInt(150)}}, nil
		},
	}}

	resp := performRequest(t, http.MethodGet, "/orders/ord-1", NewOrderHandler(facade).Get, asClient, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Items) != 1 || decoded.Items[0].Kind != "package" {
		t.Fatalf("unexpected items: %+v", decoded.Items)
	}
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		OrderFn: func(context.Context, model.Principal, string) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		},
	}}

	resp := performRequest(t, http.MethodGet, "/orders/missing", NewOrderHandler(facade).Get, asClient, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerSendSummary(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{
		SendSummaryFn: func(ctx context.Context, principal model.Principal, orderID, toEmail string) (*model.EmailMessage, error) {
			if toEmail != "client@example.com" {
				t.Fatalf("unexpected recipient %q", toEmail)
			}
			return &model.EmailMessage{ID: "msg-1"}, nil
		},
	}}

	body, _ := json.Marshal(dto.SummaryRequest{ToEmail: "client@example.com"})
	resp := performRequest(t, http.MethodPost, "/orders/ord-1/summary", NewOrderHandler(facade).SendSummary, asClient, body, jsonHeaders)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("msg-1")) {
		t.Fatalf("expected message id in response, got %s", resp.Body.String())
	}
}

func TestOrderHandlerSendSummaryFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "bad email", body: []byte(`{"to_email":"not-an-email"}`), status: http.StatusBadRequest},
		{name: "not found", body: []byte(`{"to_email":"a@example.com"}`), facade: testhelpers.OrderFacadeStub{SendSummaryFn: func(context.Context, model.Principal, string, string) (*model.EmailMessage, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{OrderFacadeStub: tt.facade}
			resp := performRequest(t, http.MethodPost, "/orders/ord-1/summary", NewOrderHandler(facade).SendSummary, asClient, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func validHoldBody(t *testing.T) []byte {
	t.Helper()
	body, _ := json.Marshal(dto.CreateHoldRequest{
		ProviderID:  "prov-1",
		OptionID:    "opt-1",
		WindowStart: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2026, 10, 1, 22, 0, 0, 0, time.UTC),
		TTLMinutes:  30,
	})
	return body
}

func TestHoldHandlerCreate(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{HoldFacadeStub: testhelpers.HoldFacadeStub{
		CreateHoldFn: func(ctx context.Context, principal model.Principal, in usecase.CreateHoldInput) (*model.Hold, error) {
			if principal.ID != "client-1" || in.ProviderID != "prov-1" || in.TTLMinutes != 30 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &model.Hold{ID: "hold-1", ProviderID: in.ProviderID, Window: in.Window, Status: model.HoldStatusActive}, nil
		},
	}}

	resp := performRequest(t, http.MethodPost, "/holds", NewHoldHandler(facade).Create, asClient, validHoldBody(t), jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.HoldResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != "hold-1" {
		t.Fatalf("unexpected hold: %+v", decoded)
	}
}

func TestHoldHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.HoldFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "invalid window", body: validHoldBody(t), facade: testhelpers.HoldFacadeStub{CreateHoldFn: func(context.Context, model.Principal, usecase.CreateHoldInput) (*model.Hold, error) {
			return nil, domainErrors.ErrInvalidWindow
		}}, status: http.StatusUnprocessableEntity},
		{name: "invalid ttl", body: validHoldBody(t), facade: testhelpers.HoldFacadeStub{CreateHoldFn: func(context.Context, model.Principal, usecase.CreateHoldInput) (*model.Hold, error) {
			return nil, domainErrors.ErrInvalidTTL
		}}, status: http.StatusUnprocessableEntity},
		{name: "conflict", body: validHoldBody(t), facade: testhelpers.HoldFacadeStub{CreateHoldFn: func(context.Context, model.Principal, usecase.CreateHoldInput) (*model.Hold, error) {
			return nil, domainErrors.ErrProviderConflict
		}}, status: http.StatusConflict},
		{name: "internal", body: validHoldBody(t), facade: testhelpers.HoldFacadeStub{CreateHoldFn: func(context.Context, model.Principal, usecase.CreateHoldInput) (*model.Hold, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{HoldFacadeStub: tt.facade}
			resp := performRequest(t, http.MethodPost, "/holds", NewHoldHandler(facade).Create, asClient, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestHoldHandlerRelease(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "released", err: nil, status: http.StatusNoContent},
		{name: "not found", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "forbidden", err: domainErrors.ErrForbidden, status: http.StatusForbidden},
		{name: "not active", err: domainErrors.ErrHoldNotActive, status: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{HoldFacadeStub: testhelpers.HoldFacadeStub{
				ReleaseHoldFn: func(context.Context, model.Principal, string) error {
					return tt.err
				},
			}}
			resp := performRequest(t, http.MethodDelete, "/holds/hold-1", NewHoldHandler(facade).Release, asClient, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdminHandlerSetStatus(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{AdminFacadeStub: testhelpers.AdminFacadeStub{
		SetStatusFn: func(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
			if to != model.OrderStatusApproved {
				t.Fatalf("unexpected target status %s", to)
			}
			return &model.Order{ID: orderID, Status: to, Total: decimal.NewFromInt(150)}, nil
		},
	}}

	body := []byte(`{"status":"APPROVED"}`)
	resp := performRequest(t, http.MethodPatch, "/orders/ord-1/status", NewAdminHandler(facade).SetStatus, asClient, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerSetStatusFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AdminFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "unknown status", body: []byte(`{"status":"NOPE"}`), status: http.StatusBadRequest},
		{name: "not found", body: []byte(`{"status":"APPROVED"}`), facade: testhelpers.AdminFacadeStub{SetStatusFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "invalid transition", body: []byte(`{"status":"APPROVED"}`), facade: testhelpers.AdminFacadeStub{SetStatusFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
			return nil, &domainErrors.InvalidTransitionError{From: int(model.OrderStatusClosed), To: int(model.OrderStatusApproved)}
		}}, status: http.StatusConflict},
		{name: "invalid total", body: []byte(`{"status":"APPROVED"}`), facade: testhelpers.AdminFacadeStub{SetStatusFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidTotal
		}}, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{AdminFacadeStub: tt.facade}
			resp := performRequest(t, http.MethodPatch, "/orders/ord-1/status", NewAdminHandler(facade).SetStatus, asClient, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdminHandlerItemMutations(t *testing.T) {
	facade := testhelpers.BookingFacadeStub{AdminFacadeStub: testhelpers.AdminFacadeStub{
		AddItemsFn: func(ctx context.Context, orderID string, items []usecase.ItemRequest) (*model.Order, error) {
			if len(items) != 1 || items[0].OptionID != "opt-3" {
				t.Fatalf("unexpected items: %+v", items)
			}
			return &model.Order{ID: orderID, Status: model.OrderStatusQuoted, Total: decimal.NewFromInt(170)}, nil
		},
		RemoveItemsFn: func(ctx context.Context, orderID string, itemIDs []string) (*model.Order, error) {
			if len(itemIDs) != 1 || itemIDs[0] != "item-1" {
				t.Fatalf("unexpected item ids: %v", itemIDs)
			}
			return &model.Order{ID: orderID, Status: model.OrderStatusQuoted, Total: decimal.NewFromInt(80)}, nil
		},
	}}
	handler := NewAdminHandler(facade)

	body := []byte(`{"items":[{"option_id":"opt-3","quantity":1}]}`)
	resp := performRequest(t, http.MethodPost, "/orders/ord-1/items", handler.AddItems, asClient, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("add: expected status 200, got %d", resp.Code)
	}

	body = []byte(`{"item_ids":["item-1"]}`)
	resp = performRequest(t, http.MethodDelete, "/orders/ord-1/items", handler.RemoveItems, asClient, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("remove: expected status 200, got %d", resp.Code)
	}
}

func TestAdminHandlerItemMutationFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "missing price", err: domainErrors.ErrMissingActivePrice, status: http.StatusUnprocessableEntity},
		{name: "invalid quantity", err: domainErrors.ErrInvalidQuantity, status: http.StatusUnprocessableEntity},
		{name: "empty item ids", err: domainErrors.ErrEmptyItemIDs, status: http.StatusUnprocessableEntity},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{AdminFacadeStub: testhelpers.AdminFacadeStub{
				AddItemsFn: func(context.Context, string, []usecase.ItemRequest) (*model.Order, error) {
					return nil, tt.err
				},
			}}
			body := []byte(`{"items":[{"option_id":"opt-3"}]}`)
			resp := performRequest(t, http.MethodPost, "/orders/ord-1/items", NewAdminHandler(facade).AddItems, asClient, body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func validAssignBody(t *testing.T, holdID *string) []byte {
	t.Helper()
	body, _ := json.Marshal(dto.AssignProviderRequest{
		ProviderID:  "prov-1",
		WindowStart: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2026, 10, 1, 22, 0, 0, 0, time.UTC),
		HoldID:      holdID,
	})
	return body
}

func TestAdminHandlerAssignProvider(t *testing.T) {
	holdID := "hold-1"
	facade := testhelpers.BookingFacadeStub{AdminFacadeStub: testhelpers.AdminFacadeStub{
		AssignProviderFn: func(ctx context.Context, orderID, providerID string, window model.TimeWindow, gotHoldID *string) (*model.Order, error) {
			if providerID != "prov-1" || gotHoldID == nil || *gotHoldID != holdID {
				t.Fatalf("unexpected arguments: %q %v", providerID, gotHoldID)
			}
			return &model.Order{ID: orderID, Status: model.OrderStatusAssigned, Total: decimal.NewFromInt(150)}, nil
		},
	}}

	resp := performRequest(t, http.MethodPost, "/orders/ord-1/assign-provider", NewAdminHandler(facade).AssignProvider, asClient, validAssignBody(t, &holdID), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Status != "ASSIGNED" {
		t.Fatalf("unexpected status %q", decoded.Status)
	}
}

func TestAdminHandlerAssignProviderFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "invalid window", err: domainErrors.ErrInvalidWindow, status: http.StatusUnprocessableEntity},
		{name: "no items", err: domainErrors.ErrNoItems, status: http.StatusUnprocessableEntity},
		{name: "invalid total", err: domainErrors.ErrInvalidTotal, status: http.StatusUnprocessableEntity},
		{name: "not allowed", err: domainErrors.ErrAssignmentNotAllowed, status: http.StatusConflict},
		{name: "invalid hold", err: domainErrors.ErrInvalidHold, status: http.StatusConflict},
		{name: "provider conflict", err: domainErrors.ErrProviderConflict, status: http.StatusConflict},
		{name: "race lost", err: &domainErrors.InvalidTransitionError{From: int(model.OrderStatusCancelled), To: int(model.OrderStatusAssigned)}, status: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.BookingFacadeStub{AdminFacadeStub: testhelpers.AdminFacadeStub{
				AssignProviderFn: func(context.Context, string, string, model.TimeWindow, *string) (*model.Order, error) {
					return nil, tt.err
				},
			}}
			resp := performRequest(t, http.MethodPost, "/orders/ord-1/assign-provider", NewAdminHandler(facade).AssignProvider, asClient, validAssignBody(t, nil), jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}
