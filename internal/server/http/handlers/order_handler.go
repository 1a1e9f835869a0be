package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/server/http/dto"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/v1/orders. The payload either names a package
// or lists options; retried submissions with the same request token
// return the stored order with 200.
func (h *OrderHandler) Create(c *gin.Context) {
	principal := CurrentPrincipal(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if (req.PackageID == "") == (len(req.Items) == 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of package_id or items is required"})
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}

	details := usecase.EventDetails{
		EventTypeID:   req.EventTypeID,
		EventDate:     eventDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		CorrelationID: req.CorrelationID,
	}

	order, created, err := h.createOrder(c, principal.ID, req, details)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoActivePrice),
			errors.Is(err, domainErrors.ErrMissingActivePrice),
			errors.Is(err, domainErrors.ErrEmptyItems),
			errors.Is(err, domainErrors.ErrInvalidQuantity),
			errors.Is(err, domainErrors.ErrPackageEmpty):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, toOrderResponse(*order))
}

func (h *OrderHandler) createOrder(c *gin.Context, clientID string, req dto.CreateOrderRequest, details usecase.EventDetails) (*model.Order, bool, error) {
	ctx := c.Request.Context()
	if req.PackageID != "" {
		return h.facade.CreateOrderFromPackage(ctx, clientID, req.PackageID, details, req.RequestToken)
	}
	items := make([]usecase.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.ItemRequest{OptionID: it.OptionID, Quantity: it.Quantity})
	}
	return h.facade.CreateOrderCustom(ctx, clientID, items, details, req.RequestToken)
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	principal := CurrentPrincipal(c)

	orders, err := h.facade.Orders(c.Request.Context(), principal)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	principal := CurrentPrincipal(c)
	orderID := c.Param("id")

	order, err := h.facade.Order(c.Request.Context(), principal, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	items, err := h.facade.OrderItems(c.Request.Context(), order.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := toOrderResponse(*order)
	response.Items = make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		response.Items = append(response.Items, toOrderItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// SendSummary handles POST /api/v1/orders/:id/summary.
func (h *OrderHandler) SendSummary(c *gin.Context) {
	principal := CurrentPrincipal(c)
	orderID := c.Param("id")

	var req dto.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.facade.SendOrderSummary(c.Request.Context(), principal, orderID, req.ToEmail)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message_id": msg.ID})
}
