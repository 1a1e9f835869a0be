package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/server/http/dto"
	"github.com/dmarquina/eventbooking/internal/usecase"
)

// AdminHandler manages privileged order mutations.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// SetStatus handles PATCH /api/v1/admin/orders/:id/status.
func (h *AdminHandler) SetStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	to, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + req.Status})
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), orderID, to)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case domainErrors.IsInvalidTransition(err) != nil:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidTotal):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// AddItems handles POST /api/v1/admin/orders/:id/items.
func (h *AdminHandler) AddItems(c *gin.Context) {
	orderID := c.Param("id")

	var req dto.AddItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]usecase.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.ItemRequest{OptionID: it.OptionID, Quantity: it.Quantity})
	}

	order, err := h.facade.AddOrderItems(c.Request.Context(), orderID, items)
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// RemoveItems handles DELETE /api/v1/admin/orders/:id/items.
func (h *AdminHandler) RemoveItems(c *gin.Context) {
	orderID := c.Param("id")

	var req dto.RemoveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.RemoveOrderItems(c.Request.Context(), orderID, req.ItemIDs)
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func (h *AdminHandler) writeItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrEmptyItems),
		errors.Is(err, domainErrors.ErrEmptyItemIDs),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrMissingActivePrice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

// AssignProvider handles POST /api/v1/admin/orders/:id/assign-provider.
func (h *AdminHandler) AssignProvider(c *gin.Context) {
	orderID := c.Param("id")

	var req dto.AssignProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	window := model.TimeWindow{Start: req.WindowStart, End: req.WindowEnd}
	order, err := h.facade.AssignProvider(c.Request.Context(), orderID, req.ProviderID, window, req.HoldID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNoItems),
			errors.Is(err, domainErrors.ErrInvalidTotal):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrAssignmentNotAllowed),
			errors.Is(err, domainErrors.ErrInvalidHold),
			errors.Is(err, domainErrors.ErrProviderConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case domainErrors.IsInvalidTransition(err) != nil:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
