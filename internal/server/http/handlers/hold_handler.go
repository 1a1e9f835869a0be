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

// HoldHandler manages provider hold endpoints.
type HoldHandler struct {
	facade HoldFacade
}

// NewHoldHandler constructs HoldHandler.
func NewHoldHandler(facade HoldFacade) *HoldHandler {
	return &HoldHandler{facade: facade}
}

// Create handles POST /api/v1/holds.
func (h *HoldHandler) Create(c *gin.Context) {
	principal := CurrentPrincipal(c)

	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	hold, err := h.facade.CreateHold(c.Request.Context(), principal, usecase.CreateHoldInput{
		ProviderID:    req.ProviderID,
		OptionID:      req.OptionID,
		Window:        model.TimeWindow{Start: req.WindowStart, End: req.WindowEnd},
		TTLMinutes:    req.TTLMinutes,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidWindow), errors.Is(err, domainErrors.ErrInvalidTTL):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrProviderConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toHoldResponse(*hold))
}

// Release handles DELETE /api/v1/holds/:id.
func (h *HoldHandler) Release(c *gin.Context) {
	principal := CurrentPrincipal(c)
	holdID := c.Param("id")

	err := h.facade.ReleaseHold(c.Request.Context(), principal, holdID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrHoldNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
