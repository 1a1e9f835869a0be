package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/server/http/dto"
	"github.com/dmarquina/eventbooking/internal/server/http/middleware"
)

// CurrentPrincipal extracts the authenticated caller from context.
func CurrentPrincipal(c *gin.Context) model.Principal {
	val, ok := c.Get(middleware.PrincipalContextKey)
	if !ok {
		return model.Principal{}
	}
	principal, _ := val.(model.Principal)
	return principal
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            order.ID,
		ClientID:      order.ClientID,
		EventTypeID:   order.EventTypeID,
		EventDate:     order.EventDate.Format("2006-01-02"),
		StartTime:     order.StartTime,
		EndTime:       order.EndTime,
		Location:      order.Location,
		Total:         order.Total.StringFixed(2),
		Currency:      order.Currency,
		Status:        order.Status.String(),
		CorrelationID: order.CorrelationID,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func toOrderItemResponse(item model.OrderItem) dto.OrderItemResponse {
	kind := "option"
	if item.Kind == model.ItemKindPackage {
		kind = "package"
	}
	return dto.OrderItemResponse{
		ID:         item.ID,
		Kind:       kind,
		CatalogRef: item.CatalogRef,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice.StringFixed(2),
		LineTotal:  item.LineTotal.StringFixed(2),
	}
}

func toHoldResponse(hold model.Hold) dto.HoldResponse {
	return dto.HoldResponse{
		ID:          hold.ID,
		ProviderID:  hold.ProviderID,
		OptionID:    hold.OptionID,
		WindowStart: hold.Window.Start,
		WindowEnd:   hold.Window.End,
		Status:      int(hold.Status),
		ExpiresAt:   hold.ExpiresAt,
		CreatedAt:   hold.CreatedAt,
	}
}
