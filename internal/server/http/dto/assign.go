package dto

import "time"

// AssignProviderRequest binds a provider to an order's first line item.
type AssignProviderRequest struct {
	ProviderID  string    `json:"provider_id" binding:"required"`
	WindowStart time.Time `json:"window_start" binding:"required"`
	WindowEnd   time.Time `json:"window_end" binding:"required"`
	HoldID      *string   `json:"hold_id"`
}
