package dto

import "time"

// CreateHoldRequest claims a provider time window.
type CreateHoldRequest struct {
	ProviderID    string    `json:"provider_id" binding:"required"`
	OptionID      string    `json:"option_id" binding:"required"`
	WindowStart   time.Time `json:"window_start" binding:"required"`
	WindowEnd     time.Time `json:"window_end" binding:"required"`
	TTLMinutes    int       `json:"ttl_minutes"`
	CorrelationID *string   `json:"correlation_id"`
}

// HoldResponse represents a hold in API responses.
type HoldResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	OptionID    string    `json:"option_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Status      int       `json:"status"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}
