package model

import "time"

// HoldStatus values are fixed for compatibility with the provider calendar
// tables; 2 is unused on purpose.
type HoldStatus int16

const (
	HoldStatusActive    HoldStatus = 0
	HoldStatusConfirmed HoldStatus = 1
	HoldStatusReleased  HoldStatus = 3
)

// Hold is a short-lived exclusive claim on a provider's time window.
type Hold struct {
	ID            string
	ProviderID    string
	OptionID      string
	Window        TimeWindow
	Status        HoldStatus
	ExpiresAt     time.Time
	CorrelationID *string
	CreatedBy     string
	CreatedAt     time.Time
}

// Live reports whether the hold still participates in conflict checks:
// active or confirmed, and not yet expired.
func (h Hold) Live(now time.Time) bool {
	return (h.Status == HoldStatusActive || h.Status == HoldStatusConfirmed) && h.ExpiresAt.After(now)
}
