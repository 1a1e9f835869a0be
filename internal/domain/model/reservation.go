package model

import "time"

// ReservationStatus mirrors the persisted integer values.
type ReservationStatus int16

const ReservationStatusConfirmed ReservationStatus = 1

// Reservation is a confirmed allocation of a provider to an order line
// item and time window. Immutable once created.
type Reservation struct {
	ID          string
	OrderItemID string
	ProviderID  string
	Window      TimeWindow
	Status      ReservationStatus
	HoldID      *string
	CreatedAt   time.Time
}
