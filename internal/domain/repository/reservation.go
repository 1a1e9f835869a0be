package repository

import (
	"context"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// ReservationRepository describes persistence operations with confirmed
// reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) error
	// FindConfirmedOverlapping returns any confirmed reservation of the
	// provider overlapping the window, or nil. Returns
	// ErrReservationSourceUnavailable when the deployment lacks access
	// to the reservation table.
	FindConfirmedOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Reservation, error)
}
