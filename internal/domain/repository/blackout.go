package repository

import (
	"context"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// BlackoutRepository reads provider break periods. The table is owned by
// the provider domain; this service never writes it.
type BlackoutRepository interface {
	FindBreakOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Blackout, error)
}
