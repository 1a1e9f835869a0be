package repository

import (
	"context"
	"time"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// HoldRepository describes persistence operations with provider holds.
type HoldRepository interface {
	Create(ctx context.Context, hold *model.Hold) error
	GetByID(ctx context.Context, holdID string) (*model.Hold, error)
	// FindLiveOverlapping returns any hold of the provider that is live
	// at now and overlaps the window, or nil. A non-nil excludeID skips
	// that hold, used when it is the one being consumed.
	FindLiveOverlapping(ctx context.Context, providerID string, window model.TimeWindow, now time.Time, excludeID *string) (*model.Hold, error)
	// Release marks an active hold as released. ErrHoldNotActive when
	// the hold exists but is not active.
	Release(ctx context.Context, holdID string) error
}
