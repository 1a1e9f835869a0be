package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmarquina/eventbooking/internal/clock"
	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/domain/repository"
)

// ConflictDetector answers whether a provider is free for a time window.
// Sources: live holds, confirmed reservations, break blackout periods.
type ConflictDetector struct {
	holds        repository.HoldRepository
	reservations repository.ReservationRepository
	blackouts    repository.BlackoutRepository
	clock        clock.Clock
	logger       *slog.Logger
}

// NewConflictDetector constructs ConflictDetector.
func NewConflictDetector(
	holds repository.HoldRepository,
	reservations repository.ReservationRepository,
	blackouts repository.BlackoutRepository,
	clk clock.Clock,
	logger *slog.Logger,
) *ConflictDetector {
	return &ConflictDetector{
		holds:        holds,
		reservations: reservations,
		blackouts:    blackouts,
		clock:        clk,
		logger:       logger,
	}
}

// HasConflict reports whether any conflict source overlaps the window.
// ignoreHoldID excludes a hold already validated for this booking. When
// the reservation table is unreachable the check degrades to the
// remaining sources with a warning instead of failing the attempt.
func (d *ConflictDetector) HasConflict(ctx context.Context, providerID string, window model.TimeWindow, ignoreHoldID *string) (bool, error) {
	now := d.clock.Now()

	hold, err := d.holds.FindLiveOverlapping(ctx, providerID, window, now, ignoreHoldID)
	if err != nil {
		return false, err
	}
	if hold != nil {
		return true, nil
	}

	res, err := d.reservations.FindConfirmedOverlapping(ctx, providerID, window)
	switch {
	case errors.Is(err, domainErrors.ErrReservationSourceUnavailable):
		d.logger.Warn("reservation conflict source unavailable, checking holds and blackouts only",
			slog.String("provider_id", providerID))
	case err != nil:
		return false, err
	case res != nil:
		return true, nil
	}

	blackout, err := d.blackouts.FindBreakOverlapping(ctx, providerID, window)
	if err != nil {
		return false, err
	}
	return blackout != nil, nil
}
