package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmarquina/eventbooking/internal/clock"
	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/domain/repository"
)

const (
	minHoldTTLMinutes     = 5
	maxHoldTTLMinutes     = 1440
	defaultHoldTTLMinutes = 30
)

// CreateHoldInput carries hold creation parameters.
type CreateHoldInput struct {
	ProviderID    string
	OptionID      string
	Window        model.TimeWindow
	TTLMinutes    int
	CorrelationID *string
}

// HoldService manages temporary exclusive claims on provider time windows.
type HoldService struct {
	holds     repository.HoldRepository
	conflicts *ConflictDetector
	tx        repository.TxRunner
	clock     clock.Clock
}

// NewHoldService constructs HoldService.
func NewHoldService(
	holds repository.HoldRepository,
	conflicts *ConflictDetector,
	tx repository.TxRunner,
	clk clock.Clock,
) *HoldService {
	return &HoldService{holds: holds, conflicts: conflicts, tx: tx, clock: clk}
}

// CreateHold validates the window and TTL, then runs the conflict check
// and the insert as one serialized unit per provider. A serialization
// failure from a concurrent booking is retried once.
func (s *HoldService) CreateHold(ctx context.Context, principal model.Principal, in CreateHoldInput) (*model.Hold, error) {
	if !in.Window.Valid() {
		return nil, domainErrors.ErrInvalidWindow
	}

	ttl := in.TTLMinutes
	if ttl == 0 {
		ttl = defaultHoldTTLMinutes
	}
	if ttl < minHoldTTLMinutes || ttl > maxHoldTTLMinutes {
		return nil, domainErrors.ErrInvalidTTL
	}

	hold := &model.Hold{
		ID:            uuid.NewString(),
		ProviderID:    in.ProviderID,
		OptionID:      in.OptionID,
		Window:        in.Window,
		Status:        model.HoldStatusActive,
		ExpiresAt:     s.clock.Now().Add(time.Duration(ttl) * time.Minute),
		CorrelationID: in.CorrelationID,
		CreatedBy:     principal.ID,
	}

	attempt := func() error {
		return s.tx.WithProviderLock(ctx, in.ProviderID, func(ctx context.Context) error {
			conflict, err := s.conflicts.HasConflict(ctx, in.ProviderID, in.Window, nil)
			if err != nil {
				return err
			}
			if conflict {
				return domainErrors.ErrProviderConflict
			}
			return s.holds.Create(ctx, hold)
		})
	}

	err := attempt()
	if errors.Is(err, domainErrors.ErrSerializationFailure) {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}
	return hold, nil
}

// ReleaseHold marks an active hold released. Only the creator or an admin
// may release.
func (s *HoldService) ReleaseHold(ctx context.Context, principal model.Principal, holdID string) error {
	hold, err := s.holds.GetByID(ctx, holdID)
	if err != nil {
		return err
	}

	if hold.CreatedBy != principal.ID && !principal.IsAdmin() {
		return domainErrors.ErrForbidden
	}

	return s.holds.Release(ctx, holdID)
}

// ValidateHold reports whether the hold exists, belongs to the provider,
// is live and overlaps the proposed window.
func (s *HoldService) ValidateHold(ctx context.Context, holdID, providerID string, window model.TimeWindow) (bool, error) {
	hold, err := s.holds.GetByID(ctx, holdID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if hold.ProviderID != providerID {
		return false, nil
	}
	if !hold.Live(s.clock.Now()) {
		return false, nil
	}
	return hold.Window.Overlaps(window), nil
}
