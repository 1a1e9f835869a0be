package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/dmarquina/eventbooking/internal/domain/errors"
	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// --- HoldRepository implementation ---

const holdColumns = `id, provider_id, option_id, window_start, window_end, status, expires_at,
                     correlation_id, created_by, created_at`

func scanHold(row pgx.Row) (*model.Hold, error) {
	var h model.Hold
	err := row.Scan(&h.ID, &h.ProviderID, &h.OptionID, &h.Window.Start, &h.Window.End,
		&h.Status, &h.ExpiresAt, &h.CorrelationID, &h.CreatedBy, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holdRepository) Create(ctx context.Context, hold *model.Hold) error {
	const query = `INSERT INTO holds
            (id, provider_id, option_id, window_start, window_end, status, expires_at, correlation_id, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at`
	err := r.storage.q(ctx).QueryRow(ctx, query,
		hold.ID, hold.ProviderID, hold.OptionID, hold.Window.Start, hold.Window.End,
		hold.Status, hold.ExpiresAt, hold.CorrelationID, hold.CreatedBy,
	).Scan(&hold.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return fmt.Errorf("insert hold: %w", err)
	}
	return nil
}

func (r *holdRepository) GetByID(ctx context.Context, holdID string) (*model.Hold, error) {
	query := `SELECT ` + holdColumns + ` FROM holds WHERE id=$1`
	hold, err := scanHold(r.storage.q(ctx).QueryRow(ctx, query, holdID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return hold, nil
}

func (r *holdRepository) FindLiveOverlapping(ctx context.Context, providerID string, window model.TimeWindow, now time.Time, excludeID *string) (*model.Hold, error) {
	query := `SELECT ` + holdColumns + ` FROM holds
              WHERE provider_id=$1
                AND status IN ($2, $3)
                AND expires_at > $4
                AND window_start < $5 AND window_end > $6
                AND ($7::text IS NULL OR id <> $7)
              LIMIT 1`
	hold, err := scanHold(r.storage.q(ctx).QueryRow(ctx, query,
		providerID, model.HoldStatusActive, model.HoldStatusConfirmed, now, window.End, window.Start, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return hold, nil
}

func (r *holdRepository) Release(ctx context.Context, holdID string) error {
	const query = `UPDATE holds SET status=$1 WHERE id=$2 AND status=$3`
	tag, err := r.storage.q(ctx).Exec(ctx, query, model.HoldStatusReleased, holdID, model.HoldStatusActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status model.HoldStatus
	err = r.storage.q(ctx).QueryRow(ctx, `SELECT status FROM holds WHERE id=$1`, holdID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrHoldNotActive
}

// --- ReservationRepository implementation ---

func (r *reservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	const query = `INSERT INTO reservations
            (id, order_item_id, provider_id, window_start, window_end, status, hold_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`
	err := r.storage.q(ctx).QueryRow(ctx, query,
		res.ID, res.OrderItemID, res.ProviderID, res.Window.Start, res.Window.End,
		res.Status, res.HoldID,
	).Scan(&res.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// FindConfirmedOverlapping reads a table owned by another domain; a
// missing grant is reported as a typed error so callers can degrade
// instead of failing the booking attempt.
func (r *reservationRepository) FindConfirmedOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Reservation, error) {
	const query = `SELECT id, order_item_id, provider_id, window_start, window_end, status, hold_id, created_at
                   FROM reservations
                   WHERE provider_id=$1
                     AND status=$2
                     AND window_start < $3 AND window_end > $4
                   LIMIT 1`
	var res model.Reservation
	err := r.storage.q(ctx).QueryRow(ctx, query,
		providerID, model.ReservationStatusConfirmed, window.End, window.Start,
	).Scan(&res.ID, &res.OrderItemID, &res.ProviderID, &res.Window.Start, &res.Window.End,
		&res.Status, &res.HoldID, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInsufficientPrivilege(err) {
			return nil, domainErrors.ErrReservationSourceUnavailable
		}
		return nil, err
	}
	return &res, nil
}

// --- BlackoutRepository implementation ---

func (r *blackoutRepository) FindBreakOverlapping(ctx context.Context, providerID string, window model.TimeWindow) (*model.Blackout, error) {
	const query = `SELECT id, provider_id, window_start, window_end, kind
                   FROM blackout_periods
                   WHERE provider_id=$1
                     AND kind=$2
                     AND window_start < $3 AND window_end > $4
                   LIMIT 1`
	var b model.Blackout
	err := r.storage.q(ctx).QueryRow(ctx, query,
		providerID, model.BlackoutKindBreak, window.End, window.Start,
	).Scan(&b.ID, &b.ProviderID, &b.Window.Start, &b.Window.End, &b.Kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
