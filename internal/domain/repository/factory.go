package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Holds() HoldRepository
	Reservations() ReservationRepository
	Blackouts() BlackoutRepository
	Outbox() OutboxRepository
}

// TxRunner runs multi-step sequences atomically. Repositories called with
// the context passed to fn join the same transaction.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// WithProviderLock additionally serializes fn against all other
	// check-and-insert sequences for the same provider.
	WithProviderLock(ctx context.Context, providerID string, fn func(ctx context.Context) error) error
}
