package repository

import (
	"context"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// OutboxRepository describes the email outbox queue.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg *model.EmailMessage) (*model.EmailMessage, error)
	// PickPending claims up to limit pending/retry messages for dispatch.
	PickPending(ctx context.Context, limit int) ([]model.EmailMessage, error)
	MarkSent(ctx context.Context, id string) error
	MarkError(ctx context.Context, id, errMsg string) error
}
