package usecase

import (
	"context"

	"github.com/dmarquina/eventbooking/internal/adapter/mailer"
	"github.com/dmarquina/eventbooking/internal/domain/model"
	"github.com/dmarquina/eventbooking/internal/domain/repository"
)

// OutboxService drains the email outbox. Called by the background
// dispatcher, never from request handlers.
type OutboxService struct {
	outbox repository.OutboxRepository
	sender mailer.Sender
}

// NewOutboxService constructs OutboxService.
func NewOutboxService(outbox repository.OutboxRepository, sender mailer.Sender) *OutboxService {
	return &OutboxService{outbox: outbox, sender: sender}
}

// PickBatch claims up to limit messages awaiting delivery.
func (s *OutboxService) PickBatch(ctx context.Context, limit int) ([]model.EmailMessage, error) {
	return s.outbox.PickPending(ctx, limit)
}

// Dispatch sends one message and records the outcome. A send failure is
// persisted on the row, not returned, so one bad address never stalls
// the batch.
func (s *OutboxService) Dispatch(ctx context.Context, msg model.EmailMessage) error {
	if err := s.sender.Send(msg); err != nil {
		return s.outbox.MarkError(ctx, msg.ID, err.Error())
	}
	return s.outbox.MarkSent(ctx, msg.ID)
}
