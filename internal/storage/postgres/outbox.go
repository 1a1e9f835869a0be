package postgres

import (
	"context"
	"fmt"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

func (r *outboxRepository) Enqueue(ctx context.Context, msg *model.EmailMessage) (*model.EmailMessage, error) {
	const query = `INSERT INTO email_outbox
            (id, to_email, subject, body, template, status, attempts, correlation_id, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
        RETURNING created_at`
	err := r.storage.q(ctx).QueryRow(ctx, query,
		msg.ID, msg.ToEmail, msg.Subject, msg.Body, msg.Template, model.OutboxStatusPending,
		msg.CorrelationID, msg.CreatedBy,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("enqueue email: %w", err)
	}
	msg.Status = model.OutboxStatusPending
	return msg, nil
}

// PickPending claims a batch of deliverable messages. The claim is
// stamped on the row inside the picking statement, so a second picker
// (an overlapping poll tick or another instance) skips in-flight rows
// until the claim expires; rows of a crashed picker become visible
// again after the interval.
func (r *outboxRepository) PickPending(ctx context.Context, limit int) ([]model.EmailMessage, error) {
	const query = `UPDATE email_outbox
                   SET last_attempt_at=NOW()
                   WHERE id IN (
                       SELECT id FROM email_outbox
                       WHERE status IN ($1, $2)
                         AND (last_attempt_at IS NULL OR last_attempt_at < NOW() - INTERVAL '2 minutes')
                       ORDER BY created_at
                       LIMIT $3
                       FOR UPDATE SKIP LOCKED
                   )
                   RETURNING id, to_email, subject, body, template, status, attempts, correlation_id, created_by, created_at`

	rows, err := r.storage.q(ctx).Query(ctx, query,
		model.OutboxStatusPending, model.OutboxStatusRetry, limit)
	if err != nil {
		return nil, fmt.Errorf("pick outbox batch: %w", err)
	}
	defer rows.Close()

	var messages []model.EmailMessage
	for rows.Next() {
		var m model.EmailMessage
		if err := rows.Scan(&m.ID, &m.ToEmail, &m.Subject, &m.Body, &m.Template,
			&m.Status, &m.Attempts, &m.CorrelationID, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	const query = `UPDATE email_outbox
                   SET status=$1, sent_at=NOW(), last_attempt_at=NOW()
                   WHERE id=$2`
	_, err := r.storage.q(ctx).Exec(ctx, query, model.OutboxStatusSent, id)
	return err
}

func (r *outboxRepository) MarkError(ctx context.Context, id, errMsg string) error {
	const query = `UPDATE email_outbox
                   SET status=$1, attempts=attempts+1, last_attempt_at=NOW(), error_msg=LEFT($2, 500)
                   WHERE id=$3`
	_, err := r.storage.q(ctx).Exec(ctx, query, model.OutboxStatusError, errMsg, id)
	return err
}
