package model

import "time"

// OutboxStatus describes email delivery state.
type OutboxStatus int16

const (
	OutboxStatusPending OutboxStatus = 0
	OutboxStatusSent    OutboxStatus = 1
	OutboxStatusError   OutboxStatus = 2
	OutboxStatusRetry   OutboxStatus = 3
)

// EmailMessage is a row of the email outbox. Dispatch is asynchronous and
// fire-and-forget from the caller's point of view.
type EmailMessage struct {
	ID            string
	ToEmail       string
	Subject       string
	Body          string
	Template      string
	Status        OutboxStatus
	Attempts      int
	CorrelationID *string
	CreatedBy     string
	CreatedAt     time.Time
}
