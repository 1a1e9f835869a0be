package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")

	// Pricing.
	ErrNoActivePrice      = errors.New("package has no active price")
	ErrMissingActivePrice = errors.New("option has no active price")
	ErrEmptyItems         = errors.New("item set is empty")
	ErrEmptyItemIDs       = errors.New("item id set is empty")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrPackageEmpty       = errors.New("package has no items")

	// Holds and assignment.
	ErrInvalidWindow        = errors.New("window start must precede end")
	ErrInvalidTTL           = errors.New("hold ttl outside allowed bounds")
	ErrInvalidHold          = errors.New("hold is invalid for this booking")
	ErrHoldNotActive        = errors.New("hold is not active")
	ErrProviderConflict     = errors.New("provider is not available for the window")
	ErrAssignmentNotAllowed = errors.New("order status does not allow assignment")
	ErrNoItems              = errors.New("order has no line items")

	// State machine.
	ErrInvalidTotal = errors.New("order total must be positive")

	// Infrastructure signals mapped at the storage boundary.
	ErrReservationSourceUnavailable = errors.New("reservation conflict source unavailable")
	ErrSerializationFailure         = errors.New("transaction serialization failure")
)

// InvalidTransitionError reports an order status change outside the
// allowed transition table.
type InvalidTransitionError struct {
	From int
	To   int
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition %d->%d", e.From, e.To)
}

// IsInvalidTransition unwraps err into InvalidTransitionError if possible.
func IsInvalidTransition(err error) *InvalidTransitionError {
	var ite *InvalidTransitionError
	if errors.As(err, &ite) {
		return ite
	}
	return nil
}
