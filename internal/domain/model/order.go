package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle. Values are persisted as-is and
// must stay stable across deployments.
type OrderStatus int16

const (
	OrderStatusDraft     OrderStatus = 0
	OrderStatusQuoted    OrderStatus = 1
	OrderStatusApproved  OrderStatus = 2
	OrderStatusAssigned  OrderStatus = 3
	OrderStatusClosed    OrderStatus = 4
	OrderStatusCancelled OrderStatus = 5
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusDraft:     "DRAFT",
	OrderStatusQuoted:    "QUOTED",
	OrderStatusApproved:  "APPROVED",
	OrderStatusAssigned:  "ASSIGNED",
	OrderStatusClosed:    "CLOSED",
	OrderStatusCancelled: "CANCELLED",
}

// ParseOrderStatus resolves a status name to its enum value.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	for status, n := range orderStatusNames {
		if n == name {
			return status, true
		}
	}
	return 0, false
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusClosed || s == OrderStatusCancelled
}

var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:    {OrderStatusQuoted, OrderStatusCancelled},
	OrderStatusQuoted:   {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved: {OrderStatusAssigned, OrderStatusCancelled},
	OrderStatusAssigned: {OrderStatusClosed, OrderStatusCancelled},
}

// CanTransition reports whether from->to is an edge of the transition table.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// InitialOrderStatus computes status for a freshly created order:
// QUOTED when the total is positive, DRAFT otherwise.
func InitialOrderStatus(total decimal.Decimal) OrderStatus {
	if total.IsPositive() {
		return OrderStatusQuoted
	}
	return OrderStatusDraft
}

// Order describes a booked bundle of service options for a scheduled event.
type Order struct {
	ID            string
	ClientID      string
	EventTypeID   string
	EventDate     time.Time
	StartTime     string
	EndTime       *string
	Location      string
	Total         decimal.Decimal
	Currency      string
	Status        OrderStatus
	CorrelationID *string
	RequestToken  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
