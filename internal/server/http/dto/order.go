package dto

import "time"

// ItemRequest is one (option, quantity) pair of a custom order.
type ItemRequest struct {
	OptionID string `json:"option_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest covers both creation flows: a package id or an
// explicit item list, never both.
type CreateOrderRequest struct {
	RequestToken  string        `json:"request_token" binding:"required"`
	PackageID     string        `json:"package_id"`
	Items         []ItemRequest `json:"items"`
	EventTypeID   string        `json:"event_type_id"`
	EventDate     string        `json:"event_date" binding:"required"`
	StartTime     string        `json:"start_time" binding:"required"`
	EndTime       *string       `json:"end_time"`
	Location      string        `json:"location"`
	CorrelationID *string       `json:"correlation_id"`
}

// OrderItemResponse is one priced line of an order.
type OrderItemResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	CatalogRef string `json:"catalog_ref"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	LineTotal  string `json:"line_total"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id"`
	EventTypeID   string              `json:"event_type_id"`
	EventDate     string              `json:"event_date"`
	StartTime     string              `json:"start_time"`
	EndTime       *string             `json:"end_time,omitempty"`
	Location      string              `json:"location"`
	Total         string              `json:"total"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	CorrelationID *string             `json:"correlation_id,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

// UpdateStatusRequest carries the target status by name.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddItemsRequest appends priced options to an order.
type AddItemsRequest struct {
	Items []ItemRequest `json:"items" binding:"required"`
}

// RemoveItemsRequest deletes line items by id.
type RemoveItemsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}

// SummaryRequest asks for an order summary email.
type SummaryRequest struct {
	ToEmail string `json:"to_email" binding:"required,email"`
}
