package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated EventType = "product_created"
	EventProductUpdated EventType = "product_updated"
	EventProductDeleted EventType = "product_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ProductID string      `json:"product_id"`
	OwnerID   string      `json:"owner_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProductCreatedPayload payload.
type ProductCreatedPayload struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// ProductUpdatedPayload payload.
type ProductUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}

// ProductDeletedPayload payload.
type ProductDeletedPayload struct{}
