package domain

import "time"

// Product is the aggregate for inventory records. OwnerID is set at
// creation from the authenticated requester and never changes; all
// reads and writes are scoped by it.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
