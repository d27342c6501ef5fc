package models

import "time"

// TicketType represents the authoritative price record for one ticket
// type of an event. Checkout compares client-claimed prices against
// these rows to detect stale or manipulated carts.
type TicketType struct {
	ID        int       `json:"id" db:"id"`
	EventID   int       `json:"event_id" db:"event_id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Currency  string    `json:"currency" db:"currency"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
