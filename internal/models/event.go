package models

import "time"

// Event represents an event in the system
type Event struct {
	ID             int       `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	OrganizationID int       `json:"organization_id" db:"organization_id"`
	StartsAt       time.Time `json:"starts_at" db:"starts_at"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
