package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Kenji-One/tikd/internal/models"
)

// TicketTypeRepository reads the authoritative ticket-type records for
// events. Checkout treats these rows as the system of record when
// revalidating client-submitted carts.
type TicketTypeRepository struct {
	db *sql.DB
}

// NewTicketTypeRepository creates a new ticket type repository
func NewTicketTypeRepository(db *sql.DB) *TicketTypeRepository {
	return &TicketTypeRepository{db: db}
}

// GetByEvent returns all ticket types currently defined for an event.
// Returns models.ErrEventNotFound when the event itself is missing.
func (r *TicketTypeRepository) GetByEvent(eventID int) ([]*models.TicketType, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)", eventID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check event existence: %w", err)
	}
	if !exists {
		return nil, models.ErrEventNotFound
	}

	query := `
		SELECT id, event_id, name, price, currency, created_at, updated_at
		FROM ticket_types
		WHERE event_id = $1
		ORDER BY id`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket types: %w", err)
	}
	defer rows.Close()

	var ticketTypes []*models.TicketType
	for rows.Next() {
		tt := &models.TicketType{}
		err := rows.Scan(
			&tt.ID,
			&tt.EventID,
			&tt.Name,
			&tt.Price,
			&tt.Currency,
			&tt.CreatedAt,
			&tt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}
		ticketTypes = append(ticketTypes, tt)
	}

	return ticketTypes, rows.Err()
}

// GetByID retrieves a single ticket type by ID
func (r *TicketTypeRepository) GetByID(id int) (*models.TicketType, error) {
	query := `
		SELECT id, event_id, name, price, currency, created_at, updated_at
		FROM ticket_types
		WHERE id = $1`

	tt := &models.TicketType{}
	err := r.db.QueryRow(query, id).Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Name,
		&tt.Price,
		&tt.Currency,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}

	return tt, nil
}
