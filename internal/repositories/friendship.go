package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Kenji-One/tikd/internal/models"
)

// FriendshipRepository handles friendship edge persistence. Uniqueness
// per unordered user pair is enforced by a database index on
// (LEAST, GREATEST) of the two ids, not by application-level locking.
type FriendshipRepository struct {
	db *sql.DB
}

// NewFriendshipRepository creates a new friendship repository
func NewFriendshipRepository(db *sql.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

const friendshipColumns = "id, requester_id, recipient_id, status, created_at, updated_at"

func scanFriendship(row interface{ Scan(...interface{}) error }) (*models.Friendship, error) {
	f := &models.Friendship{}
	err := row.Scan(
		&f.ID,
		&f.RequesterID,
		&f.RecipientID,
		&f.Status,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetByID retrieves a friendship edge by ID
func (r *FriendshipRepository) GetByID(id int) (*models.Friendship, error) {
	query := fmt.Sprintf("SELECT %s FROM friendships WHERE id = $1", friendshipColumns)

	f, err := scanFriendship(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return f, nil
}

// GetByPair retrieves the edge between two users, checking both storage
// directions. Returns models.ErrFriendshipNotFound when no edge exists.
func (r *FriendshipRepository) GetByPair(userA, userB int) (*models.Friendship, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM friendships
		WHERE (requester_id = $1 AND recipient_id = $2)
		   OR (requester_id = $2 AND recipient_id = $1)`, friendshipColumns)

	f, err := scanFriendship(r.db.QueryRow(query, userA, userB))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to get friendship by pair: %w", err)
	}
	return f, nil
}

// Create inserts a new pending edge. A concurrent create from the other
// side of the pair surfaces as models.ErrDuplicateEntry via the unique
// pair index.
func (r *FriendshipRepository) Create(requesterID, recipientID int) (*models.Friendship, error) {
	query := fmt.Sprintf(`
		INSERT INTO friendships (requester_id, recipient_id, status)
		VALUES ($1, $2, $3)
		RETURNING %s`, friendshipColumns)

	f, err := scanFriendship(r.db.QueryRow(query, requesterID, recipientID, models.FriendshipPending))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, models.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create friendship: %w", err)
	}
	return f, nil
}

// SetStatus updates the status of an edge
func (r *FriendshipRepository) SetStatus(id int, status models.FriendshipStatus) error {
	result, err := r.db.Exec(
		"UPDATE friendships SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update friendship status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check friendship update: %w", err)
	}
	if rows == 0 {
		return models.ErrFriendshipNotFound
	}
	return nil
}

// Reopen resets a declined edge to pending and overwrites the direction
// to reflect the new initiator
func (r *FriendshipRepository) Reopen(id, requesterID, recipientID int) (*models.Friendship, error) {
	query := fmt.Sprintf(`
		UPDATE friendships
		SET requester_id = $1, recipient_id = $2, status = $3, updated_at = $4
		WHERE id = $5
		RETURNING %s`, friendshipColumns)

	f, err := scanFriendship(r.db.QueryRow(query, requesterID, recipientID, models.FriendshipPending, time.Now(), id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to reopen friendship: %w", err)
	}
	return f, nil
}

// DeleteBetween removes the edge between two users if one exists.
// Deleting a non-existent edge is not an error.
func (r *FriendshipRepository) DeleteBetween(userA, userB int) error {
	_, err := r.db.Exec(`
		DELETE FROM friendships
		WHERE (requester_id = $1 AND recipient_id = $2)
		   OR (requester_id = $2 AND recipient_id = $1)`, userA, userB)
	if err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}
	return nil
}

// ListByUser returns all edges involving a user, newest first
func (r *FriendshipRepository) ListByUser(userID int) ([]*models.Friendship, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM friendships
		WHERE requester_id = $1 OR recipient_id = $1
		ORDER BY updated_at DESC`, friendshipColumns)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	defer rows.Close()

	var friendships []*models.Friendship
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		friendships = append(friendships, f)
	}

	return friendships, rows.Err()
}
