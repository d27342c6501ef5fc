package models

import "time"

// FriendshipStatus represents the status of a friendship edge
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipDeclined FriendshipStatus = "declined"
)

// Friendship represents one relationship edge between two users. At
// most one row exists per unordered pair; (requester, recipient) and
// (recipient, requester) are the same logical edge. A declined edge is
// reopenable by a fresh request from either side, which overwrites the
// direction to reflect the new initiator.
type Friendship struct {
	ID          int              `json:"id" db:"id"`
	RequesterID int              `json:"requester_id" db:"requester_id"`
	RecipientID int              `json:"recipient_id" db:"recipient_id"`
	Status      FriendshipStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// Involves reports whether the given user is on either side of the edge
func (f *Friendship) Involves(userID int) bool {
	return f.RequesterID == userID || f.RecipientID == userID
}

// OtherParty returns the user on the opposite side of the edge from
// selfID, regardless of which direction the row is stored in
func (f *Friendship) OtherParty(selfID int) int {
	if f.RequesterID == selfID {
		return f.RecipientID
	}
	return f.RequesterID
}

// FriendView is the canonical (self, other) presentation of an edge:
// always from the perspective of the viewing user, whatever the storage
// direction.
type FriendView struct {
	FriendshipID int              `json:"friendship_id"`
	UserID       int              `json:"user_id"` // the other party
	Status       FriendshipStatus `json:"status"`
	Incoming     bool             `json:"incoming"` // true when the other party initiated
	Since        time.Time        `json:"since"`
}

// View normalizes the edge into the viewing user's perspective
func (f *Friendship) View(selfID int) FriendView {
	return FriendView{
		FriendshipID: f.ID,
		UserID:       f.OtherParty(selfID),
		Status:       f.Status,
		Incoming:     f.RecipientID == selfID,
		Since:        f.CreatedAt,
	}
}
