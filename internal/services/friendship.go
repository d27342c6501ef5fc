package services

import (
	"errors"
	"fmt"

	"github.com/Kenji-One/tikd/internal/models"
)

// FriendshipStore persists friendship edges keyed by the unordered
// user pair
type FriendshipStore interface {
	GetByID(id int) (*models.Friendship, error)
	GetByPair(userA, userB int) (*models.Friendship, error)
	Create(requesterID, recipientID int) (*models.Friendship, error)
	SetStatus(id int, status models.FriendshipStatus) error
	Reopen(id, requesterID, recipientID int) (*models.Friendship, error)
	DeleteBetween(userA, userB int) error
	ListByUser(userID int) ([]*models.Friendship, error)
}

// RequestOutcome describes what a friend request did to the edge
type RequestOutcome string

const (
	OutcomeCreated        RequestOutcome = "created"
	OutcomeAlreadyPending RequestOutcome = "already_pending"
	OutcomeAlreadyFriends RequestOutcome = "already_friends"
	OutcomeSelf           RequestOutcome = "self"
)

// BatchRequestResult is the per-recipient outcome of a batch friend
// request. One recipient failing never fails the whole batch.
type BatchRequestResult struct {
	RecipientID  int            `json:"recipient_id"`
	Outcome      RequestOutcome `json:"outcome,omitempty"`
	FriendshipID int            `json:"friendship_id,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// FriendshipService runs the friend-request lifecycle. Accept, decline
// and remove are idempotent: retried client requests on an
// already-settled edge report success without mutating anything.
type FriendshipService struct {
	repo FriendshipStore
}

// NewFriendshipService creates a new friendship service
func NewFriendshipService(repo FriendshipStore) *FriendshipService {
	return &FriendshipService{repo: repo}
}

// Request opens (or reopens) a pending edge from requester to
// recipient. An existing pending or accepted edge is left untouched
// and reported as such; a declined edge is reset to pending with the
// direction flipped to the new initiator.
func (s *FriendshipService) Request(requesterID, recipientID int) (*models.Friendship, RequestOutcome, error) {
	if requesterID == recipientID {
		return nil, OutcomeSelf, fmt.Errorf("%w: cannot send a friend request to yourself", models.ErrInvalidInput)
	}

	existing, err := s.repo.GetByPair(requesterID, recipientID)
	if err != nil {
		if !errors.Is(err, models.ErrFriendshipNotFound) {
			return nil, "", err
		}

		created, err := s.repo.Create(requesterID, recipientID)
		if err == nil {
			return created, OutcomeCreated, nil
		}
		if !errors.Is(err, models.ErrDuplicateEntry) {
			return nil, "", err
		}

		// Lost a race against a create from the other side; both
		// requests converge on the single stored edge.
		existing, err = s.repo.GetByPair(requesterID, recipientID)
		if err != nil {
			return nil, "", err
		}
	}

	switch existing.Status {
	case models.FriendshipAccepted:
		return existing, OutcomeAlreadyFriends, nil
	case models.FriendshipPending:
		return existing, OutcomeAlreadyPending, nil
	case models.FriendshipDeclined:
		reopened, err := s.repo.Reopen(existing.ID, requesterID, recipientID)
		if err != nil {
			return nil, "", err
		}
		return reopened, OutcomeCreated, nil
	default:
		return nil, "", fmt.Errorf("unexpected friendship status %q", existing.Status)
	}
}

// BatchRequest processes each recipient independently and reports a
// per-recipient outcome instead of failing the batch on one conflict
func (s *FriendshipService) BatchRequest(requesterID int, recipientIDs []int) []BatchRequestResult {
	results := make([]BatchRequestResult, 0, len(recipientIDs))

	for _, recipientID := range recipientIDs {
		result := BatchRequestResult{RecipientID: recipientID}

		friendship, outcome, err := s.Request(requesterID, recipientID)
		result.Outcome = outcome
		if err != nil {
			result.Error = err.Error()
		} else if friendship != nil {
			result.FriendshipID = friendship.ID
		}

		results = append(results, result)
	}

	return results
}

// Accept marks a pending edge accepted. Only the current recipient may
// accept; an edge that is no longer pending is treated as already
// settled and reported as success.
func (s *FriendshipService) Accept(friendshipID, actingUserID int) (*models.Friendship, error) {
	return s.settle(friendshipID, actingUserID, models.FriendshipAccepted)
}

// Decline marks a pending edge declined, symmetric to Accept
func (s *FriendshipService) Decline(friendshipID, actingUserID int) (*models.Friendship, error) {
	return s.settle(friendshipID, actingUserID, models.FriendshipDeclined)
}

func (s *FriendshipService) settle(friendshipID, actingUserID int, target models.FriendshipStatus) (*models.Friendship, error) {
	friendship, err := s.repo.GetByID(friendshipID)
	if err != nil {
		return nil, err
	}

	if friendship.RecipientID != actingUserID {
		return nil, fmt.Errorf("%w: only the recipient can respond to a friend request", models.ErrForbidden)
	}

	if friendship.Status != models.FriendshipPending {
		// Already settled, likely a retried request.
		return friendship, nil
	}

	if err := s.repo.SetStatus(friendshipID, target); err != nil {
		return nil, err
	}
	friendship.Status = target
	return friendship, nil
}

// Remove deletes an accepted edge between two users. Removing an edge
// that does not exist (or is not accepted) reports success.
func (s *FriendshipService) Remove(userA, userB int) error {
	existing, err := s.repo.GetByPair(userA, userB)
	if err != nil {
		if errors.Is(err, models.ErrFriendshipNotFound) {
			return nil
		}
		return err
	}

	if existing.Status != models.FriendshipAccepted {
		return nil
	}

	return s.repo.DeleteBetween(userA, userB)
}

// List returns all edges involving the user, normalized to the
// canonical (self, other) view
func (s *FriendshipService) List(userID int) ([]models.FriendView, error) {
	friendships, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.FriendView, 0, len(friendships))
	for _, f := range friendships {
		views = append(views, f.View(userID))
	}
	return views, nil
}
