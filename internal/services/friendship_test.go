package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kenji-One/tikd/internal/models"
)

// mockFriendshipStore is an in-memory FriendshipStore enforcing the
// same unordered-pair uniqueness the database index provides
type mockFriendshipStore struct {
	friendships map[int]*models.Friendship
	nextID      int
}

func newMockFriendshipStore() *mockFriendshipStore {
	return &mockFriendshipStore{
		friendships: make(map[int]*models.Friendship),
		nextID:      1,
	}
}

func (m *mockFriendshipStore) GetByID(id int) (*models.Friendship, error) {
	f, exists := m.friendships[id]
	if !exists {
		return nil, models.ErrFriendshipNotFound
	}
	copied := *f
	return &copied, nil
}

func (m *mockFriendshipStore) GetByPair(userA, userB int) (*models.Friendship, error) {
	for _, f := range m.friendships {
		if (f.RequesterID == userA && f.RecipientID == userB) ||
			(f.RequesterID == userB && f.RecipientID == userA) {
			copied := *f
			return &copied, nil
		}
	}
	return nil, models.ErrFriendshipNotFound
}

func (m *mockFriendshipStore) Create(requesterID, recipientID int) (*models.Friendship, error) {
	if _, err := m.GetByPair(requesterID, recipientID); err == nil {
		return nil, models.ErrDuplicateEntry
	}
	f := &models.Friendship{
		ID:          m.nextID,
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.FriendshipPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.friendships[m.nextID] = f
	m.nextID++
	copied := *f
	return &copied, nil
}

func (m *mockFriendshipStore) SetStatus(id int, status models.FriendshipStatus) error {
	f, exists := m.friendships[id]
	if !exists {
		return models.ErrFriendshipNotFound
	}
	f.Status = status
	f.UpdatedAt = time.Now()
	return nil
}

func (m *mockFriendshipStore) Reopen(id, requesterID, recipientID int) (*models.Friendship, error) {
	f, exists := m.friendships[id]
	if !exists {
		return nil, models.ErrFriendshipNotFound
	}
	f.RequesterID = requesterID
	f.RecipientID = recipientID
	f.Status = models.FriendshipPending
	f.UpdatedAt = time.Now()
	copied := *f
	return &copied, nil
}

func (m *mockFriendshipStore) DeleteBetween(userA, userB int) error {
	for id, f := range m.friendships {
		if (f.RequesterID == userA && f.RecipientID == userB) ||
			(f.RequesterID == userB && f.RecipientID == userA) {
			delete(m.friendships, id)
		}
	}
	return nil
}

func (m *mockFriendshipStore) ListByUser(userID int) ([]*models.Friendship, error) {
	var result []*models.Friendship
	for _, f := range m.friendships {
		if f.Involves(userID) {
			copied := *f
			result = append(result, &copied)
		}
	}
	return result, nil
}

func TestFriendshipService_Request(t *testing.T) {
	t.Run("creates pending edge", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, outcome, err := service.Request(1, 2)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCreated, outcome)
		assert.Equal(t, models.FriendshipPending, f.Status)
		assert.Equal(t, 1, f.RequesterID)
		assert.Equal(t, 2, f.RecipientID)
	})

	t.Run("reverse request before acceptance reports already pending", func(t *testing.T) {
		store := newMockFriendshipStore()
		service := NewFriendshipService(store)

		first, _, err := service.Request(1, 2)
		require.NoError(t, err)

		second, outcome, err := service.Request(2, 1)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyPending, outcome)
		assert.Equal(t, first.ID, second.ID, "no second edge for the same pair")
		assert.Len(t, store.friendships, 1)
	})

	t.Run("request to an accepted friend reports already friends", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)
		_, err = service.Accept(f.ID, 2)
		require.NoError(t, err)

		_, outcome, err := service.Request(1, 2)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyFriends, outcome)
	})

	t.Run("declined edge reopens with new direction", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)
		_, err = service.Decline(f.ID, 2)
		require.NoError(t, err)

		reopened, outcome, err := service.Request(1, 2)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCreated, outcome)
		assert.Equal(t, models.FriendshipPending, reopened.Status)
		assert.Equal(t, 1, reopened.RequesterID)
		assert.Equal(t, 2, reopened.RecipientID)
	})

	t.Run("declined edge reopened from the other side flips direction", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)
		_, err = service.Decline(f.ID, 2)
		require.NoError(t, err)

		reopened, outcome, err := service.Request(2, 1)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCreated, outcome)
		assert.Equal(t, 2, reopened.RequesterID)
		assert.Equal(t, 1, reopened.RecipientID)
	})

	t.Run("self request is invalid", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		_, outcome, err := service.Request(1, 1)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
		assert.Equal(t, OutcomeSelf, outcome)
	})
}

func TestFriendshipService_AcceptDecline(t *testing.T) {
	t.Run("accept is idempotent", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)

		first, err := service.Accept(f.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, models.FriendshipAccepted, first.Status)

		// Retried request settles to the same state without error
		second, err := service.Accept(f.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, models.FriendshipAccepted, second.Status)
	})

	t.Run("only the recipient may respond", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)

		_, err = service.Accept(f.ID, 1)
		assert.ErrorIs(t, err, models.ErrForbidden)

		_, err = service.Decline(f.ID, 3)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("decline after accept is a no-op success", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)
		_, err = service.Accept(f.ID, 2)
		require.NoError(t, err)

		settled, err := service.Decline(f.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, models.FriendshipAccepted, settled.Status)
	})

	t.Run("missing edge is not found", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())

		_, err := service.Accept(999, 2)
		assert.ErrorIs(t, err, models.ErrFriendshipNotFound)
	})
}

func TestFriendshipService_Remove(t *testing.T) {
	t.Run("removes accepted edge", func(t *testing.T) {
		store := newMockFriendshipStore()
		service := NewFriendshipService(store)

		f, _, err := service.Request(1, 2)
		require.NoError(t, err)
		_, err = service.Accept(f.ID, 2)
		require.NoError(t, err)

		require.NoError(t, service.Remove(1, 2))
		assert.Empty(t, store.friendships)
	})

	t.Run("removing a non-existent edge reports success", func(t *testing.T) {
		service := NewFriendshipService(newMockFriendshipStore())
		assert.NoError(t, service.Remove(1, 2))
	})

	t.Run("removing a pending edge leaves it alone", func(t *testing.T) {
		store := newMockFriendshipStore()
		service := NewFriendshipService(store)

		_, _, err := service.Request(1, 2)
		require.NoError(t, err)

		require.NoError(t, service.Remove(1, 2))
		assert.Len(t, store.friendships, 1)
	})
}

func TestFriendshipService_BatchRequest(t *testing.T) {
	service := NewFriendshipService(newMockFriendshipStore())

	// Pre-existing pending edge with user 3
	_, _, err := service.Request(1, 3)
	require.NoError(t, err)

	results := service.BatchRequest(1, []int{2, 3, 1})
	require.Len(t, results, 3)

	assert.Equal(t, OutcomeCreated, results[0].Outcome)
	assert.NotZero(t, results[0].FriendshipID)

	assert.Equal(t, OutcomeAlreadyPending, results[1].Outcome)

	// One bad recipient never fails the whole batch
	assert.Equal(t, OutcomeSelf, results[2].Outcome)
	assert.NotEmpty(t, results[2].Error)
}

func TestFriendshipService_List(t *testing.T) {
	service := NewFriendshipService(newMockFriendshipStore())

	f, _, err := service.Request(1, 2)
	require.NoError(t, err)
	_, err = service.Accept(f.ID, 2)
	require.NoError(t, err)

	views, err := service.List(2)
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, 1, views[0].UserID, "view is normalized to the other party")
	assert.True(t, views[0].Incoming)
	assert.Equal(t, models.FriendshipAccepted, views[0].Status)
}
