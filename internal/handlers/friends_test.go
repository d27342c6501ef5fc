package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kenji-One/tikd/internal/middleware"
	"github.com/Kenji-One/tikd/internal/models"
	"github.com/Kenji-One/tikd/internal/services"
)

type mockFriendshipService struct {
	views      []models.FriendView
	friendship *models.Friendship
	results    []services.BatchRequestResult
	err        error

	removedA, removedB int
}

func (m *mockFriendshipService) Request(requesterID, recipientID int) (*models.Friendship, services.RequestOutcome, error) {
	return m.friendship, services.OutcomeCreated, m.err
}

func (m *mockFriendshipService) BatchRequest(requesterID int, recipientIDs []int) []services.BatchRequestResult {
	return m.results
}

func (m *mockFriendshipService) Accept(friendshipID, actingUserID int) (*models.Friendship, error) {
	return m.friendship, m.err
}

func (m *mockFriendshipService) Decline(friendshipID, actingUserID int) (*models.Friendship, error) {
	return m.friendship, m.err
}

func (m *mockFriendshipService) Remove(userA, userB int) error {
	m.removedA, m.removedB = userA, userB
	return m.err
}

func (m *mockFriendshipService) List(userID int) ([]models.FriendView, error) {
	return m.views, m.err
}

// asUser injects an authenticated user id the way the auth middleware
// would
func asUser(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestFriendsHandler_List(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{})

		req := httptest.NewRequest("GET", "/api/friends", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns normalized friends", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{
			views: []models.FriendView{
				{FriendshipID: 1, UserID: 2, Status: models.FriendshipAccepted},
			},
		})

		req := asUser(httptest.NewRequest("GET", "/api/friends", nil), 1)
		w := httptest.NewRecorder()
		handler.List(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OK      bool                `json:"ok"`
			Friends []models.FriendView `json:"friends"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		require.Len(t, resp.Friends, 1)
		assert.Equal(t, 2, resp.Friends[0].UserID)
	})
}

func TestFriendsHandler_CreateRequests(t *testing.T) {
	t.Run("batch outcomes", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{
			results: []services.BatchRequestResult{
				{RecipientID: 2, Outcome: services.OutcomeCreated, FriendshipID: 1},
				{RecipientID: 3, Outcome: services.OutcomeAlreadyPending},
			},
		})

		body := `{"recipient_ids": [2, 3]}`
		req := asUser(httptest.NewRequest("POST", "/api/friends/requests", strings.NewReader(body)), 1)
		w := httptest.NewRecorder()
		handler.CreateRequests(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OK      bool                          `json:"ok"`
			Results []services.BatchRequestResult `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 2)
		assert.Equal(t, services.OutcomeAlreadyPending, resp.Results[1].Outcome)
	})

	t.Run("single recipient form", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{
			results: []services.BatchRequestResult{
				{RecipientID: 2, Outcome: services.OutcomeCreated, FriendshipID: 1},
			},
		})

		body := `{"recipient_id": 2}`
		req := asUser(httptest.NewRequest("POST", "/api/friends/requests", strings.NewReader(body)), 1)
		w := httptest.NewRecorder()
		handler.CreateRequests(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no recipients", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{})

		req := asUser(httptest.NewRequest("POST", "/api/friends/requests", strings.NewReader(`{}`)), 1)
		w := httptest.NewRecorder()
		handler.CreateRequests(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFriendsHandler_Accept(t *testing.T) {
	t.Run("forbidden for non-recipient", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{err: models.ErrForbidden})

		req := asUser(httptest.NewRequest("POST", "/api/friends/requests/1/accept", nil), 1)
		req = withURLParam(req, "id", "1")
		w := httptest.NewRecorder()
		handler.Accept(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("accepts pending request", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{
			friendship: &models.Friendship{ID: 1, RequesterID: 2, RecipientID: 1, Status: models.FriendshipAccepted},
		})

		req := asUser(httptest.NewRequest("POST", "/api/friends/requests/1/accept", nil), 1)
		req = withURLParam(req, "id", "1")
		w := httptest.NewRecorder()
		handler.Accept(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "accepted")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		handler := NewFriendsHandler(&mockFriendshipService{})

		req := asUser(httptest.NewRequest("POST", "/api/friends/requests/abc/accept", nil), 1)
		req = withURLParam(req, "id", "abc")
		w := httptest.NewRecorder()
		handler.Accept(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFriendsHandler_Remove(t *testing.T) {
	service := &mockFriendshipService{}
	handler := NewFriendsHandler(service)

	req := asUser(httptest.NewRequest("DELETE", "/api/friends/2", nil), 1)
	req = withURLParam(req, "userID", "2")
	w := httptest.NewRecorder()
	handler.Remove(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, service.removedA)
	assert.Equal(t, 2, service.removedB)
}
