package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Kenji-One/tikd/internal/middleware"
	"github.com/Kenji-One/tikd/internal/models"
	"github.com/Kenji-One/tikd/internal/services"
)

// FriendsHandler handles friend list and friend request endpoints
type FriendsHandler struct {
	friendshipService services.FriendshipServiceInterface
}

// NewFriendsHandler creates a new friends handler
func NewFriendsHandler(friendshipService services.FriendshipServiceInterface) *FriendsHandler {
	return &FriendsHandler{friendshipService: friendshipService}
}

// List returns all edges involving the caller, normalized to the
// caller's perspective
func (h *FriendsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	friends, err := h.friendshipService.List(userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"friends": friends,
	})
}

// CreateRequests opens friend requests to one or more recipients,
// reporting a per-recipient outcome
func (h *FriendsHandler) CreateRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	var req models.FriendRequestCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	results := h.friendshipService.BatchRequest(userID, req.Recipients())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"results": results,
	})
}

// Accept accepts a pending friend request
func (h *FriendsHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, true)
}

// Decline declines a pending friend request
func (h *FriendsHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, false)
}

func (h *FriendsHandler) settle(w http.ResponseWriter, r *http.Request, accept bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	friendshipID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, models.ErrInvalidInput)
		return
	}

	var friendship *models.Friendship
	if accept {
		friendship, err = h.friendshipService.Accept(friendshipID, userID)
	} else {
		friendship, err = h.friendshipService.Decline(friendshipID, userID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":         true,
		"friendship": friendship,
	})
}

// Remove deletes an accepted friendship with the given user. Removing
// a friendship that does not exist still reports success.
func (h *FriendsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	otherID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, models.ErrInvalidInput)
		return
	}

	if err := h.friendshipService.Remove(userID, otherID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
