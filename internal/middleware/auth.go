package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	// UserIDContextKey holds the authenticated user's id
	UserIDContextKey contextKey = "user_id"
)

// AuthMiddleware loads caller identity from the session cookie. Session
// issuance itself happens elsewhere; this only reads what is there.
type AuthMiddleware struct {
	store sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{store: store}
}

// LoadUser reads the user id from the session and adds it to the
// request context. Requests without a valid session continue anonymous.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, "session")
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int)
		if !ok {
			// Session storage might convert types
			switch v := session.Values["user_id"].(type) {
			case float64:
				userID = int(v)
				ok = userID != 0
			case string:
				if parsed, err := strconv.Atoi(v); err == nil {
					userID = parsed
					ok = userID != 0
				}
			}
		}

		if !ok || userID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects anonymous requests with a JSON 401
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext returns the authenticated user's id, if any
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(int)
	return userID, ok
}
