package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itsDrac/nft-web/internal/session"
	"github.com/itsDrac/nft-web/pkg/config"
)

type userKey struct{}

// SessionMiddleware loads the session cookie into the request context.
// The current user is the session's, or the user_id query parameter when
// the session has none, since pages link to each other carrying it.
// Handlers that modify the session save it themselves.
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Load(r)

			userID := sess.UserID()
			if userID == "" {
				userID = strings.TrimSpace(r.URL.Query().Get(config.UserIDParam))
			}

			ctx := session.NewContext(r.Context(), sess)
			ctx = context.WithValue(ctx, userKey{}, userID)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUserID is the user the request acts for, empty when unknown.
func CurrentUserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}
