package middleware

import (
	"net/http"

	"github.com/Sumatoha/shaq-web/internal/auth"
	"github.com/Sumatoha/shaq-web/internal/session"
)

// RequireSession resolves the session cookie and populates AuthContext.
// Browser navigations get redirected to the login page; fetch-style
// requests get a 401 so the editor can react in place.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				rejectUnauthenticated(w, r)
				return
			}

			sess, ok := store.Get(cookie.Value)
			if !ok {
				rejectUnauthenticated(w, r)
				return
			}

			ac := auth.AuthContext{
				SessionID: sess.ID,
				Token:     sess.Token,
				User:      sess.User,
			}

			ctx := auth.WithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Accept") == "application/json" || r.Header.Get("X-Requested-With") == "fetch" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
