package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/utils/sessions"
)

// CurrentUserMiddleware resolves the session's user and installs both the id
// and the loaded user into the request context, making the current user
// explicit request-scoped state.
func CurrentUserMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("CurrentUserMiddleware: session user %s not resolvable: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin gates authenticated-only routes, redirecting anonymous
// callers to the login page with a flash message.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
		if !ok || userID == "" {
			http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Please log in to continue."), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
