package httpapi

import (
	"context"
	"net/http"
	"strings"

	"blogcms/internal/common"
	"blogcms/internal/server/auth"
	"blogcms/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// authMiddleware fails closed: missing, malformed, expired and badly
// signed tokens all produce the same 401. The encoded user id is
// resolved against the store on every request, so a deleted account
// cannot keep using an old token.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := requestToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required. Please login.")
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}

		user, err := s.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin runs after authMiddleware and additionally demands the
// admin role. The check is on the resolved record, not the token claim,
// so a demotion takes effect immediately.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil || user.Role != common.RoleAdmin {
			writeError(w, http.StatusForbidden, "Access denied. Admin only.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// requestToken honors both credential channels the frontend uses: the
// Authorization header first, the auth cookie as fallback.
func requestToken(r *http.Request) string {
	if token := bearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	if cookie, err := r.Cookie(common.AuthCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
