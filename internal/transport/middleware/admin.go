package middleware

import (
	"net/http"

	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

// RequireAdmin rejects callers that are not authenticated with the admin
// role. Anonymous callers get 401, authenticated non-admins get 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
