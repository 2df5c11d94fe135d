package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fordrm/the-a-team-sub000/pkg/ctxutil"
)

// TokenValidator verifies a bearer token and returns the caller's user ID and role.
type TokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Auth resolves the bearer token into the caller identity. Requests without
// a token pass through anonymously; handlers decide whether that is allowed.
// A token that fails verification is rejected with 401.
func Auth(validator TokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			recordUser(r.Context(), userID)
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
