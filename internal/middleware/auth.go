package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/user"
)

// RequireRole verifies the bearer token and enforces the given role before
// the handler runs. Missing or bad tokens answer 401; a valid token carried
// by the wrong role answers 403. On success the verified claims ride the
// request context for handlers via ClaimsFrom.
func RequireRole(guard *auth.Guard, role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := guard.Verify(auth.ExtractBearer(r), &role)
			if err != nil {
				if errors.Is(err, auth.ErrWrongRole) {
					writeAuthError(w, http.StatusForbidden, err)
					return
				}
				writeAuthError(w, http.StatusUnauthorized, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
