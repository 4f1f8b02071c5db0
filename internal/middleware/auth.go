package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"atrium/internal/httputil"
)

// BearerAuth checks the static bearer token on every request. There is no
// per-user identity; every caller shares one token. An empty configured
// token disables the check entirely. Health checks are always exempt so
// load balancers don't need credentials.
func BearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
