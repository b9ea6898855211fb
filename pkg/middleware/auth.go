package middleware

import (
	"net/http"
	"strings"

	"github.com/printfarmlabs/stockpile/pkg/auth"
	"github.com/printfarmlabs/stockpile/pkg/response"
)

// Auth rejects requests without a valid Bearer session token. The inventory
// core never sees session state; this is the whole authentication boundary.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w)
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired session token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
