package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/stylestore/pkg/auth"
)

// AuthMiddleware rejects requests without a valid Bearer token.
// The session itself lives in the SessionService; the token only proves
// the caller went through login or register.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)

		if token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
