// Package middleware provides HTTP middleware for the GuideU API.
package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware that handles CORS headers for allowedOrigins.
// "*" allows every origin; credentials are only allowed when every origin
// is listed explicitly.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
			break
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: !wildcard && len(allowedOrigins) > 0,
		MaxAge:           300,
	})
}
