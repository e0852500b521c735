package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// The trolley clients run from the seatback/handheld shells; localhost
// covers the simulator during cabin bench testing.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8081",
	"https://pos.galleypos.aero",
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
