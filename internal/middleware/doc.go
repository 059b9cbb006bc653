// Package middleware provides HTTP middleware for the HackOps API.
//
// Middlewares compose via Chain, outermost first:
//
//	handler := middleware.Chain(mux,
//		middleware.Recovery,
//		middleware.RequestID,
//		middleware.Logger,
//	)
//
// Organizer routes are additionally wrapped with AdminAuth, which checks
// a bearer token against the bcrypt hash from configuration. Public
// registration routes go through RateLimit keyed by client IP.
package middleware
