// Package middleware provides HTTP middleware for the Todo API.
//
// # Available Middleware
//
//   - Auth: bearer token verification; rejected requests never reach a handler
//   - RequestID: unique id per request, echoed in X-Request-ID
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a JSON 500 body
//   - CORS: origin allow-listing and preflight handling
//
// # Authentication
//
// Auth takes anything that can verify a bearer token:
//
//	authMiddleware := middleware.Auth(tokenService)
//	mux.Handle("GET /todos", authMiddleware(http.HandlerFunc(h.List)))
//
// After authentication, handlers can read the decoded claim set from the
// request context:
//
//	claims := middleware.GetClaims(r.Context())
//	subject := middleware.GetSubject(r.Context())
//
// # Chaining
//
// Global middleware is applied with Chain, outermost first:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	)
package middleware
