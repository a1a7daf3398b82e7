package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/Narven/wizards-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once with their shared dependencies and reused during router setup.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, and the
	// global error handler.
	Global *GlobalMiddlewares

	// Auth provides the Authorization header gate.
	Auth *AuthMiddleware

	// ContextEnhancer stores a request-scoped logger on every request.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware; a pass-through when disabled.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
