package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Narven/wizards-api/internal/server"
)

// ForbiddenBody is the exact body of a gate rejection.
const ForbiddenBody = "Forbidden"

// AuthMiddleware holds the app Server so middleware can access shared deps
// like Logger and Config.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuthorization is the authorization gate.
//
// It only checks that a non-empty Authorization header is present; the
// value is never inspected. A rejection is a normal response, not an
// error: it writes 403 "Forbidden" as plain text and returns nil, so the
// error handler never sees it and nothing further down the chain runs.
func (auth *AuthMiddleware) RequireAuthorization(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			GetLogger(c).Warn().
				Str("function", "RequireAuthorization").
				Str("request_id", GetRequestID(c)).
				Msg("request rejected: missing Authorization header")

			return c.String(http.StatusForbidden, ForbiddenBody)
		}

		return next(c)
	}
}

// Gate installs RequireAuthorization as global middleware, so it also runs
// in front of the handlers Echo supplies itself (automatic OPTIONS, 404 and
// 405). Requests for which skipper returns true bypass it.
func (auth *AuthMiddleware) Gate(skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		gated := auth.RequireAuthorization(next)

		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return gated(c)
		}
	}
}
