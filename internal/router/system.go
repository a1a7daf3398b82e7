package router

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Narven/wizards-api/internal/handler"
	"github.com/Narven/wizards-api/internal/server"
)

// registerSystemRoutes registers endpoints that are not part of the wizard
// API:
//  1. the static mount, the one route the authorization gate skips; Echo's
//     static handler cleans the path and refuses to leave its root
//  2. the health endpoint, gated like every other route
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	// A trailing slash registers only "/www/*", so "/wwwx" is not served.
	r.Static(staticPrefix(s), s.Config.Static.Dir)

	r.GET("/status", h.Health.CheckHealth)
}

func staticPrefix(s *server.Server) string {
	return strings.TrimSuffix(s.Config.Static.Prefix, "/") + "/"
}

// isStaticRequest matches on the route Echo resolved, not the raw URL, so
// the gate and the router always agree on what the static mount is.
func isStaticRequest(s *server.Server) echomw.Skipper {
	route := staticPrefix(s) + "*"

	return func(c echo.Context) bool {
		return c.Path() == route
	}
}
