// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Narven/wizards-api/internal/handler"
	"github.com/Narven/wizards-api/internal/middleware"
	"github.com/Narven/wizards-api/internal/server"
)

// NewRouter builds the Echo instance with the full middleware chain and
// every route.
//
// Global middleware wrap everything, the static mount included. The
// authorization gate is global too, so it also answers for requests Echo
// would otherwise handle by itself (OPTIONS, unmatched paths, wrong
// methods). Only the static mount skips it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: request ID before anything that logs, the transaction
	// before the tracing attributes, the request logger before the logging
	// wrapper, Recover so panics come back as errors that everything above
	// still observes, and the gate ahead of CORS so preflights are gated.
	router.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Auth.Gate(isStaticRequest(s)),
		m.Global.CORS(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("")
	registerGreetingRoutes(api, h)
	registerWizardRoutes(api, h)

	return router
}

func registerGreetingRoutes(g *echo.Group, h *handler.Handlers) {
	g.GET("/", handler.HandleText(h.Greeting.Handler, h.Greeting.Greet, http.StatusOK))
	g.GET("/cookies", handler.HandleText(h.Cookie.Handler, h.Cookie.Greet, http.StatusOK))
}

// registerWizardRoutes mounts the /wizards sub-table. "/1" is a literal
// segment: Echo prefers it over anything shorter, so it never reaches List.
func registerWizardRoutes(g *echo.Group, h *handler.Handlers) {
	wizards := g.Group("/wizards")

	list := handler.Handle(h.Wizard.Handler, h.Wizard.List, http.StatusOK)
	wizards.GET("", list)
	wizards.GET("/", list)

	// Create is a GET that reads a JSON body.
	wizards.GET("/1", handler.HandleText(h.Wizard.Handler, h.Wizard.Create, http.StatusCreated))
}
