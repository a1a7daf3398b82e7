package handler

import (
	"github.com/Narven/wizards-api/internal/server"
	"github.com/Narven/wizards-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router setup
// takes one object.
type Handlers struct {
	Greeting *GreetingHandler
	Cookie   *CookieHandler
	Wizard   *WizardHandler
	Health   *HealthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Greeting: NewGreetingHandler(s),
		Cookie:   NewCookieHandler(s),
		Wizard:   NewWizardHandler(s, services.Wizard),
		Health:   NewHealthHandler(s, services.Wizard),
	}
}
