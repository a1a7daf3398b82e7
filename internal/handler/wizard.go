package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Narven/wizards-api/internal/model"
	"github.com/Narven/wizards-api/internal/server"
	"github.com/Narven/wizards-api/internal/service"
)

// WizardHandler serves the /wizards group.
type WizardHandler struct {
	Handler
	wizards *service.WizardService
}

func NewWizardHandler(s *server.Server, wizards *service.WizardService) *WizardHandler {
	return &WizardHandler{
		Handler: NewHandler(s),
		wizards: wizards,
	}
}

// List returns the fixed sample wizards.
func (h *WizardHandler) List(c echo.Context, _ *model.ListWizardsRequest) ([]model.Wizard, error) {
	return h.wizards.List(c.Request().Context()), nil
}

// Create answers "{name} is level {level}" for a valid JSON body.
// The route is a GET; the body is read regardless of method.
func (h *WizardHandler) Create(c echo.Context, req *model.CreateWizardRequest) (string, error) {
	w := h.wizards.Create(c.Request().Context(), req.Wizard())
	return fmt.Sprintf("%s is level %d", w.Name, w.Level), nil
}
