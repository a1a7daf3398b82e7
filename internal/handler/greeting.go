package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Narven/wizards-api/internal/model"
	"github.com/Narven/wizards-api/internal/server"
)

// GreetingHandler serves GET /.
type GreetingHandler struct {
	Handler
}

func NewGreetingHandler(s *server.Server) *GreetingHandler {
	return &GreetingHandler{
		Handler: NewHandler(s),
	}
}

// Greet answers "Hello, {name}". Any name is accepted, including "".
func (h *GreetingHandler) Greet(c echo.Context, req *model.GreetingRequest) (string, error) {
	return fmt.Sprintf("Hello, %s", req.Name), nil
}
