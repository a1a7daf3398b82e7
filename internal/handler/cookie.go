package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Narven/wizards-api/internal/model"
	"github.com/Narven/wizards-api/internal/server"
)

const (
	// AppCookieName and AppCookieValue identify the server to the client.
	AppCookieName  = "app"
	AppCookieValue = "echo"

	// staleCookieValue is sent with the removal of the "name" cookie. It is
	// a fixed literal, not the value that was read from the request.
	staleCookieValue = "foo"
)

// CookieHandler serves GET /cookies.
type CookieHandler struct {
	Handler
}

func NewCookieHandler(s *server.Server) *CookieHandler {
	return &CookieHandler{
		Handler: NewHandler(s),
	}
}

// Greet answers "hello, {value}" for the "name" cookie, sets the app cookie,
// and expires the "name" cookie. The expiry carries the hardcoded value
// "foo" regardless of what the client sent; clients only match on name, so
// it still removes the cookie that was read.
func (h *CookieHandler) Greet(c echo.Context, req *model.CookieRequest) (string, error) {
	c.SetCookie(&http.Cookie{
		Name:  AppCookieName,
		Value: AppCookieValue,
		Path:  "/",
	})

	c.SetCookie(&http.Cookie{
		Name:    model.GreetingCookieName,
		Value:   staleCookieValue,
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})

	return fmt.Sprintf("hello, %s", req.Value), nil
}
