package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Narven/wizards-api/internal/errs"
	"github.com/Narven/wizards-api/internal/validation"
)

// DefaultGreetingName is used when the query carries no name parameter.
const DefaultGreetingName = "World"

// GreetingCookieName is the cookie the cookie route reads.
const GreetingCookieName = "name"

var validate = validation.New()

// GreetingRequest is the query of GET /.
//
// Name is taken verbatim: an explicit empty value stays empty and only an
// absent parameter falls back to DefaultGreetingName.
type GreetingRequest struct {
	Name string
}

// Bind parses the raw query string itself so a malformed query is reported
// instead of silently dropped.
func (r *GreetingRequest) Bind(c echo.Context) error {
	values, err := url.ParseQuery(c.Request().URL.RawQuery)
	if err != nil {
		return errs.NewBadRequestError("Malformed query string", false, nil, nil)
	}

	r.Name = DefaultGreetingName
	if names, ok := values["name"]; ok && len(names) > 0 {
		r.Name = names[0]
	}
	return nil
}

func (r *GreetingRequest) Validate() error {
	return nil
}

// CookieRequest carries the value of the GreetingCookieName cookie.
type CookieRequest struct {
	Value string
}

// Bind looks the cookie up and turns its absence into a 400.
func (r *CookieRequest) Bind(c echo.Context) error {
	cookie, err := c.Cookie(GreetingCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return validation.CustomValidationErrors{
				{Field: GreetingCookieName, Message: "cookie is required"},
			}
		}
		return errs.NewBadRequestError(err.Error(), false, nil, nil)
	}

	r.Value = cookie.Value
	return nil
}

func (r *CookieRequest) Validate() error {
	return nil
}

// ListWizardsRequest is the empty payload of GET /wizards/.
type ListWizardsRequest struct{}

func (r *ListWizardsRequest) Validate() error {
	return nil
}

// CreateWizardRequest is the JSON body of the create route.
//
// Level is a pointer so a missing field is distinguishable from level 0.
type CreateWizardRequest struct {
	Name  string `json:"name" validate:"required"`
	Level *int   `json:"level" validate:"required,min=0,max=255"`
}

// Bind decodes the body as JSON whatever Content-Type the client sent.
// An empty body binds nothing and is left to Validate. Anything after the
// first JSON value is rejected.
func (r *CreateWizardRequest) Bind(c echo.Context) error {
	body := c.Request().Body
	if body == nil {
		return nil
	}

	dec := json.NewDecoder(body)

	if err := dec.Decode(r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errs.NewBadRequestError(describeJSONError(err), false, nil, nil)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errs.NewBadRequestError("Unexpected data after JSON body", false, nil, nil)
	}
	return nil
}

func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v", typeErr.Type, typeErr.Value, typeErr.Field)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Syntax error: offset=%v, error=%v", syntaxErr.Offset, syntaxErr.Error())
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "Syntax error: unexpected end of JSON body"
	default:
		return err.Error()
	}
}

func (r *CreateWizardRequest) Validate() error {
	return validate.Struct(r)
}

// Wizard converts a validated request into a record.
func (r *CreateWizardRequest) Wizard() Wizard {
	return Wizard{
		Name:  r.Name,
		Level: uint8(*r.Level),
	}
}
