package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narven/wizards-api/internal/config"
	"github.com/Narven/wizards-api/internal/errs"
	"github.com/Narven/wizards-api/internal/server"
)

func newTestServer(t *testing.T, buf *bytes.Buffer) *server.Server {
	t.Helper()

	logger := zerolog.New(buf)
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)
	return s
}

func newTestEcho(s *server.Server) *echo.Echo {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)
	return e
}

func TestRequireAuthorizationRejects(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	e := newTestEcho(s)

	called := false
	e.GET("/", func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}, NewAuthMiddleware(s).RequireAuthorization)

	for _, header := range []*string{nil, new(string)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != nil {
			req.Header.Set(echo.HeaderAuthorization, *header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, ForbiddenBody, rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
	}
	assert.False(t, called, "handler must not run behind a rejecting gate")
}

func TestRequireAuthorizationForwards(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	e := newTestEcho(s)

	e.GET("/", func(c echo.Context) error {
		// The value is forwarded untouched and never validated.
		return c.String(http.StatusOK, c.Request().Header.Get(echo.HeaderAuthorization))
	}, NewAuthMiddleware(s).RequireAuthorization)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "anything at all")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anything at all", rec.Body.String())
}

func TestGateCoversEchoOwnHandlers(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)

	e := echo.New()
	e.Use(NewAuthMiddleware(s).Gate(func(c echo.Context) bool {
		return c.Path() == "/public/*"
	}))
	e.GET("/private", func(c echo.Context) error { return c.String(http.StatusOK, "secret") })
	e.GET("/public/*", func(c echo.Context) error { return c.String(http.StatusOK, "open") })

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/private", http.StatusForbidden},
		{http.MethodOptions, "/private", http.StatusForbidden},
		{http.MethodPost, "/private", http.StatusForbidden},
		{http.MethodGet, "/missing", http.StatusForbidden},
		{http.MethodGet, "/public/file.txt", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestChainOrdering(t *testing.T) {
	var trace []string
	record := func(name string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				trace = append(trace, name+":in")
				err := next(c)
				trace = append(trace, name+":out")
				return err
			}
		}
	}

	e := echo.New()
	e.Use(record("a"), record("b"))
	e.GET("/", func(c echo.Context) error {
		trace = append(trace, "handler")
		return c.NoContent(http.StatusOK)
	}, record("c"))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a:in", "b:in", "c:in", "handler", "c:out", "b:out", "a:out"}, trace)
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"http error kept", errs.NewBadRequestError("bad wizard", true, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"wrapped http error kept", errors.Join(errors.New("ctx"), errs.NewNotFoundError("gone", false, nil)), http.StatusNotFound, "NOT_FOUND"},
		{"echo 404", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"echo 405", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"unknown error hidden", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newTestServer(t, &buf)
			e := newTestEcho(s)
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}

func TestRecoverConvertsPanic(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	e := newTestEcho(s)
	e.GET("/boom", func(c echo.Context) error { panic("wand snapped") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestRequestIDReusedOrGenerated(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	e := newTestEcho(s)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggerUsesErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	e := newTestEcho(s)
	e.GET("/", func(c echo.Context) error {
		return errs.NewBadRequestError("nope", false, nil, nil)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":400`)
	assert.Contains(t, buf.String(), `"message":"API"`)
}

func TestLoggerFromContextFallsBackToNop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, LoggerFromContext(req.Context()))
	assert.NotNil(t, GetLogger(echo.New().NewContext(req, httptest.NewRecorder())))
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFromError(nil, http.StatusOK))
	assert.Equal(t, http.StatusBadRequest, StatusFromError(errs.NewBadRequestError("x", false, nil, nil), http.StatusOK))
	assert.Equal(t, http.StatusNotFound, StatusFromError(echo.ErrNotFound, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, StatusFromError(errors.New("x"), http.StatusOK))
}
