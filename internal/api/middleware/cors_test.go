package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCORS_Preflight(t *testing.T) {
	e := echo.New()
	mw := CORS()
	handler := mw(func(c echo.Context) error {
		t.Fatal("handler must not run for a pre-flight request")
		return nil
	})

	for _, path := range []string{"/v1/tracking", "/v1/webhook/trackship"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler(c); err != nil {
			t.Fatalf("%s: middleware error: %v", path, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("%s: expected empty body, got %q", path, rec.Body.String())
		}
		if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
			t.Errorf("%s: Allow-Origin = %q", path, got)
		}
		if got := rec.Header().Get(echo.HeaderAccessControlAllowMethods); got != "GET, POST, OPTIONS" {
			t.Errorf("%s: Allow-Methods = %q", path, got)
		}
		if got := rec.Header().Get(echo.HeaderAccessControlAllowHeaders); got != echo.HeaderContentType {
			t.Errorf("%s: Allow-Headers = %q", path, got)
		}
	}
}

func TestCORS_PassThrough(t *testing.T) {
	e := echo.New()
	called := false
	handler := CORS()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/tracking", nil)
	rec := httptest.NewRecorder()

	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatal("wrapped handler was not called")
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
		t.Errorf("Allow-Origin missing on pass-through response: %q", got)
	}
}
