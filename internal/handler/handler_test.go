package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubProbe struct {
	name string
	err  error
	hits int
}

func (s *stubProbe) Name() string { return s.name }

func (s *stubProbe) Check(ctx context.Context) error {
	s.hits++
	return s.err
}

func newContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGreeting(t *testing.T) {
	c, rec := newContext("/flask")

	if err := Greeting(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != GreetingText {
		t.Fatalf("expected %q, got %q", GreetingText, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextPlain) {
		t.Fatalf("expected text/plain content type, got %q", ct)
	}
}

func TestProbeSuccess(t *testing.T) {
	p := &stubProbe{name: "Postgres"}
	c, rec := newContext("/database")

	if err := Probe(p)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "Postgres connection successful" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestProbeFailureHidesError(t *testing.T) {
	p := &stubProbe{name: "Postgres", err: errors.New("password authentication failed for user \"bad\"")}
	c, rec := newContext("/database")

	if err := Probe(p)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if rec.Body.String() != "Postgres connection unsuccessful" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("error detail leaked to caller")
	}
}

func TestProbeRunsEveryRequest(t *testing.T) {
	p := &stubProbe{name: "Redis"}
	h := Probe(p)
	for i := 0; i < 3; i++ {
		c, _ := newContext("/redis")
		if err := h(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if p.hits != 3 {
		t.Fatalf("expected 3 checks, got %d", p.hits)
	}
}
