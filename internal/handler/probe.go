package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hello-probe/internal/probe"
)

// Probe returns a handler that runs p once per request.  The caller only
// learns whether the dependency answered; the underlying error is logged.
func Probe(p probe.Probe) echo.HandlerFunc {
    if p == nil {
        panic("nil probe passed to handler.Probe")
    }
    return func(c echo.Context) error {
        name := p.Name()
        if err := p.Check(c.Request().Context()); err != nil {
            c.Logger().Errorf("%s connection failed: %v", name, err)
            return c.String(http.StatusInternalServerError, name+" connection unsuccessful")
        }
        return c.String(http.StatusOK, name+" connection successful")
    }
}
