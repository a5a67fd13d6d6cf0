package middleware // middleware provides shared request processing for handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
)

// CORS returns a middleware that accepts cross-origin requests from any
// origin.  Only the read-only methods this service exposes are advertised
// in preflight responses, and credentials are never allowed since a
// wildcard origin cannot be combined with them.
func CORS() echo.MiddlewareFunc {
    return echomw.CORSWithConfig(echomw.CORSConfig{
        AllowOrigins: []string{"*"},
        AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
    })
}
