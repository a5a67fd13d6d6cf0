package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// GreetingText is the fixed body served by the liveness endpoint.
const GreetingText = "Flask inside Docker thru github!!"

// Greeting is the liveness endpoint.  It always returns GreetingText as
// plain text with an HTTP 200 status, independent of configuration.
func Greeting(c echo.Context) error {
    return c.String(http.StatusOK, GreetingText)
}
