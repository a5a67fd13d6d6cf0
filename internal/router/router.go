package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hello-probe/internal/config"     // runtime configuration read once at startup
	"github.com/iliyamo/hello-probe/internal/handler"    // import the handlers that serve each route
	"github.com/iliyamo/hello-probe/internal/middleware" // import the CORS policy
	"github.com/iliyamo/hello-probe/internal/probe"      // dependency checks backing the probe routes
)

// RegisterRoutes installs the shared middleware and every route on the
// provided Echo instance.  The greeting and database routes always exist;
// the Redis and RabbitMQ probes are only exposed when their URL is set.
func RegisterRoutes(e *echo.Echo, cfg config.Config) {
	// Recover turns handler panics into 500 responses instead of killing
	// the process, and CORS lets browsers on any origin call us.
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())

	// Liveness: fixed text, no dependencies.
	e.GET("/flask", handler.Greeting)

	// Database probe: a fresh connection is opened and closed per request.
	e.GET("/database", handler.Probe(probe.NewSQL(cfg.DBURI)))

	if cfg.RedisURL != "" {
		e.GET("/redis", handler.Probe(probe.NewRedis(cfg.RedisURL)))
	}
	if cfg.AMQPURL != "" {
		e.GET("/rabbitmq", handler.Probe(probe.NewAMQP(cfg.AMQPURL)))
	}
}
