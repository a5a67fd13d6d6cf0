package main // Entry point package

import (
	"errors"   // errors distinguishes a clean shutdown from a bind failure
	"log"      // Logging library
	"net/http" // http.ErrServerClosed

	"github.com/iliyamo/hello-probe/internal/config" // Internal config loader
	"github.com/iliyamo/hello-probe/internal/router" // Internal router setup
	"github.com/labstack/echo/v4"                    // Echo web framework
)

func main() {
	cfg := config.Load()          // Load environment config once
	e := echo.New()               // Create Echo instance
	e.HideBanner = true           // Startup line below is enough
	router.RegisterRoutes(e, cfg) // Register application routes

	addr := cfg.Addr()                                    // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info
	if cfg.DBURI == "" {
		log.Printf("DB_URI is not set; /database will report failure")
	}

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
