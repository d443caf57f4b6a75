// Package httpapi is the serving boundary: it translates HTTP requests
// into filter specifications, invokes the scanner and the engine, and maps
// their typed failures onto status codes. No aggregation logic lives here.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tagfold/server/aggregate"
	"github.com/tagfold/server/config"
)

// Server wires the engine and scanner behind fiber handlers.
type Server struct {
	cfg    *config.Config
	engine *aggregate.Engine
	log    zerolog.Logger
}

// New returns a Server around the given configuration.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		engine: aggregate.New(log),
		log:    log,
	}
}

// App builds the fiber application with routes and middleware attached.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(s.requestLogger)

	app.Get("/", s.handleIndex)
	app.Get("/api/options", s.handleOptions)
	app.Post("/api/aggregate", s.handleAggregate)

	return app
}

// Listen runs the server until it fails or is shut down.
func (s *Server) Listen() error {
	s.log.Info().Str("port", s.cfg.Port).Str("notes_dir", s.cfg.NotesDir).Msg("server starting")
	return s.App().Listen(":" + s.cfg.Port)
}

// requestLogger assigns each request an ID and logs its outcome.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	c.Locals("request_id", requestID)
	start := time.Now()

	err := c.Next()

	s.log.Info().
		Str("request_id", requestID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")

	return err
}
