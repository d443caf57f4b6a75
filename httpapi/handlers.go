package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tagfold/server/domain"
	"github.com/tagfold/server/vault"
)

// aggregateRequest is the wire form of a filter specification. A null or
// absent tags field means match-all; an explicitly empty array is an
// invalid filter.
type aggregateRequest struct {
	Tags      []string `json:"tags" form:"tags"`
	Privacy   []string `json:"privacy" form:"privacy"`
	StartDate string   `json:"start_date" form:"start_date"`
	EndDate   string   `json:"end_date" form:"end_date"`
}

func (s *Server) handleOptions(c *fiber.Ctx) error {
	opts, err := vault.New(s.cfg.NotesDir, s.log).Scan()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(opts)
}

func (s *Server) handleAggregate(c *fiber.Ctx) error {
	var req aggregateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	tagFilter := domain.MatchAll()
	if req.Tags != nil {
		tagFilter = domain.MatchAny(req.Tags)
	}

	spec := domain.FilterSpec{
		NotesDir:       s.cfg.NotesDir,
		AggregatesDir:  s.cfg.AggregatesDir,
		RequiredTags:   tagFilter,
		AllowedPrivacy: req.Privacy,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if err := spec.RequiredTags.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := s.engine.Aggregate(spec)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// statusFor maps the engine's failure taxonomy onto HTTP statuses:
// not-found for "nothing to aggregate" outcomes, conflict for output
// collisions, bad request for caller errors, and 500 for the rest.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrOutputCollision):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrEmptySource),
		errors.Is(err, domain.ErrNoFilesInRange),
		errors.Is(err, domain.ErrNoMatchingNotes):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
