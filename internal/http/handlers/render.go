package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, ok := c.Locals("CSRFToken").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// userMessage maps a core error to the single notification shown to the
// user. Typed domain errors already carry displayable messages; anything
// else gets a generic line so internals never leak.
func userMessage(err error) string {
	var (
		verr *domain.ValidationError
		nerr *domain.NotFoundError
		serr *domain.InsufficientStockError
		cerr *domain.CorruptStateError
		perr *domain.PartialCommitError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &nerr), errors.As(err, &serr),
		errors.As(err, &cerr), errors.As(err, &perr):
		return err.Error()
	default:
		return "Something went wrong. Please try again."
	}
}
