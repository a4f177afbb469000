package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Domain error taxonomy. Services return these (usually wrapped with
// context via fmt.Errorf("...: %w", err)); the HTTP layer maps them to a
// status code and a localized message.
var (
	ErrNotFound            = errors.New("record not found")
	ErrNoRecipe            = errors.New("no recipe configured")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrValidation          = errors.New("validation error")
	ErrLedgerPostingFailed = errors.New("ledger posting failed") // non-fatal: primary effect already committed
	ErrStore               = errors.New("store error")
)

// HTTPStatus maps a domain error to its response status. Unknown errors are
// treated as store failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNoRecipe):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrInsufficientStock):
		return fiber.StatusConflict
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// MessageKey maps a domain error to its i18n catalog key.
func MessageKey(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "error.not_found"
	case errors.Is(err, ErrNoRecipe):
		return "error.no_recipe"
	case errors.Is(err, ErrInsufficientStock):
		return "error.insufficient_stock"
	case errors.Is(err, ErrValidation):
		return "error.validation"
	default:
		return "error.store"
	}
}
