package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrNotFound, fiber.StatusNotFound},
		{ErrNoRecipe, fiber.StatusUnprocessableEntity},
		{ErrInsufficientStock, fiber.StatusConflict},
		{ErrValidation, fiber.StatusBadRequest},
		{ErrStore, fiber.StatusInternalServerError},
		{errors.New("something else"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), "error: %v", tc.err)
	}
}

func TestHTTPStatusSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("product 42: %w", ErrInsufficientStock)
	assert.Equal(t, fiber.StatusConflict, HTTPStatus(err))

	err = fmt.Errorf("load product: %w: %v", ErrStore, errors.New("conn refused"))
	assert.Equal(t, fiber.StatusInternalServerError, HTTPStatus(err))
}

func TestMessageKey(t *testing.T) {
	cases := []struct {
		err error
		key string
	}{
		{fmt.Errorf("product 1: %w", ErrNotFound), "error.not_found"},
		{fmt.Errorf("product 1: %w", ErrNoRecipe), "error.no_recipe"},
		{fmt.Errorf("material 2: %w", ErrInsufficientStock), "error.insufficient_stock"},
		{fmt.Errorf("quantity: %w", ErrValidation), "error.validation"},
		{ErrStore, "error.store"},
		{errors.New("unknown"), "error.store"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.key, MessageKey(tc.err), "error: %v", tc.err)
	}
}
