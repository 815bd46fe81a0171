package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const requestDateLayout = "2006-01-02"

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func parseRequestDate(value string) (time.Time, error) {
	return time.Parse(requestDateLayout, value)
}

func parseOptionalRequestDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(requestDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
