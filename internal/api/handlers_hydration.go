package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

type addIntakeRequest struct {
	AmountMl int `json:"amount_ml" validate:"required,gt=0"`
}

type hydrationGoalsRequest struct {
	GlassSizeMl int `json:"glass_size_ml" validate:"required,gt=0"`
	DailyGoalMl int `json:"daily_goal_ml" validate:"required,gt=0"`
}

func (handler *Handler) GetHydrationToday(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := handler.hydration.GetDay(claims.CustomerID, time.Now())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(view)
}

func (handler *Handler) AddHydrationIntake(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request addIntakeRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "amount_ml must be positive")
	}

	view, err := handler.hydration.AddIntake(claims.CustomerID, time.Now(), request.AmountMl)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return badRequest(c, "amount_ml must be positive")
		}
		return internalError(c)
	}
	return c.JSON(view)
}

func (handler *Handler) AddHydrationGlass(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	view, err := handler.hydration.AddGlass(claims.CustomerID, time.Now())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(view)
}

func (handler *Handler) UpdateHydrationGoals(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request hydrationGoalsRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "glass size and goal must be positive")
	}

	view, err := handler.hydration.UpdateGoals(claims.CustomerID, time.Now(), request.GlassSizeMl, request.DailyGoalMl)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(view)
}
