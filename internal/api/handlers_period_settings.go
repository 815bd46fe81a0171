package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

type periodSettingsRequest struct {
	UseAverageCycle   *bool `json:"use_average_cycle"`
	AvgCycleLength    *int  `json:"avg_cycle_length"`
	AvgPeriodLength   *int  `json:"avg_period_length"`
	LutealPhaseLength *int  `json:"luteal_phase_length"`
}

func (handler *Handler) GetPeriodSettings(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := handler.settings.GetProfile(claims.CustomerID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdatePeriodSettings(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request periodSettingsRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	profile, err := handler.settings.UpdateProfile(claims.CustomerID, services.PeriodSettingsInput{
		UseAverageCycle:   request.UseAverageCycle,
		AvgCycleLength:    request.AvgCycleLength,
		AvgPeriodLength:   request.AvgPeriodLength,
		LutealPhaseLength: request.LutealPhaseLength,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidLutealPhase) || errors.Is(err, services.ErrInvalidCycleLength) {
			return badRequest(c, "settings out of range")
		}
		return internalError(c)
	}
	return c.JSON(profile)
}
