package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/models"
	"github.com/terraincognita07/cyra/internal/services"
)

type upsertDayRequest struct {
	Date       string `json:"date" validate:"required"`
	Mood       string `json:"mood"`
	SymptomIDs []uint `json:"symptom_ids"`
	Notes      string `json:"notes" validate:"max=2000"`
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request upsertDayRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "date is required")
	}

	day, err := parseRequestDate(request.Date)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	entry, err := handler.days.UpsertEntry(claims.CustomerID, day, services.DailyEntryInput{
		Mood:       request.Mood,
		SymptomIDs: request.SymptomIDs,
		Notes:      request.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownMood) {
			return badRequest(c, "unknown mood")
		}
		return internalError(c)
	}
	return c.JSON(entry)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	day, err := parseRequestDate(c.Params("date"))
	if err != nil {
		return badRequest(c, "invalid date")
	}

	entry, found, err := handler.days.GetEntry(claims.CustomerID, day)
	if err != nil {
		return internalError(c)
	}
	if !found {
		return notFound(c, "no entry for this day")
	}
	return c.JSON(entry)
}

func (handler *Handler) ListDays(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	from, err := parseOptionalRequestDate(c.Query("from"))
	if err != nil {
		return badRequest(c, "invalid from date")
	}
	to, err := parseOptionalRequestDate(c.Query("to"))
	if err != nil {
		return badRequest(c, "invalid to date")
	}

	entries, err := handler.days.ListEntries(claims.CustomerID, from, to)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"items": entries})
}

// DailyActions exposes the logging catalogs the client renders pickers from.
func (handler *Handler) DailyActions(c *fiber.Ctx) error {
	symptoms, err := handler.repos.Symptoms.ListAll()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{
		"moods":    models.MoodOptions(),
		"symptoms": symptoms,
	})
}

func (handler *Handler) GetDailyTip(c *fiber.Ctx) error {
	dayStart, dayEnd := services.DayRange(time.Now(), handler.location)
	tip, found, err := handler.repos.Tips.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return internalError(c)
	}
	if !found {
		return notFound(c, "no tip for today")
	}
	return c.JSON(tip)
}
