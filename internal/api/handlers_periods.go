package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

type startPeriodRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"`
}

type endPeriodRequest struct {
	PeriodID  string `json:"period_id" validate:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (handler *Handler) StartPeriod(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request startPeriodRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "start_date is required")
	}

	startDate, err := parseRequestDate(request.StartDate)
	if err != nil {
		return badRequest(c, "invalid start_date")
	}
	endDate, err := parseOptionalRequestDate(request.EndDate)
	if err != nil {
		return badRequest(c, "invalid end_date")
	}

	record, err := handler.periods.StartPeriod(
		services.Actor{UserID: claims.UserID},
		claims.CustomerID,
		services.StartPeriodInput{StartDate: startDate, EndDate: endDate},
		time.Now(),
	)
	if err != nil {
		return handler.periodMutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) EndPeriod(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request endPeriodRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "period_id and end_date are required")
	}

	endDate, err := parseRequestDate(request.EndDate)
	if err != nil {
		return badRequest(c, "invalid end_date")
	}
	startDate, err := parseOptionalRequestDate(request.StartDate)
	if err != nil {
		return badRequest(c, "invalid start_date")
	}

	record, err := handler.periods.UpdatePeriod(
		services.Actor{UserID: claims.UserID},
		claims.CustomerID,
		request.PeriodID,
		services.UpdatePeriodInput{StartDate: startDate, EndDate: &endDate},
		time.Now(),
	)
	if err != nil {
		return handler.periodMutationError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	recordID := c.Params("id")
	if recordID == "" {
		return badRequest(c, "period id is required")
	}

	err := handler.periods.DeletePeriod(services.Actor{UserID: claims.UserID}, claims.CustomerID, recordID, time.Now())
	if err != nil {
		return handler.periodMutationError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetActivePeriod(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	record, found, err := handler.periods.GetActivePeriod(claims.CustomerID, time.Now())
	if err != nil {
		return internalError(c)
	}
	if !found {
		return notFound(c, "no active period entry found")
	}
	return c.JSON(record)
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", services.DefaultPeriodPageSize)

	listing, err := handler.status.ListPeriods(claims.CustomerID, page, pageSize)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(listing)
}

func (handler *Handler) GetPeriodStatus(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	snapshot, err := handler.status.GetStatus(claims.CustomerID, time.Now())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(snapshot)
}

func (handler *Handler) periodMutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInterval):
		return badRequest(c, "end date must not be before start date")
	case errors.Is(err, services.ErrPeriodNotFound):
		return notFound(c, "period record not found")
	case errors.Is(err, services.ErrConcurrentMutation):
		return conflict(c, "another change is in progress, retry")
	default:
		return internalError(c)
	}
}
