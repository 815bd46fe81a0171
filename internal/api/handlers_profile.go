package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/services"
)

type updateProfileRequest struct {
	DateOfBirth *string  `json:"date_of_birth"`
	HeightCm    *float64 `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Country     *string  `json:"country"`
	ZipCode     *string  `json:"zip_code"`
}

type addWeightRequest struct {
	Weight    float64 `json:"weight" validate:"required,gt=0"`
	Unit      string  `json:"unit" validate:"omitempty,oneof=kg lb"`
	EntryDate string  `json:"entry_date"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	customer, err := handler.customers.GetCustomer(claims.CustomerID)
	if err != nil {
		return notFound(c, "customer not found")
	}

	response := fiber.Map{
		"customer": customer,
		"age":      customer.Age(time.Now()),
	}

	if latest, found, err := handler.customers.LatestWeight(claims.CustomerID); err == nil && found {
		response["weight"] = latest
	}
	if summary, available, err := handler.customers.BMIForCustomer(claims.CustomerID); err == nil && available {
		response["bmi"] = summary
	}

	return c.JSON(response)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request updateProfileRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "invalid profile payload")
	}

	updates := make(map[string]any)
	if request.DateOfBirth != nil {
		birthDate, err := parseRequestDate(*request.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth")
		}
		updates["date_of_birth"] = birthDate
	}
	if request.HeightCm != nil {
		updates["height_cm"] = *request.HeightCm
	}
	if request.Address != nil {
		updates["address"] = *request.Address
	}
	if request.City != nil {
		updates["city"] = *request.City
	}
	if request.State != nil {
		updates["state"] = *request.State
	}
	if request.Country != nil {
		updates["country"] = *request.Country
	}
	if request.ZipCode != nil {
		updates["zip_code"] = *request.ZipCode
	}

	if len(updates) > 0 {
		if err := handler.customers.UpdateProfile(claims.CustomerID, updates); err != nil {
			return internalError(c)
		}
	}
	return handler.GetProfile(c)
}

func (handler *Handler) AddWeightEntry(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	var request addWeightRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "invalid weight payload")
	}

	entryDate := time.Now()
	if request.EntryDate != "" {
		parsed, err := parseRequestDate(request.EntryDate)
		if err != nil {
			return badRequest(c, "invalid entry_date")
		}
		entryDate = parsed
	}

	entry, err := handler.customers.AddWeightEntry(claims.CustomerID, request.Weight, request.Unit, entryDate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeight) {
			return badRequest(c, "weight must be positive")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListWeightEntries(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	entries, err := handler.customers.ListWeightEntries(claims.CustomerID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"items": entries})
}
