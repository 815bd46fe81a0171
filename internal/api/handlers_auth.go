package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/security"
	"github.com/terraincognita07/cyra/internal/services"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var request registerRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "invalid registration payload")
	}

	user, customer, err := handler.auth.Register(services.RegisterInput{
		Email:     request.Email,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return conflict(c, "email already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return badRequest(c, "password too weak")
		default:
			return internalError(c)
		}
	}

	token, err := security.BuildToken(handler.secretKey, user.ID, customer.ID, security.DefaultTokenTTL)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var request loginRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := handler.validate.Struct(request); err != nil {
		return badRequest(c, "invalid login payload")
	}

	user, err := handler.auth.Login(request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
		}
		return internalError(c)
	}

	customer, err := handler.repos.Customers.FindByUserID(user.ID)
	if err != nil {
		return internalError(c)
	}

	token, err := security.BuildToken(handler.secretKey, user.ID, customer.ID, security.DefaultTokenTTL)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	claims, ok := handler.requestClaims(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := handler.repos.Users.FindByID(claims.UserID)
	if err != nil {
		return notFound(c, "user not found")
	}
	return c.JSON(fiber.Map{
		"user":         user,
		"display_name": user.DisplayName(),
	})
}
