package handler

import (
	"errors"

	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	ucauth "job-board/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
