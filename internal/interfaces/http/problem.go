package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rocketstore-api/internal/application/dto"
	"github.com/jhoicas/rocketstore-api/internal/domain"
)

// statusFor traduce un código de error de dominio a status HTTP.
func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeValidationFailed:
		return fiber.StatusBadRequest
	case domain.ErrCodeCustomerAlreadyExists:
		return fiber.StatusConflict
	case domain.ErrCodeInexistentCustomer:
		return fiber.StatusNotFound
	case domain.ErrCodeGeocodingRequest:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// writeFailure responde el fallo de un Result como ProblemDetails.
func writeFailure[T any](c *fiber.Ctx, r domain.Result[T]) error {
	status := statusFor(r.ErrorCode())
	return c.Status(status).JSON(dto.ProblemDetails{
		Status: status,
		Title:  string(r.ErrorCode()),
		Detail: r.ErrorDescription(),
	})
}

func writeProblem(c *fiber.Ctx, status int, title, detail string) error {
	return c.Status(status).JSON(dto.ProblemDetails{Status: status, Title: title, Detail: detail})
}
