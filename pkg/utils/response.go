package utils

import (
	"github.com/gofiber/fiber/v2"

	"task-manager/domain/dto"
)

// ========== Success Responses ==========

// SuccessResponse writes 200 with the success envelope.
func SuccessResponse(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Message: message,
		Data:    data,
		Success: true,
	})
}

// CreatedResponse writes 201 with the success envelope.
func CreatedResponse(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{
		Message: message,
		Data:    data,
		Success: true,
	})
}

// ========== Error Responses ==========

// ErrorResponse writes {status, message} with statusCode.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(dto.ErrorResponse{
		Status:  statusCode,
		Message: message,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func TooManyRequestsResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusTooManyRequests, "Too many requests")
}

// InternalServerErrorResponse prefixes message with a generic explanation.
func InternalServerErrorResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "An unexpected error occurred "+message)
}
