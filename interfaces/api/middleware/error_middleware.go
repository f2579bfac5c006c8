package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-manager/domain/apperrors"
	"task-manager/pkg/logger"
	"task-manager/pkg/utils"
)

// ErrorHandler maps every error returned by a handler to an error body.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			notFound    *apperrors.NotFoundError
			emptyResult *apperrors.EmptyResultError
			validation  *apperrors.ValidationError
			malformed   *apperrors.MalformedParameterError
			fiberErr    *fiber.Error
		)

		switch {
		case errors.As(err, &notFound):
			return utils.NotFoundResponse(c, notFound.Message)
		case errors.As(err, &emptyResult):
			return utils.NotFoundResponse(c, emptyResult.Message)
		case errors.As(err, &validation):
			return utils.BadRequestResponse(c, validation.Error())
		case errors.As(err, &malformed):
			return utils.BadRequestResponse(c, malformed.Error())
		case errors.As(err, &fiberErr):
			if fiberErr.Code >= fiber.StatusInternalServerError {
				logger.ErrorContext(c.UserContext(), "Request failed", "path", c.Path(), "error", err)
			}
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
