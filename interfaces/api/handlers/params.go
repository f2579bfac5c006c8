package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"task-manager/domain/apperrors"
	"task-manager/domain/models"
)

func parseTaskID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewMalformedParameter("id", raw)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter no smaller than minValue.
func queryInt(c *fiber.Ctx, name string, defaultValue, minValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < minValue {
		return 0, apperrors.NewMalformedParameter(name, raw)
	}
	return value, nil
}

// queryDate reads an optional yyyy-MM-dd query parameter. The bool reports presence.
func queryDate(c *fiber.Ctx, name string) (models.Date, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return models.Date{}, false, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, true, apperrors.NewMalformedParameter(name, raw)
	}
	return date, true, nil
}

func queryStatus(c *fiber.Ctx, name string) (models.TaskStatus, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", false, nil
	}
	status, err := models.ParseTaskStatus(raw)
	if err != nil {
		return "", true, apperrors.NewMalformedParameter(name, raw)
	}
	return status, true, nil
}

func parsePageRequest(c *fiber.Ctx) (models.PageRequest, error) {
	page, err := queryInt(c, "page", 0, 0)
	if err != nil {
		return models.PageRequest{}, err
	}
	size, err := queryInt(c, "size", 10, 1)
	if err != nil {
		return models.PageRequest{}, err
	}
	// page*size must fit the row offset
	if page > math.MaxInt/size {
		return models.PageRequest{}, apperrors.NewMalformedParameter("page", c.Query("page"))
	}

	sortBy := models.SortFieldDueDate
	if raw := c.Query("sortBy"); raw != "" {
		if sortBy, err = models.ParseSortField(raw); err != nil {
			return models.PageRequest{}, apperrors.NewMalformedParameter("sortBy", raw)
		}
	}

	direction := models.DirectionAsc
	if raw := c.Query("direction"); raw != "" {
		if direction, err = models.ParseDirection(raw); err != nil {
			return models.PageRequest{}, apperrors.NewMalformedParameter("direction", raw)
		}
	}

	return models.PageRequest{Page: page, Size: size, SortBy: sortBy, Direction: direction}, nil
}

// errInvalidBody is returned for request bodies that are not valid JSON.
var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
