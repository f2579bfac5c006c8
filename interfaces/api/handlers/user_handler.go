package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"task-manager/domain/apperrors"
	"task-manager/domain/models"
	"task-manager/domain/services"
	"task-manager/pkg/logger"
)

// UserHandler responds with bare user JSON, without the task envelope.
type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser answers 200 with the stored user.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return errInvalidBody
	}

	created, err := h.userService.CreateUser(ctx, &user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return apperrors.NewMalformedParameter("id", raw)
	}

	user, err := h.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// GetUserByUserName answers null for an unknown name.
func (h *UserHandler) GetUserByUserName(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByUserName(c.UserContext(), c.Params("userName"))
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(nil)
	}

	return c.JSON(user)
}

// UpdateUser treats a numeric key as an id and anything else as a user name.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	key := c.Params("key")

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "key", key, "error", err)
		return errInvalidBody
	}

	var (
		updated *models.User
		err     error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		updated, err = h.userService.UpdateUserByID(ctx, id, &user)
	} else {
		updated, err = h.userService.UpdateUserByUserName(ctx, key, &user)
	}
	if err != nil {
		return err
	}

	return c.JSON(updated)
}
