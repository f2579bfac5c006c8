package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"task-manager/domain/apperrors"
	"task-manager/domain/models"
	"task-manager/domain/services"
	"task-manager/pkg/logger"
	"task-manager/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask answers 201 with the stored task.
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var task models.Task
	if err := c.BodyParser(&task); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return errInvalidBody
	}

	created, err := h.taskService.CreateTask(ctx, &task)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, fmt.Sprintf("Task with ID %d created successfully", created.ID), created)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTaskByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fmt.Sprintf("Task with ID %d found successfully", id), task)
}

// UpdateTask replaces the whole task; omitted fields become empty.
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var task models.Task
	if err := c.BodyParser(&task); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "task_id", id, "error", err)
		return errInvalidBody
	}

	updated, err := h.taskService.UpdateTask(ctx, id, &task)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fmt.Sprintf("Task with ID %d updated successfully", id), updated)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	result, err := h.taskService.DeleteTask(c.UserContext(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fmt.Sprintf("Task with ID %d deleted successfully", id), result)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.GetAllTasks(c.UserContext())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, "Tasks retrieved successfully", tasks)
}

// ListTasksPaginated defaults to page 0, size 10, sorted by dueDate ascending.
func (h *TaskHandler) ListTasksPaginated(c *fiber.Ctx) error {
	page, err := parsePageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.taskService.GetTasksPage(c.UserContext(), page)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, "Success", result)
}

// FilterTasks picks the query from whichever of status and dueDate are present.
func (h *TaskHandler) FilterTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status, hasStatus, err := queryStatus(c, "status")
	if err != nil {
		return err
	}
	dueDate, hasDueDate, err := queryDate(c, "dueDate")
	if err != nil {
		return err
	}

	var (
		tasks   []*models.Task
		message string
	)
	switch {
	case hasStatus && hasDueDate:
		tasks, err = h.taskService.FilterByStatusAndDueDate(ctx, status, dueDate)
		message = "Tasks filtered by status and due date"
	case hasStatus:
		tasks, err = h.taskService.FilterByStatus(ctx, status)
		message = "Tasks filtered by status"
	case hasDueDate:
		tasks, err = h.taskService.FilterByDueDate(ctx, dueDate)
		message = "Tasks filtered by due date"
	default:
		tasks, err = h.taskService.GetAllTasks(ctx)
		message = "No filters applied"
	}
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, message, tasks)
}

// TasksTillDate requires dueDate.
func (h *TaskHandler) TasksTillDate(c *fiber.Ctx) error {
	dueDate, ok, err := queryDate(c, "dueDate")
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewMissingParameter("dueDate")
	}

	tasks, err := h.taskService.GetTasksTillDate(c.UserContext(), dueDate)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fmt.Sprintf("Tasks with due date till %s retrieved successfully", dueDate), tasks)
}

// HelloWorld is a liveness probe kept from the first API version.
func (h *TaskHandler) HelloWorld(c *fiber.Ctx) error {
	return c.SendString("Hello, World!")
}
