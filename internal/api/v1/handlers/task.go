package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktracker/internal/cache"
	"tasktracker/internal/config"
	"tasktracker/internal/repository"
	"tasktracker/pkg/logger"
	"tasktracker/pkg/sanitize"
)

// Task handlers

func CreateTask(c *fiber.Ctx) error {
	type TaskRequest struct {
		Title       string  `json:"title" validate:"required,max=255"`
		Description *string `json:"description" validate:"omitempty,max=500"`
		Completed   bool    `json:"completed"`
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	// Strip injected markup before length validation, so the stored
	// value is the one that gets checked.
	req.Title = sanitize.Clean(req.Title)
	req.Description = sanitize.CleanPtr(req.Description)

	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	task, err := repository.CreateTask(config.DB, req.Title, req.Description, req.Completed)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating task",
			"success": false,
			"status":  500,
		})
	}

	cache.Put(task)
	config.Hub.Publish("created", task)

	logger.AuditLogger.Info("Task created successfully", zap.Int("task_id", task.ID))
	return c.JSON(task)
}

func GetTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid task ID",
			"success": false,
			"status":  400,
		})
	}

	// Cache first, database on a miss.
	if task, ok := cache.Get(taskID); ok {
		logger.AuditLogger.Info("Task found (from cache)", zap.Int("task_id", taskID))
		return c.JSON(task)
	}

	task, err := repository.GetTask(config.DB, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Task not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error fetching task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching task",
			"success": false,
			"status":  500,
		})
	}

	cache.Put(task)

	logger.AuditLogger.Info("Task found", zap.Int("task_id", taskID))
	return c.JSON(task)
}

func UpdateTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid task ID",
			"success": false,
			"status":  400,
		})
	}

	// Pointer fields distinguish absent from zero: only supplied
	// fields overwrite the stored row.
	type UpdateTaskRequest struct {
		Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
		Description *string `json:"description" validate:"omitempty,max=500"`
		Completed   *bool   `json:"completed"`
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	req.Title = sanitize.CleanPtr(req.Title)
	req.Description = sanitize.CleanPtr(req.Description)

	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in update task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	task, err := repository.UpdateTask(config.DB, taskID, repository.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Task not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error updating task",
			"success": false,
			"status":  500,
		})
	}

	cache.Put(task)
	config.Hub.Publish("updated", task)

	logger.AuditLogger.Info("Task updated", zap.Int("task_id", taskID))
	return c.JSON(task)
}

func DeleteTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid task ID",
			"success": false,
			"status":  400,
		})
	}

	task, err := repository.DeleteTask(config.DB, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{
				"message": "Task not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error deleting task",
			"success": false,
			"status":  500,
		})
	}

	cache.Invalidate(taskID)
	config.Hub.Publish("deleted", task)

	logger.AuditLogger.Info("Task deleted", zap.Int("task_id", taskID))
	return c.JSON(task)
}

func ListTasks(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid limit",
			"success": false,
			"status":  400,
		})
	}

	tasks, err := repository.ListTasks(config.DB, limit)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error fetching tasks",
			"success": false,
			"status":  500,
		})
	}

	if len(tasks) == 0 {
		return c.Status(404).JSON(fiber.Map{
			"message": "No tasks found",
			"success": false,
			"status":  404,
		})
	}

	// Lists bypass the cache on read but still refresh the entries
	// they resolved.
	for _, task := range tasks {
		cache.Put(task)
	}

	logger.AuditLogger.Info("Tasks fetched successfully", zap.Int("count", len(tasks)))
	return c.JSON(tasks)
}
