package cache

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"tasktracker/internal/config"
	"tasktracker/internal/models"
	"tasktracker/pkg/logger"
)

// Tasks are cached as JSON under task:<id> with no expiry. The cache is
// advisory: every failure here is logged and swallowed, callers always
// have the database as the source of truth.

func taskKey(id int) string {
	return fmt.Sprintf("task:%d", id)
}

// Put overwrites the cache entry for the task.
func Put(task models.Task) {
	jsonData, err := json.Marshal(task)
	if err != nil {
		logger.ErrorLogger.Error("Error encoding task to JSON", zap.Error(err))
		return
	}
	if err := config.RedisClient.Set(config.Ctx, taskKey(task.ID), jsonData, 0).Err(); err != nil {
		logger.ErrorLogger.Error("Error caching task", zap.Int("task_id", task.ID), zap.Error(err))
	}
}

// Get returns the cached task and true on a hit.
func Get(id int) (models.Task, bool) {
	cached, err := config.RedisClient.Get(config.Ctx, taskKey(id)).Result()
	if err != nil {
		return models.Task{}, false
	}
	var task models.Task
	if err := json.Unmarshal([]byte(cached), &task); err != nil {
		logger.ErrorLogger.Error("Error decoding cached task", zap.Int("task_id", id), zap.Error(err))
		return models.Task{}, false
	}
	return task, true
}

// Invalidate drops the cache entry for the task id.
func Invalidate(id int) {
	if err := config.RedisClient.Del(config.Ctx, taskKey(id)).Err(); err != nil {
		logger.ErrorLogger.Error("Error invalidating cached task", zap.Int("task_id", id), zap.Error(err))
	}
}
