package repository

import (
	"database/sql"

	"tasktracker/internal/models"
)

// TaskPatch carries a partial update. Nil fields leave the stored
// column untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

func CreateTask(db *sql.DB, title string, description *string, completed bool) (models.Task, error) {
	var task models.Task
	err := db.QueryRow(
		"INSERT INTO tasks (title, description, completed) VALUES ($1, $2, $3) RETURNING id, title, description, completed",
		title, description, completed,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Completed)
	return task, err
}

func GetTask(db *sql.DB, id int) (models.Task, error) {
	var task models.Task
	err := db.QueryRow(
		"SELECT id, title, description, completed FROM tasks WHERE id = $1",
		id,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Completed)
	return task, err
}

func ListTasks(db *sql.DB, limit int) ([]models.Task, error) {
	rows, err := db.Query(
		"SELECT id, title, description, completed FROM tasks ORDER BY id LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// UpdateTask merges the patch into the stored row in a single statement,
// so concurrent updates to the same id stay row-atomic. COALESCE with
// typed pointer arguments keeps absent fields as they are, including an
// explicit completed=false.
func UpdateTask(db *sql.DB, id int, patch TaskPatch) (models.Task, error) {
	var task models.Task
	err := db.QueryRow(`
		UPDATE tasks
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			completed = COALESCE($3, completed)
		WHERE id = $4
		RETURNING id, title, description, completed`,
		patch.Title, patch.Description, patch.Completed, id,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Completed)
	return task, err
}

// DeleteTask removes the row and returns it as it existed before deletion.
func DeleteTask(db *sql.DB, id int) (models.Task, error) {
	var task models.Task
	err := db.QueryRow(
		"DELETE FROM tasks WHERE id = $1 RETURNING id, title, description, completed",
		id,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Completed)
	return task, err
}
