package repository

import (
	"context"
	"database/sql"

	"github.com/tasknest/tasknest-go/internal/model"
)

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and sets the generated ID on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (user_id, title, description, completed) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, task.UserID, task.Title, task.Description, task.Completed)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListByOwner retrieves all tasks belonging to a user in storage order.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	query := `SELECT id, user_id, title, description, completed FROM tasks WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update replaces the title, description and completed flag of a task owned
// by ownerID. Returns the number of rows changed: 0 when no task with that
// id belongs to the owner, 1 otherwise.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID int64, title string, description *string, completed bool) (int64, error) {
	query := `UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, title, description, completed, taskID, ownerID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// Delete removes a task owned by ownerID. Returns the number of rows
// deleted: 0 when no task with that id belongs to the owner, 1 otherwise.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) (int64, error) {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
