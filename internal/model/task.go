package model

// Task represents a task record owned by a user. Description is nullable
// in the schema, hence the pointer.
type Task struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// TaskRequest represents the body of a task create or update request.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// CreateTaskResponse carries the id assigned to a newly created task.
type CreateTaskResponse struct {
	ID int64 `json:"id"`
}

// UpdateTaskResponse reports how many rows an update touched (0 or 1).
type UpdateTaskResponse struct {
	Changes int64 `json:"changes"`
}

// DeleteTaskResponse reports how many rows a delete removed (0 or 1).
type DeleteTaskResponse struct {
	Deleted int64 `json:"deleted"`
}
