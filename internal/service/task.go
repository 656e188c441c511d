package service

import (
	"context"
	"errors"

	"github.com/tasknest/tasknest-go/internal/model"
	"github.com/tasknest/tasknest-go/internal/repository"
)

var ErrTitleRequired = errors.New("title is required")

// TaskService handles task business logic. Every operation is scoped to the
// authenticated owner; a task id belonging to another user behaves exactly
// like an absent id.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create stores a new task for the owner and returns its assigned id.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.TaskRequest) (model.CreateTaskResponse, error) {
	if req.Title == "" {
		return model.CreateTaskResponse{}, ErrTitleRequired
	}

	task := &model.Task{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return model.CreateTaskResponse{}, err
	}

	return model.CreateTaskResponse{ID: task.ID}, nil
}

// List returns all tasks belonging to the owner.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]model.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Update replaces the mutable fields of an owned task and reports the
// number of rows changed (0 when the id does not exist for this owner).
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, req model.TaskRequest) (model.UpdateTaskResponse, error) {
	if req.Title == "" {
		return model.UpdateTaskResponse{}, ErrTitleRequired
	}

	changes, err := s.repo.Update(ctx, ownerID, taskID, req.Title, req.Description, req.Completed)
	if err != nil {
		return model.UpdateTaskResponse{}, err
	}

	return model.UpdateTaskResponse{Changes: changes}, nil
}

// Delete removes an owned task and reports the number of rows deleted.
// Deleting an absent id yields a zero count, not an error.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) (model.DeleteTaskResponse, error) {
	deleted, err := s.repo.Delete(ctx, ownerID, taskID)
	if err != nil {
		return model.DeleteTaskResponse{}, err
	}

	return model.DeleteTaskResponse{Deleted: deleted}, nil
}
