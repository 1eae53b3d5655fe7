package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// TaskUpdate carries the fields of a task update. Nil fields are left
// unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// TaskService exposes owner-scoped task operations.
type TaskService interface {
	Create(ctx context.Context, ownerID uint, title, description string) (*model.Task, error)
	List(ctx context.Context, ownerID uint) ([]model.Task, error)
	Get(ctx context.Context, ownerID, id uint) (*model.Task, error)
	Update(ctx context.Context, ownerID, id uint, update TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, ownerID uint, title, description string) (*model.Task, error) {
	task := &model.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, ownerID uint) ([]model.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	task, err := s.repo.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, ownerID, id uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, id uint) error {
	affected, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return errors.ErrTaskNotFound
	}
	return nil
}
