package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"spendtrack/internal/errors"
	"spendtrack/internal/model"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, ownerID, id uint) (int64, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestTaskService_CreateSetsOwner(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.UserID == 7 && task.Title == "Buy milk"
	})).Return(nil)

	svc := NewTaskService(repo)
	task, err := svc.Create(context.Background(), 7, "Buy milk", "2 liters")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), task.UserID)
	assert.Equal(t, "Buy milk", task.Title)
	repo.AssertExpectations(t)
}

func TestTaskService_GetScopedToOwner(t *testing.T) {
	repo := new(MockTaskRepository)
	// the task exists but belongs to another user; the repository query
	// includes the owner, so the row never comes back
	repo.On("FindByOwnerAndID", mock.Anything, uint(8), uint(1)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTaskService(repo)
	_, err := svc.Get(context.Background(), 8, 1)

	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
	repo.AssertExpectations(t)
}

func TestTaskService_ListEmpty(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("ListByOwner", mock.Anything, uint(7)).Return(nil, nil)

	svc := NewTaskService(repo)
	tasks, err := svc.List(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_UpdatePartial(t *testing.T) {
	existing := &model.Task{ID: 1, UserID: 7, Title: "Buy milk", Description: "2 liters"}

	repo := new(MockTaskRepository)
	repo.On("FindByOwnerAndID", mock.Anything, uint(7), uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	title := "Buy oat milk"
	svc := NewTaskService(repo)
	task, err := svc.Update(context.Background(), 7, 1, TaskUpdate{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "Buy oat milk", task.Title)
	assert.Equal(t, "2 liters", task.Description)
	repo.AssertExpectations(t)
}

func TestTaskService_DeleteNotFound(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("Delete", mock.Anything, uint(7), uint(99)).Return(int64(0), nil)

	svc := NewTaskService(repo)
	err := svc.Delete(context.Background(), 7, 99)

	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
	repo.AssertExpectations(t)
}

func TestTaskService_Delete(t *testing.T) {
	repo := new(MockTaskRepository)
	repo.On("Delete", mock.Anything, uint(7), uint(1)).Return(int64(1), nil)

	svc := NewTaskService(repo)
	assert.NoError(t, svc.Delete(context.Background(), 7, 1))
	repo.AssertExpectations(t)
}
