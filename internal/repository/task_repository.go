package repository

import (
	"context"

	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// TaskRepository defines task persistence operations. Every lookup is keyed
// by owner as well as id, so a row belonging to another user behaves exactly
// like a missing row.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*model.Task, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error)
	Delete(ctx context.Context, ownerID, id uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Delete removes the task and reports the number of affected rows so the
// service can distinguish a no-op from a successful delete.
func (r *taskRepository) Delete(ctx context.Context, ownerID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&model.Task{})
	return res.RowsAffected, res.Error
}
