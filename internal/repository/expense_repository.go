package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// ExpenseFilter narrows an expense listing. Category is an exact match
// against the stored (normalized) value when non-empty. Limit of zero means
// the repository default.
type ExpenseFilter struct {
	Category string
	Offset   int
	Limit    int
}

// ExpenseRepository defines expense persistence operations scoped by owner.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	Update(ctx context.Context, expense *model.Expense) error
	FindByOwnerAndID(ctx context.Context, ownerID uint, id uuid.UUID) (*model.Expense, error)
	ListByOwner(ctx context.Context, ownerID uint, filter ExpenseFilter) ([]model.Expense, error)
	Delete(ctx context.Context, ownerID uint, id uuid.UUID) (int64, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository builds a GORM-backed expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) FindByOwnerAndID(ctx context.Context, ownerID uint, id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListByOwner returns the owner's expenses in creation order.
func (r *expenseRepository) ListByOwner(ctx context.Context, ownerID uint, filter ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var expenses []model.Expense
	if err := q.Order("created_at ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, ownerID uint, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&model.Expense{})
	return res.RowsAffected, res.Error
}
