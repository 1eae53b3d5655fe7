package repository

import (
	"context"

	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// CurrencyRepository defines currency reference data operations.
type CurrencyRepository interface {
	Create(ctx context.Context, currency *model.Currency) error
	FindByID(ctx context.Context, currencyID string) (*model.Currency, error)
	ListActive(ctx context.Context) ([]model.Currency, error)
}

type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository builds a GORM-backed currency repository.
func NewCurrencyRepository(db *gorm.DB) CurrencyRepository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) Create(ctx context.Context, currency *model.Currency) error {
	return r.db.WithContext(ctx).Create(currency).Error
}

func (r *currencyRepository) FindByID(ctx context.Context, currencyID string) (*model.Currency, error) {
	var currency model.Currency
	err := r.db.WithContext(ctx).
		Where("currency_id = ?", currencyID).
		First(&currency).Error
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *currencyRepository) ListActive(ctx context.Context) ([]model.Currency, error) {
	var currencies []model.Currency
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("currency_id ASC").
		Find(&currencies).Error
	if err != nil {
		return nil, err
	}
	return currencies, nil
}
