package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"spendtrack/internal/cache"
	"spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindByOwnerAndID(ctx context.Context, ownerID uint, id uuid.UUID) (*model.Expense, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListByOwner(ctx context.Context, ownerID uint, filter repository.ExpenseFilter) ([]model.Expense, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, ownerID uint, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCurrencyRepository is a mock implementation of CurrencyRepository.
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) Create(ctx context.Context, currency *model.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindByID(ctx context.Context, currencyID string) (*model.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListActive(ctx context.Context) ([]model.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Currency), args.Error(1)
}

// noCache is a nil cache client; the wrapper is nil-safe and behaves like a
// permanent miss.
var noCache *cache.Client

func TestExpenseService_CreateNormalizes(t *testing.T) {
	repo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)

	currencyRepo.On("FindByID", mock.Anything, "INR").Return(&model.Currency{CurrencyID: "INR", Name: "Indian Rupee", IsActive: true}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Expense) bool {
		return e.UserID == 7 && e.Category == "food" && e.Vendor == "McDonald's" && e.CurrencyID == "INR"
	})).Return(nil)

	svc := NewExpenseService(repo, currencyRepo, noCache)
	expense, err := svc.Create(context.Background(), 7, ExpenseInput{
		Amount:   decimal.NewFromFloat(25.50),
		Category: "  FOOD  ",
		Vendor:   "  McDonald's  ",
		Currency: "inr",
	})

	assert.NoError(t, err)
	assert.Equal(t, "food", expense.Category)
	assert.Equal(t, "McDonald's", expense.Vendor)
	assert.Equal(t, "INR", expense.CurrencyID)
	repo.AssertExpectations(t)
	currencyRepo.AssertExpectations(t)
}

func TestExpenseService_CreateUnknownCurrency(t *testing.T) {
	repo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)
	currencyRepo.On("FindByID", mock.Anything, "XXX").Return(nil, gorm.ErrRecordNotFound)

	svc := NewExpenseService(repo, currencyRepo, noCache)
	_, err := svc.Create(context.Background(), 7, ExpenseInput{
		Amount:   decimal.NewFromInt(10),
		Category: "food",
		Vendor:   "Swiggy",
		Currency: "XXX",
	})

	assert.ErrorIs(t, err, errors.ErrUnknownCurrency)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExpenseService_ListFilterAndBounds(t *testing.T) {
	repo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)

	// category normalized, limit clamped to the default, offset floored at 0
	repo.On("ListByOwner", mock.Anything, uint(7), repository.ExpenseFilter{
		Category: "food",
		Offset:   0,
		Limit:    100,
	}).Return([]model.Expense{{UserID: 7, Category: "food"}}, nil)

	svc := NewExpenseService(repo, currencyRepo, noCache)
	expenses, err := svc.List(context.Background(), 7, " Food ", -5, 500)

	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	repo.AssertExpectations(t)
}

func TestExpenseService_GetScopedToOwner(t *testing.T) {
	id := uuid.New()
	repo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)
	repo.On("FindByOwnerAndID", mock.Anything, uint(8), id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewExpenseService(repo, currencyRepo, noCache)
	_, err := svc.Get(context.Background(), 8, id)

	assert.ErrorIs(t, err, errors.ErrExpenseNotFound)
}

func TestExpenseService_UpdatePartial(t *testing.T) {
	id := uuid.New()
	existing := &model.Expense{
		ID:         id,
		UserID:     7,
		Amount:     decimal.NewFromInt(10),
		Category:   "food",
		Vendor:     "Swiggy",
		CurrencyID: "INR",
	}

	repo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)
	repo.On("FindByOwnerAndID", mock.Anything, uint(7), id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)

	amount := decimal.NewFromFloat(12.75)
	svc := NewExpenseService(repo, currencyRepo, noCache)
	expense, err := svc.Update(context.Background(), 7, id, ExpenseUpdate{Amount: &amount})

	assert.NoError(t, err)
	assert.True(t, expense.Amount.Equal(amount))
	assert.Equal(t, "food", expense.Category)
	assert.Equal(t, "INR", expense.CurrencyID)
	repo.AssertExpectations(t)
}

func TestExpenseService_DeleteNotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockExpenseRepository)
	currencyRepo := new(MockCurrencyRepository)
	repo.On("Delete", mock.Anything, uint(7), id).Return(int64(0), nil)

	svc := NewExpenseService(repo, currencyRepo, noCache)
	err := svc.Delete(context.Background(), 7, id)

	assert.ErrorIs(t, err, errors.ErrExpenseNotFound)
}

func TestCurrencyService_CreateDuplicate(t *testing.T) {
	currencyRepo := new(MockCurrencyRepository)
	currencyRepo.On("FindByID", mock.Anything, "USD").Return(&model.Currency{CurrencyID: "USD"}, nil)

	svc := NewCurrencyService(currencyRepo, noCache)
	_, err := svc.Create(context.Background(), "usd", "US Dollar", true)

	assert.ErrorIs(t, err, errors.ErrCurrencyExists)
	currencyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCurrencyService_CreateUppercasesCode(t *testing.T) {
	currencyRepo := new(MockCurrencyRepository)
	currencyRepo.On("FindByID", mock.Anything, "EUR").Return(nil, gorm.ErrRecordNotFound)
	currencyRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Currency) bool {
		return c.CurrencyID == "EUR" && c.IsActive
	})).Return(nil)

	svc := NewCurrencyService(currencyRepo, noCache)
	currency, err := svc.Create(context.Background(), " eur ", "Euro", true)

	assert.NoError(t, err)
	assert.Equal(t, "EUR", currency.CurrencyID)
	currencyRepo.AssertExpectations(t)
}
