package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/cache"
	"spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

const (
	expenseCacheTTL     = 5 * time.Minute
	defaultExpenseLimit = 100
	maxExpenseLimit     = 100
)

// ExpenseInput carries the fields of an expense create request.
type ExpenseInput struct {
	Amount   decimal.Decimal
	Category string
	Vendor   string
	Currency string
}

// ExpenseUpdate carries the fields of an expense update. Nil fields are left
// unchanged.
type ExpenseUpdate struct {
	Amount   *decimal.Decimal
	Category *string
	Vendor   *string
	Currency *string
}

// ExpenseService exposes owner-scoped expense operations.
type ExpenseService interface {
	Create(ctx context.Context, ownerID uint, input ExpenseInput) (*model.Expense, error)
	List(ctx context.Context, ownerID uint, category string, offset, limit int) ([]model.Expense, error)
	Get(ctx context.Context, ownerID uint, id uuid.UUID) (*model.Expense, error)
	Update(ctx context.Context, ownerID uint, id uuid.UUID, update ExpenseUpdate) (*model.Expense, error)
	Delete(ctx context.Context, ownerID uint, id uuid.UUID) error
}

type expenseService struct {
	repo         repository.ExpenseRepository
	currencyRepo repository.CurrencyRepository
	cache        *cache.Client
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo repository.ExpenseRepository, currencyRepo repository.CurrencyRepository, cache *cache.Client) ExpenseService {
	return &expenseService{
		repo:         repo,
		currencyRepo: currencyRepo,
		cache:        cache,
	}
}

func (s *expenseService) cacheKey(ownerID uint) string {
	return fmt.Sprintf("expenses:user:%d", ownerID)
}

// normalizeCategory lowers and trims a category so the filter predicate is an
// exact match.
func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// checkCurrency verifies the referenced currency code exists.
func (s *expenseService) checkCurrency(ctx context.Context, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := s.currencyRepo.FindByID(ctx, code); err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrUnknownCurrency
		}
		return "", fmt.Errorf("check currency: %w", err)
	}
	return code, nil
}

func (s *expenseService) Create(ctx context.Context, ownerID uint, input ExpenseInput) (*model.Expense, error) {
	currencyID, err := s.checkCurrency(ctx, input.Currency)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		UserID:     ownerID,
		Amount:     input.Amount,
		Category:   normalizeCategory(input.Category),
		Vendor:     strings.TrimSpace(input.Vendor),
		CurrencyID: currencyID,
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return expense, nil
}

// List returns the owner's expenses in creation order. The unfiltered first
// page is served from cache when possible.
func (s *expenseService) List(ctx context.Context, ownerID uint, category string, offset, limit int) ([]model.Expense, error) {
	if limit <= 0 || limit > maxExpenseLimit {
		limit = defaultExpenseLimit
	}
	if offset < 0 {
		offset = 0
	}
	category = normalizeCategory(category)

	cacheable := category == "" && offset == 0 && limit == defaultExpenseLimit
	if cacheable {
		if data, _ := s.cache.Get(ctx, s.cacheKey(ownerID)); data != nil {
			var cached []model.Expense
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	expenses, err := s.repo.ListByOwner(ctx, ownerID, repository.ExpenseFilter{
		Category: category,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	if cacheable {
		if payload, err := json.Marshal(expenses); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(ownerID), payload, expenseCacheTTL)
		}
	}

	return expenses, nil
}

func (s *expenseService) Get(ctx context.Context, ownerID uint, id uuid.UUID) (*model.Expense, error) {
	expense, err := s.repo.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return expense, nil
}

// Update applies a partial update to an expense owned by the caller.
func (s *expenseService) Update(ctx context.Context, ownerID uint, id uuid.UUID, update ExpenseUpdate) (*model.Expense, error) {
	expense, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	if update.Category != nil {
		expense.Category = normalizeCategory(*update.Category)
	}
	if update.Vendor != nil {
		expense.Vendor = strings.TrimSpace(*update.Vendor)
	}
	if update.Currency != nil {
		currencyID, err := s.checkCurrency(ctx, *update.Currency)
		if err != nil {
			return nil, err
		}
		expense.CurrencyID = currencyID
	}

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, ownerID uint, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if affected == 0 {
		return errors.ErrExpenseNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return nil
}
