package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"spendtrack/internal/cache"
	"spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

const (
	currencyCacheTTL = 5 * time.Minute
	currencyCacheKey = "currencies:active"
)

// CurrencyService exposes currency reference data operations.
type CurrencyService interface {
	ListActive(ctx context.Context) ([]model.Currency, error)
	Create(ctx context.Context, currencyID, name string, isActive bool) (*model.Currency, error)
}

type currencyService struct {
	repo  repository.CurrencyRepository
	cache *cache.Client
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(repo repository.CurrencyRepository, cache *cache.Client) CurrencyService {
	return &currencyService{repo: repo, cache: cache}
}

// ListActive returns all active currencies with caching.
func (s *currencyService) ListActive(ctx context.Context) ([]model.Currency, error) {
	if data, _ := s.cache.Get(ctx, currencyCacheKey); data != nil {
		var cached []model.Currency
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	currencies, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []model.Currency{}
	}

	if payload, err := json.Marshal(currencies); err == nil {
		_ = s.cache.Set(ctx, currencyCacheKey, payload, currencyCacheTTL)
	}

	return currencies, nil
}

// Create registers a new currency code.
func (s *currencyService) Create(ctx context.Context, currencyID, name string, isActive bool) (*model.Currency, error) {
	currencyID = strings.ToUpper(strings.TrimSpace(currencyID))

	existing, err := s.repo.FindByID(ctx, currencyID)
	if err == nil && existing != nil {
		return nil, errors.ErrCurrencyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check currency existence: %w", err)
	}

	currency := &model.Currency{
		CurrencyID: currencyID,
		Name:       name,
		IsActive:   isActive,
	}
	if err := s.repo.Create(ctx, currency); err != nil {
		return nil, errors.ErrCurrencyExists
	}

	_ = s.cache.Delete(ctx, currencyCacheKey)
	return currency, nil
}
