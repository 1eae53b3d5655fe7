package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spendtrack/internal/errors"
	"spendtrack/internal/service"
)

// CurrencyHandler handles currency reference data endpoints.
type CurrencyHandler struct {
	currencyService service.CurrencyService
}

// NewCurrencyHandler creates a new currency handler.
func NewCurrencyHandler(currencyService service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// CreateCurrencyRequest represents a currency creation request.
type CreateCurrencyRequest struct {
	CurrencyID string `json:"currency_id" validate:"required,len=3,alpha"`
	Name       string `json:"name" validate:"required,max=255"`
	IsActive   *bool  `json:"is_active"`
}

// List godoc
// @Summary List active currencies
// @Tags currencies
// @Produce json
// @Success 200 {array} model.Currency
// @Router /currencies/ [get]
func (h *CurrencyHandler) List(c echo.Context) error {
	currencies, err := h.currencyService.ListActive(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, currencies)
}

// Create godoc
// @Summary Register a currency
// @Tags currencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCurrencyRequest true "Currency data"
// @Success 201 {object} model.Currency
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /currencies/ [post]
func (h *CurrencyHandler) Create(c echo.Context) error {
	var req CreateCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	currency, err := h.currencyService.Create(c.Request().Context(), req.CurrencyID, req.Name, isActive)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, currency)
}
