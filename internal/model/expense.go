package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spend record owned by a user. Category is
// stored normalized (trimmed, lower case) so the category filter is an exact
// match.
type Expense struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Category   string          `json:"category" gorm:"size:50;not null;index"`
	Vendor     string          `json:"vendor" gorm:"size:100;not null"`
	CurrencyID string          `json:"currency" gorm:"type:char(3);not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relations
	Currency Currency `json:"-" gorm:"foreignKey:CurrencyID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
