package model

// Currency represents an ISO 4217 currency. The code itself is the primary
// key since it is globally unique and human-readable.
type Currency struct {
	CurrencyID string `json:"currency_id" gorm:"type:char(3);primaryKey"`
	Name       string `json:"name" gorm:"size:255;not null"`
	IsActive   bool   `json:"is_active" gorm:"default:true;index"`
}
