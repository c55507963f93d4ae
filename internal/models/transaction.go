package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusComplete  TransactionStatus = "Complete"
	StatusRefund    TransactionStatus = "Refund"
	StatusCancelled TransactionStatus = "Cancelled"
)

// Transaction is keyed by the identifier the payment network issued.
// A refund is its own row with RefundOf pointing at the original.
type Transaction struct {
	TransactionUUID    string            `gorm:"primaryKey"`
	PayerAccountNumber int64             `gorm:"index"`
	PayeeAccountNumber int64             `gorm:"index"`
	Amount             decimal.Decimal   `gorm:"type:numeric(18,2)"`
	Currency           string            `gorm:"size:3"`
	Date               time.Time         `gorm:"column:transaction_date"`
	Status             TransactionStatus `gorm:"index"`
	RefundOf           *string           `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
