package models

import "time"

// PaymentDetails is a stored card instrument. Looked up by (CardNumber, SecurityCode).
type PaymentDetails struct {
	PaymentID    int64     `gorm:"primaryKey;autoIncrement:false"`
	CardNumber   string    `gorm:"index:idx_card_lookup"`
	SecurityCode string    `gorm:"index:idx_card_lookup"`
	ExpiryDate   time.Time `gorm:"type:date"`
}

// BankDetails is a stored bank account. Looked up by (AccountNumber, SortCode, AccountName).
type BankDetails struct {
	AccountNumber string `gorm:"primaryKey"`
	SortCode      string `gorm:"index"`
	AccountName   string
}

type PersonalAccount struct {
	AccountNumber            int64  `gorm:"primaryKey;autoIncrement:false"`
	PaymentDetailsID         int64  `gorm:"index"`
	BankDetailsAccountNumber string `gorm:"uniqueIndex"`
	Email                    string
	FullName                 string
	PhoneNumber              string
	PasswordHash             string
	CreatedAt                time.Time
}

type BusinessAccount struct {
	AccountNumber            int64  `gorm:"primaryKey;autoIncrement:false"`
	PaymentDetailsID         *int64 `gorm:"index"`
	BankDetailsAccountNumber string `gorm:"uniqueIndex"`
	BusinessNumber           int64
	BusinessName             string
	BusinessEmail            string
	BusinessPhoneNumber      string
	CreatedAt                time.Time
}
