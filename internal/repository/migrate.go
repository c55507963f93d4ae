package repository

import (
	"gorm.io/gorm"

	"payment-initiation-backend/internal/models"
)

// AutoMigrate creates or updates every table the service uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PaymentDetails{},
		&models.BankDetails{},
		&models.PersonalAccount{},
		&models.BusinessAccount{},
		&models.Transaction{},
		&models.TransactionEvent{},
	)
}
