package repository

import (
	"context"

	"gorm.io/gorm"

	"payment-initiation-backend/internal/models"
)

// AccountRepository reads accounts and payment instruments. It never writes.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindPaymentDetails looks up the card instrument for a (card number, CVV) pair.
func (r *AccountRepository) FindPaymentDetails(ctx context.Context, cardNumber, securityCode string) (int64, *models.PaymentDetails, error) {
	return findOne[models.PaymentDetails](r.db.WithContext(ctx).
		Where("card_number = ? AND security_code = ?", cardNumber, securityCode))
}

// FindPersonalAccountByPaymentID resolves the personal account owning an instrument.
func (r *AccountRepository) FindPersonalAccountByPaymentID(ctx context.Context, paymentID int64) (int64, *models.PersonalAccount, error) {
	return findOne[models.PersonalAccount](r.db.WithContext(ctx).
		Where("payment_details_id = ?", paymentID))
}

// FindBankDetails looks up bank details by the full (account number, sort code, holder name) triple.
func (r *AccountRepository) FindBankDetails(ctx context.Context, accountNumber, sortCode, accountName string) (int64, *models.BankDetails, error) {
	return findOne[models.BankDetails](r.db.WithContext(ctx).
		Where("account_number = ? AND sort_code = ? AND account_name = ?", accountNumber, sortCode, accountName))
}

// FindBusinessAccountByBankAccount resolves the business account owning a bank account.
func (r *AccountRepository) FindBusinessAccountByBankAccount(ctx context.Context, bankAccountNumber string) (int64, *models.BusinessAccount, error) {
	return findOne[models.BusinessAccount](r.db.WithContext(ctx).
		Where("bank_details_account_number = ?", bankAccountNumber))
}

// findOne returns how many rows match (capped at 2) and the record when there
// is exactly one.
func findOne[T any](query *gorm.DB) (int64, *T, error) {
	var rows []T
	if err := query.Limit(2).Find(&rows).Error; err != nil {
		return 0, nil, err
	}
	if len(rows) != 1 {
		return int64(len(rows)), nil, nil
	}
	return 1, &rows[0], nil
}
