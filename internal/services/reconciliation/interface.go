package reconciliation

import (
	"context"

	"payment-initiation-backend/internal/models"
)

// AccountStore is the read-only account lookup the reconciler depends on.
// Each lookup returns the number of matching rows and the record when exactly
// one matched.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go AccountStore
type AccountStore interface {
	FindPaymentDetails(ctx context.Context, cardNumber, securityCode string) (int64, *models.PaymentDetails, error)
	FindPersonalAccountByPaymentID(ctx context.Context, paymentID int64) (int64, *models.PersonalAccount, error)
	FindBankDetails(ctx context.Context, accountNumber, sortCode, accountName string) (int64, *models.BankDetails, error)
	FindBusinessAccountByBankAccount(ctx context.Context, bankAccountNumber string) (int64, *models.BusinessAccount, error)
}
