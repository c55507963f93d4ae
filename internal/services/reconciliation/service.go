package reconciliation

import (
	"context"
	"log/slog"
	"time"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/validation"
)

// Payer is the stored identity behind a payment request's card.
type Payer struct {
	PaymentID     int64
	AccountNumber int64
}

// Payee is the stored identity behind a payment request's bank details.
type Payee struct {
	BankAccountNumber string
	AccountNumber     int64
}

// Reconciler matches request-supplied identity fields against stored records.
// Any mismatch within a stage is reported as that stage's not-found error so
// the response never reveals which sub-field was wrong.
type Reconciler struct {
	store AccountStore
	log   *slog.Logger
}

func NewReconciler(store AccountStore, log *slog.Logger) *Reconciler {
	return &Reconciler{store: store, log: log}
}

// ReconcilePayer resolves the card instrument and the personal account that owns it.
func (r *Reconciler) ReconcilePayer(ctx context.Context, req validation.PaymentRequest) (Payer, *apierror.Error) {
	count, instrument, err := r.store.FindPaymentDetails(ctx, req.CardNumber, req.CVV)
	if err != nil {
		return Payer{}, apierror.PersistenceFailed(err)
	}
	if count != 1 {
		r.log.InfoContext(ctx, "payer instrument lookup", "matches", count)
		return Payer{}, apierror.PayerInstrumentNotFound()
	}
	if !sameDate(instrument.ExpiryDate, req.Expiry) {
		return Payer{}, apierror.PayerInstrumentNotFound()
	}

	count, account, err := r.store.FindPersonalAccountByPaymentID(ctx, instrument.PaymentID)
	if err != nil {
		return Payer{}, apierror.PersistenceFailed(err)
	}
	if count != 1 {
		r.log.InfoContext(ctx, "payer account lookup", "payment_id", instrument.PaymentID, "matches", count)
		return Payer{}, apierror.PayerAccountNotFound()
	}
	if account.FullName != req.CardHolderName || account.Email != req.Email {
		return Payer{}, apierror.PayerAccountNotFound()
	}

	return Payer{PaymentID: instrument.PaymentID, AccountNumber: account.AccountNumber}, nil
}

// ReconcilePayee resolves the bank details and the business account that owns them.
func (r *Reconciler) ReconcilePayee(ctx context.Context, req validation.PaymentRequest) (Payee, *apierror.Error) {
	count, bank, err := r.store.FindBankDetails(ctx, req.PayeeBankAccNum, req.PayeeBankSortCode, req.RecipientName)
	if err != nil {
		return Payee{}, apierror.PersistenceFailed(err)
	}
	if count != 1 {
		r.log.InfoContext(ctx, "payee bank details lookup", "matches", count)
		return Payee{}, apierror.PayeeBankDetailsNotFound()
	}

	count, business, err := r.store.FindBusinessAccountByBankAccount(ctx, bank.AccountNumber)
	if err != nil {
		return Payee{}, apierror.PersistenceFailed(err)
	}
	if count != 1 || business.BusinessName != req.RecipientName {
		r.log.InfoContext(ctx, "payee account lookup", "matches", count)
		return Payee{}, apierror.PayeeAccountNotFound()
	}

	return Payee{BankAccountNumber: bank.AccountNumber, AccountNumber: business.AccountNumber}, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
