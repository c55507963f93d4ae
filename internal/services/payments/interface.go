package payments

import (
	"context"

	"github.com/shopspring/decimal"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/clients/currency"
	"payment-initiation-backend/internal/clients/network"
	"payment-initiation-backend/internal/models"
	"payment-initiation-backend/internal/services/ledger"
	"payment-initiation-backend/internal/services/reconciliation"
	"payment-initiation-backend/internal/validation"
)

//go:generate mockgen -destination=mocks/mock_payments.go -source=interface.go

type AccountReconciler interface {
	ReconcilePayer(ctx context.Context, req validation.PaymentRequest) (reconciliation.Payer, *apierror.Error)
	ReconcilePayee(ctx context.Context, req validation.PaymentRequest) (reconciliation.Payee, *apierror.Error)
}

type CurrencyConverter interface {
	Convert(ctx context.Context, req currency.Request) (decimal.Decimal, error)
}

type PaymentNetwork interface {
	Authorize(ctx context.Context, p network.Payment) (string, error)
	Refund(ctx context.Context, r network.Refund) (string, error)
}

type TransactionLedger interface {
	Lookup(ctx context.Context, id string) (*models.Transaction, *apierror.Error)
	EnsureRefundable(ctx context.Context, txn *models.Transaction) *apierror.Error
	EnsureCancellable(ctx context.Context, txn *models.Transaction) *apierror.Error
	RecordPayment(ctx context.Context, p ledger.Payment) (*models.Transaction, *apierror.Error)
	RecordRefund(ctx context.Context, original *models.Transaction, refundID string) (*models.Transaction, *apierror.Error)
	Cancel(ctx context.Context, txn *models.Transaction) *apierror.Error
}
