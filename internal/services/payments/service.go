package payments

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/clients/currency"
	"payment-initiation-backend/internal/clients/network"
	"payment-initiation-backend/internal/middleware"
	"payment-initiation-backend/internal/models"
	"payment-initiation-backend/internal/services/ledger"
	"payment-initiation-backend/internal/services/reconciliation"
	"payment-initiation-backend/internal/validation"
)

// amountPlaces is the scale amounts are stored and sent to the network at.
const amountPlaces = 2

const (
	CommentPaymentProcessed = "Transaction processed successfully"
	CommentRefunded         = "Transaction refunded successfully"
	CommentCancelled        = "Transaction cancelled successfully"
)

// Result is the outcome of a successful operation.
type Result struct {
	TransactionUUID string
	Comment         string
}

// Service sequences validation, reconciliation, conversion, network and
// ledger calls for each operation. Every stage short-circuits on its first
// failure and nothing is retried.
type Service struct {
	reconciler AccountReconciler
	converter  CurrencyConverter
	network    PaymentNetwork
	ledger     TransactionLedger
	log        *slog.Logger
	now        func() time.Time
}

func NewService(
	reconciler AccountReconciler,
	converter CurrencyConverter,
	network PaymentNetwork,
	ledger TransactionLedger,
	log *slog.Logger,
) *Service {
	return &Service{
		reconciler: reconciler,
		converter:  converter,
		network:    network,
		ledger:     ledger,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// paymentRun is the per-request state of one payment. Each stage returns a
// new copy; it is never shared between requests.
type paymentRun struct {
	req       validation.PaymentRequest
	payer     reconciliation.Payer
	payee     reconciliation.Payee
	converted decimal.Decimal
	networkID string
}

func (r paymentRun) withPayer(p reconciliation.Payer) paymentRun { r.payer = p; return r }
func (r paymentRun) withPayee(p reconciliation.Payee) paymentRun { r.payee = p; return r }
func (r paymentRun) withConverted(a decimal.Decimal) paymentRun  { r.converted = a; return r }
func (r paymentRun) withNetworkID(id string) paymentRun          { r.networkID = id; return r }

// InitiatePayment validates and reconciles a card-to-bank payment, converts it
// into the payee's currency, authorises it and records a Complete transaction.
func (s *Service) InitiatePayment(ctx context.Context, body validation.Body) (Result, *apierror.Error) {
	log := s.logger(ctx, "initiate_payment")
	log.InfoContext(ctx, "operation started")

	req, apiErr := validation.ValidatePayment(body)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	run := paymentRun{req: req}

	payer, apiErr := s.reconciler.ReconcilePayer(ctx, run.req)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	run = run.withPayer(payer)

	payee, apiErr := s.reconciler.ReconcilePayee(ctx, run.req)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	run = run.withPayee(payee)

	converted, err := s.converter.Convert(ctx, currency.Request{
		From:   run.req.PayerCurrencyCode,
		To:     run.req.PayeeCurrencyCode,
		Date:   s.now(),
		Amount: run.req.Amount,
	})
	if err != nil {
		return s.fail(ctx, log, apierror.CurrencyConversionFailed(err))
	}
	run = run.withConverted(converted.Round(amountPlaces))

	networkID, err := s.network.Authorize(ctx, network.Payment{
		CardNumber:     run.req.CardNumber,
		Expiry:         run.req.Expiry,
		CVV:            run.req.CVV,
		HolderName:     run.req.CardHolderName,
		BillingAddress: run.req.CardHolderAddress,
		Amount:         run.converted,
		CurrencyCode:   run.req.PayeeCurrencyCode,
		AccountNumber:  run.req.PayeeBankAccNum,
		SortCode:       run.req.PayeeBankSortCode,
	})
	if err != nil {
		return s.fail(ctx, log, apierror.PaymentNetworkFailed(err))
	}
	run = run.withNetworkID(networkID)

	// the network has already authorised at this point; a failed write is
	// reported but not reversed with the network
	txn, apiErr := s.ledger.RecordPayment(ctx, ledger.Payment{
		TransactionUUID: run.networkID,
		PayerAccount:    run.payer.AccountNumber,
		PayeeAccount:    run.payee.AccountNumber,
		Amount:          run.converted,
		Currency:        run.req.PayeeCurrencyCode,
	})
	if apiErr != nil {
		return s.fail(ctx, log.With("transaction_uuid", run.networkID), apiErr)
	}

	log.InfoContext(ctx, "operation succeeded", "transaction_uuid", txn.TransactionUUID)
	return Result{TransactionUUID: txn.TransactionUUID, Comment: CommentPaymentProcessed}, nil
}

// InitiateRefund refunds a Complete transaction in full. The refund is
// converted from the requested currency back into the original's currency and
// recorded as a new Refund row.
func (s *Service) InitiateRefund(ctx context.Context, body validation.Body) (Result, *apierror.Error) {
	log := s.logger(ctx, "initiate_refund")
	log.InfoContext(ctx, "operation started")

	req, apiErr := validation.ValidateRefund(body)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	log = log.With("transaction_uuid", req.TransactionUUID)

	original, apiErr := s.refundable(ctx, req.TransactionUUID)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	log.InfoContext(ctx, "refund requested",
		"requested_amount", req.Amount.String(),
		"requested_currency", req.CurrencyCode,
		"original_amount", original.Amount.String(),
		"original_currency", original.Currency,
	)

	converted, err := s.converter.Convert(ctx, currency.Request{
		From:   req.CurrencyCode,
		To:     original.Currency,
		Date:   s.now(),
		Amount: original.Amount,
	})
	if err != nil {
		return s.fail(ctx, log, apierror.CurrencyConversionFailed(err))
	}

	refundID, err := s.network.Refund(ctx, network.Refund{
		TransactionUUID: original.TransactionUUID,
		Amount:          converted.Round(amountPlaces),
		CurrencyCode:    original.Currency,
	})
	if err != nil {
		return s.fail(ctx, log, apierror.RefundNetworkFailed(err))
	}
	// an empty or echoed id cannot key a new row
	if refundID == "" || refundID == original.TransactionUUID {
		refundID = uuid.NewString()
	}

	refund, apiErr := s.ledger.RecordRefund(ctx, original, refundID)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}

	log.InfoContext(ctx, "operation succeeded", "refund_uuid", refund.TransactionUUID)
	return Result{TransactionUUID: refund.TransactionUUID, Comment: CommentRefunded}, nil
}

// InitiateCancellation cancels a Complete transaction in place.
func (s *Service) InitiateCancellation(ctx context.Context, body validation.Body) (Result, *apierror.Error) {
	log := s.logger(ctx, "initiate_cancellation")
	log.InfoContext(ctx, "operation started")

	req, apiErr := validation.ValidateCancellation(body)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	log = log.With("transaction_uuid", req.TransactionUUID)

	txn, apiErr := s.ledger.Lookup(ctx, req.TransactionUUID)
	if apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	if apiErr := s.ledger.EnsureCancellable(ctx, txn); apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}
	if apiErr := s.ledger.Cancel(ctx, txn); apiErr != nil {
		return s.fail(ctx, log, apiErr)
	}

	log.InfoContext(ctx, "operation succeeded")
	return Result{TransactionUUID: txn.TransactionUUID, Comment: CommentCancelled}, nil
}

func (s *Service) refundable(ctx context.Context, id string) (*models.Transaction, *apierror.Error) {
	txn, apiErr := s.ledger.Lookup(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := s.ledger.EnsureRefundable(ctx, txn); apiErr != nil {
		return nil, apiErr
	}
	return txn, nil
}

func (s *Service) logger(ctx context.Context, operation string) *slog.Logger {
	return s.log.With("operation", operation, "request_id", middleware.GetRequestID(ctx))
}

func (s *Service) fail(ctx context.Context, log *slog.Logger, apiErr *apierror.Error) (Result, *apierror.Error) {
	attrs := []any{"error_code", int(apiErr.Code), "comment", apiErr.Comment}
	if cause := apiErr.Unwrap(); cause != nil {
		attrs = append(attrs, "cause", cause.Error())
	}
	log.WarnContext(ctx, "operation failed", attrs...)
	return Result{}, apiErr
}
