package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/middleware"
	"payment-initiation-backend/internal/models"
)

// Ledger owns every transaction lifecycle transition:
//
//	(network success) -> Complete
//	Complete --refund--> new row in Refund
//	Complete --cancel--> Cancelled (in place)
//
// Refund and Cancelled rows are terminal.
type Ledger struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

func New(store Store, log *slog.Logger) *Ledger {
	return &Ledger{store: store, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Payment describes a network-authorised payment to be recorded.
type Payment struct {
	TransactionUUID string
	PayerAccount    int64
	PayeeAccount    int64
	Amount          decimal.Decimal
	Currency        string
}

// Lookup fetches a transaction by id. Zero or several matches are both reported
// as not found.
func (l *Ledger) Lookup(ctx context.Context, id string) (*models.Transaction, *apierror.Error) {
	count, txn, err := l.store.FindByUUID(ctx, id)
	if err != nil {
		return nil, apierror.PersistenceFailed(err)
	}
	if count != 1 {
		return nil, apierror.TransactionNotFound(id)
	}
	return txn, nil
}

// History returns a transaction and its events.
func (l *Ledger) History(ctx context.Context, id string) (*models.Transaction, []models.TransactionEvent, *apierror.Error) {
	txn, apiErr := l.Lookup(ctx, id)
	if apiErr != nil {
		return nil, nil, apiErr
	}
	events, err := l.store.ListEvents(ctx, id)
	if err != nil {
		return nil, nil, apierror.PersistenceFailed(err)
	}
	return txn, events, nil
}

// EnsureRefundable rejects transactions that are not Complete or that already
// carry a refund row.
func (l *Ledger) EnsureRefundable(ctx context.Context, txn *models.Transaction) *apierror.Error {
	return l.ensureOpen(ctx, txn)
}

// EnsureCancellable applies the same rule as EnsureRefundable: a refunded
// original stays Complete but is finalised.
func (l *Ledger) EnsureCancellable(ctx context.Context, txn *models.Transaction) *apierror.Error {
	return l.ensureOpen(ctx, txn)
}

func (l *Ledger) ensureOpen(ctx context.Context, txn *models.Transaction) *apierror.Error {
	if txn.Status != models.StatusComplete {
		return apierror.AlreadyFinalized(txn.TransactionUUID)
	}
	refunds, err := l.store.CountRefunds(ctx, txn.TransactionUUID)
	if err != nil {
		return apierror.PersistenceFailed(err)
	}
	if refunds > 0 {
		return apierror.AlreadyFinalized(txn.TransactionUUID)
	}
	return nil
}

// RecordPayment creates the Complete row for an authorised payment.
func (l *Ledger) RecordPayment(ctx context.Context, p Payment) (*models.Transaction, *apierror.Error) {
	now := l.now()
	txn := &models.Transaction{
		TransactionUUID:    p.TransactionUUID,
		PayerAccountNumber: p.PayerAccount,
		PayeeAccountNumber: p.PayeeAccount,
		Amount:             p.Amount,
		Currency:           p.Currency,
		Date:               now,
		Status:             models.StatusComplete,
	}
	event := l.event(ctx, txn.TransactionUUID, models.ActionPaymentRecorded, nil, models.StatusComplete, map[string]any{
		"amount":   p.Amount.String(),
		"currency": p.Currency,
	})

	if err := l.store.Create(ctx, txn, event); err != nil {
		return nil, apierror.PersistenceFailed(err)
	}
	l.log.InfoContext(ctx, "payment recorded", "transaction_uuid", txn.TransactionUUID)
	return txn, nil
}

// RecordRefund creates a Refund row copying the original's parties, amount and
// currency. The original row is not modified.
func (l *Ledger) RecordRefund(ctx context.Context, original *models.Transaction, refundID string) (*models.Transaction, *apierror.Error) {
	originalID := original.TransactionUUID
	txn := &models.Transaction{
		TransactionUUID:    refundID,
		PayerAccountNumber: original.PayerAccountNumber,
		PayeeAccountNumber: original.PayeeAccountNumber,
		Amount:             original.Amount,
		Currency:           original.Currency,
		Date:               l.now(),
		Status:             models.StatusRefund,
		RefundOf:           &originalID,
	}
	event := l.event(ctx, refundID, models.ActionRefundRecorded, nil, models.StatusRefund, map[string]any{
		"refund_of": originalID,
		"amount":    original.Amount.String(),
		"currency":  original.Currency,
	})

	if err := l.store.Create(ctx, txn, event); err != nil {
		return nil, apierror.PersistenceFailed(err)
	}
	l.log.InfoContext(ctx, "refund recorded", "transaction_uuid", refundID, "refund_of", originalID)
	return txn, nil
}

// Cancel moves a Complete transaction to Cancelled. A row that left Complete
// since it was read is reported as already finalised.
func (l *Ledger) Cancel(ctx context.Context, txn *models.Transaction) *apierror.Error {
	prev := models.StatusComplete
	event := l.event(ctx, txn.TransactionUUID, models.ActionCancelled, &prev, models.StatusCancelled, nil)

	updated, err := l.store.TransitionStatus(ctx, txn.TransactionUUID, models.StatusComplete, models.StatusCancelled, event)
	if err != nil {
		return apierror.PersistenceFailed(err)
	}
	if !updated {
		return apierror.AlreadyFinalized(txn.TransactionUUID)
	}
	l.log.InfoContext(ctx, "transaction cancelled", "transaction_uuid", txn.TransactionUUID)
	return nil
}

func (l *Ledger) event(
	ctx context.Context,
	id, action string,
	prev *models.TransactionStatus,
	next models.TransactionStatus,
	details map[string]any,
) *models.TransactionEvent {
	var raw datatypes.JSON
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			l.log.ErrorContext(ctx, "encode event details", "transaction_uuid", id, "action", action, "error", err)
		} else {
			raw = datatypes.JSON(b)
		}
	}
	return &models.TransactionEvent{
		ID:              uuid.New(),
		TransactionUUID: id,
		Action:          action,
		PreviousStatus:  prev,
		NewStatus:       next,
		RequestID:       middleware.GetRequestID(ctx),
		Details:         raw,
		CreatedAt:       l.now(),
	}
}
