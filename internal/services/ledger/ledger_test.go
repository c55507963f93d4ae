package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/middleware"
	"payment-initiation-backend/internal/models"
	"payment-initiation-backend/internal/services/ledger"
	mock_ledger "payment-initiation-backend/internal/services/ledger/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func original(status models.TransactionStatus) *models.Transaction {
	return &models.Transaction{
		TransactionUUID:    "42",
		PayerAccountNumber: 1001,
		PayeeAccountNumber: 2002,
		Amount:             decimal.RequireFromString("100.00"),
		Currency:           "GBP",
		Status:             status,
	}
}

func TestLedger_Lookup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		count    int64
		txn      *models.Transaction
		err      error
		wantCode apierror.Code
	}{
		{name: "found", count: 1, txn: original(models.StatusComplete)},
		{name: "missing", count: 0, wantCode: apierror.CodeTransactionNotFound},
		{name: "duplicated", count: 2, wantCode: apierror.CodeTransactionNotFound},
		{name: "store failure", err: errors.New("db down"), wantCode: apierror.CodePersistenceFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_ledger.NewMockStore(ctrl)
			store.EXPECT().FindByUUID(ctx, "42").Return(tt.count, tt.txn, tt.err)

			got, err := ledger.New(store, discard).Lookup(ctx, "42")
			if tt.wantCode != 0 {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantCode, err.Code)
				if tt.wantCode == apierror.CodeTransactionNotFound {
					assert.Contains(t, err.Comment, `"42"`)
				}
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.txn, got)
		})
	}
}

func TestLedger_EnsureRefundable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_ledger.NewMockStore(ctrl)
	l := ledger.New(store, discard)

	for _, status := range []models.TransactionStatus{models.StatusRefund, models.StatusCancelled} {
		err := l.EnsureRefundable(ctx, original(status))
		require.NotNil(t, err, status)
		assert.Equal(t, apierror.CodeAlreadyFinalized, err.Code)
	}

	store.EXPECT().CountRefunds(ctx, "42").Return(int64(0), nil)
	assert.Nil(t, l.EnsureRefundable(ctx, original(models.StatusComplete)))

	store.EXPECT().CountRefunds(ctx, "42").Return(int64(1), nil)
	err := l.EnsureRefundable(ctx, original(models.StatusComplete))
	require.NotNil(t, err)
	assert.Equal(t, apierror.CodeAlreadyFinalized, err.Code)

	store.EXPECT().CountRefunds(ctx, "42").Return(int64(0), errors.New("db down"))
	err = l.EnsureRefundable(ctx, original(models.StatusComplete))
	require.NotNil(t, err)
	assert.Equal(t, apierror.CodePersistenceFailed, err.Code)
}

func TestLedger_EnsureCancellable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_ledger.NewMockStore(ctrl)
	l := ledger.New(store, discard)

	store.EXPECT().CountRefunds(ctx, "42").Return(int64(0), nil)
	assert.Nil(t, l.EnsureCancellable(ctx, original(models.StatusComplete)))

	err := l.EnsureCancellable(ctx, original(models.StatusCancelled))
	require.NotNil(t, err)
	assert.Equal(t, apierror.CodeAlreadyFinalized, err.Code)

	// a refunded original keeps its Complete status but cannot be cancelled
	store.EXPECT().CountRefunds(ctx, "42").Return(int64(1), nil)
	err = l.EnsureCancellable(ctx, original(models.StatusComplete))
	require.NotNil(t, err)
	assert.Equal(t, apierror.CodeAlreadyFinalized, err.Code)

	store.EXPECT().CountRefunds(ctx, "42").Return(int64(0), errors.New("db down"))
	err = l.EnsureCancellable(ctx, original(models.StatusComplete))
	require.NotNil(t, err)
	assert.Equal(t, apierror.CodePersistenceFailed, err.Code)
}

func TestLedger_RecordPayment(t *testing.T) {
	ctx := middleware.WithRequestID(context.Background(), "req-9")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_ledger.NewMockStore(ctrl)
	store.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, event *models.TransactionEvent) error {
			assert.Equal(t, "42", txn.TransactionUUID)
			assert.Equal(t, models.StatusComplete, txn.Status)
			assert.Equal(t, "USD", txn.Currency)
			assert.False(t, txn.Date.IsZero())
			assert.Nil(t, txn.RefundOf)

			assert.Equal(t, "42", event.TransactionUUID)
			assert.Equal(t, models.ActionPaymentRecorded, event.Action)
			assert.Nil(t, event.PreviousStatus)
			assert.Equal(t, "req-9", event.RequestID)

			var details map[string]string
			require.NoError(t, json.Unmarshal(event.Details, &details))
			assert.Equal(t, "127.5", details["amount"])
			return nil
		})

	txn, err := ledger.New(store, discard).RecordPayment(ctx, ledger.Payment{
		TransactionUUID: "42",
		PayerAccount:    1001,
		PayeeAccount:    2002,
		Amount:          decimal.RequireFromString("127.50"),
		Currency:        "USD",
	})
	require.Nil(t, err)
	assert.EqualValues(t, 1001, txn.PayerAccountNumber)
}

func TestLedger_RecordPaymentPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_ledger.NewMockStore(ctrl)
	store.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(errors.New("UNIQUE constraint failed"))

	_, err := ledger.New(store, discard).RecordPayment(ctx, ledger.Payment{TransactionUUID: "42"})
	require.NotNil(t, err)
	assert.Equal(t, apierror.CodePersistenceFailed, err.Code)
	assert.Equal(t, "An error occurred saving the transaction: UNIQUE constraint failed", err.Comment)
}

func TestLedger_RecordRefund(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orig := original(models.StatusComplete)
	store := mock_ledger.NewMockStore(ctrl)
	store.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, event *models.TransactionEvent) error {
			assert.Equal(t, "r-1", txn.TransactionUUID)
			assert.Equal(t, models.StatusRefund, txn.Status)
			require.NotNil(t, txn.RefundOf)
			assert.Equal(t, "42", *txn.RefundOf)
			assert.Equal(t, models.ActionRefundRecorded, event.Action)
			return nil
		})

	txn, err := ledger.New(store, discard).RecordRefund(ctx, orig, "r-1")
	require.Nil(t, err)
	assert.Equal(t, orig.PayerAccountNumber, txn.PayerAccountNumber)
	assert.Equal(t, orig.PayeeAccountNumber, txn.PayeeAccountNumber)
	assert.True(t, orig.Amount.Equal(txn.Amount))
	assert.Equal(t, orig.Currency, txn.Currency)
	assert.Equal(t, models.StatusComplete, orig.Status)
}

func TestLedger_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		updated  bool
		err      error
		wantCode apierror.Code
	}{
		{name: "cancelled", updated: true},
		{name: "lost race", updated: false, wantCode: apierror.CodeAlreadyFinalized},
		{name: "store failure", err: errors.New("db down"), wantCode: apierror.CodePersistenceFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_ledger.NewMockStore(ctrl)
			store.EXPECT().
				TransitionStatus(ctx, "42", models.StatusComplete, models.StatusCancelled, gomock.Any()).
				Return(tt.updated, tt.err)

			err := ledger.New(store, discard).Cancel(ctx, original(models.StatusComplete))
			if tt.wantCode != 0 {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantCode, err.Code)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestLedger_History(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_ledger.NewMockStore(ctrl)
	store.EXPECT().FindByUUID(ctx, "42").Return(int64(1), original(models.StatusCancelled), nil)
	store.EXPECT().ListEvents(ctx, "42").Return([]models.TransactionEvent{
		{Action: models.ActionPaymentRecorded}, {Action: models.ActionCancelled},
	}, nil)

	txn, events, err := ledger.New(store, discard).History(ctx, "42")
	require.Nil(t, err)
	assert.Equal(t, models.StatusCancelled, txn.Status)
	assert.Len(t, events, 2)
}
