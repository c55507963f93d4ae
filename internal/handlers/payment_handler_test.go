package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/models"
	"payment-initiation-backend/internal/services/payments"
	"payment-initiation-backend/internal/validation"
)

type fakeService struct {
	payment func(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)
	refund  func(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)
	cancel  func(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)
}

func (f *fakeService) InitiatePayment(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error) {
	return f.payment(ctx, body)
}

func (f *fakeService) InitiateRefund(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error) {
	return f.refund(ctx, body)
}

func (f *fakeService) InitiateCancellation(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error) {
	return f.cancel(ctx, body)
}

type fakeReader struct {
	history func(ctx context.Context, id string) (*models.Transaction, []models.TransactionEvent, *apierror.Error)
}

func (f *fakeReader) History(ctx context.Context, id string) (*models.Transaction, []models.TransactionEvent, *apierror.Error) {
	return f.history(ctx, id)
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func newTestRouter(h *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(MethodNotAllowed)
	r.POST("/api/initiatePayment", h.InitiatePayment)
	r.POST("/api/initiateRefund", h.InitiateRefund)
	r.POST("/api/initiateCancellation", h.InitiateCancellation)
	r.GET("/api/transactions/:uuid", h.GetTransaction)
	r.GET("/api/health", h.Health)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestInitiatePaymentSuccess(t *testing.T) {
	svc := &fakeService{payment: func(_ context.Context, body validation.Body) (payments.Result, *apierror.Error) {
		assert.Equal(t, validation.KindString, body["CardNumber"].Kind())
		return payments.Result{TransactionUUID: "42", Comment: payments.CommentPaymentProcessed}, nil
	}}
	r := newTestRouter(NewPaymentHandler(svc, nil, nil))

	w, out := do(r, http.MethodPost, "/api/initiatePayment", `{"CardNumber":"4111111111111111"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", out["TransactionUUID"])
	assert.Nil(t, out["ErrorCode"])
	assert.Contains(t, out, "ErrorCode")
	assert.Equal(t, "Transaction processed successfully", out["Comment"])
}

func TestRefundAndCancelSuccessOmitID(t *testing.T) {
	ok := func(comment string) func(context.Context, validation.Body) (payments.Result, *apierror.Error) {
		return func(context.Context, validation.Body) (payments.Result, *apierror.Error) {
			return payments.Result{TransactionUUID: "43", Comment: comment}, nil
		}
	}
	svc := &fakeService{refund: ok(payments.CommentRefunded), cancel: ok(payments.CommentCancelled)}
	r := newTestRouter(NewPaymentHandler(svc, nil, nil))

	w, out := do(r, http.MethodPost, "/api/initiateRefund", `{"TransactionUUID":"42"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transaction refunded successfully", out["Comment"])
	assert.NotContains(t, out, "TransactionUUID")

	w, out = do(r, http.MethodPost, "/api/initiateCancellation", `{"TransactionUUID":"42"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transaction cancelled successfully", out["Comment"])
}

func TestOperationErrors(t *testing.T) {
	svc := &fakeService{cancel: func(context.Context, validation.Body) (payments.Result, *apierror.Error) {
		return payments.Result{}, apierror.TransactionNotFound("missing")
	}}
	r := newTestRouter(NewPaymentHandler(svc, nil, nil))

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode float64
	}{
		{name: "empty body", method: http.MethodPost, path: "/api/initiateCancellation", body: "", wantCode: 100},
		{name: "not json", method: http.MethodPost, path: "/api/initiateCancellation", body: "TransactionUUID=1", wantCode: 101},
		{name: "service error", method: http.MethodPost, path: "/api/initiateCancellation", body: `{"TransactionUUID":"missing"}`, wantCode: 402},
		{name: "wrong method", method: http.MethodGet, path: "/api/initiatePayment", wantCode: 105},
		{name: "put on refund", method: http.MethodPut, path: "/api/initiateRefund", body: `{}`, wantCode: 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, out := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, out["ErrorCode"])
			assert.NotEmpty(t, out["Comment"])
		})
	}
}

func TestGetTransaction(t *testing.T) {
	prev := models.StatusComplete
	reader := &fakeReader{history: func(_ context.Context, id string) (*models.Transaction, []models.TransactionEvent, *apierror.Error) {
		if id != "42" {
			return nil, nil, apierror.TransactionNotFound(id)
		}
		return &models.Transaction{
				TransactionUUID: "42",
				Amount:          decimal.RequireFromString("100"),
				Currency:        "GBP",
				Status:          models.StatusCancelled,
			}, []models.TransactionEvent{
				{Action: models.ActionPaymentRecorded, NewStatus: models.StatusComplete, Details: datatypes.JSON(`{"currency":"GBP"}`)},
				{Action: models.ActionCancelled, PreviousStatus: &prev, NewStatus: models.StatusCancelled},
			}, nil
	}}
	r := newTestRouter(NewPaymentHandler(nil, reader, nil))

	w, out := do(r, http.MethodGet, "/api/transactions/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100.00", out["Amount"])
	assert.Equal(t, "Cancelled", out["Status"])

	events, ok := out["Events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 2)
	first := events[0].(map[string]any)
	assert.Equal(t, map[string]any{"currency": "GBP"}, first["details"])
	assert.Equal(t, "Complete", events[1].(map[string]any)["previous_status"])

	w, out = do(r, http.MethodGet, "/api/transactions/nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(402), out["ErrorCode"])
}

func TestHealth(t *testing.T) {
	w, out := do(newTestRouter(NewPaymentHandler(nil, nil, fakePinger{})), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", out["status"])

	w, out = do(newTestRouter(NewPaymentHandler(nil, nil, fakePinger{err: errors.New("refused")})), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "database_unreachable", out["status"])
}

func TestOversizedBodyIsRejected(t *testing.T) {
	svc := &fakeService{payment: func(context.Context, validation.Body) (payments.Result, *apierror.Error) {
		t.Fatal("service must not be reached")
		return payments.Result{}, nil
	}}
	r := newTestRouter(NewPaymentHandler(svc, nil, nil))

	big := `{"CardNumber":"` + strings.Repeat("4", maxBodyBytes) + `"}`
	w, out := do(r, http.MethodPost, "/api/initiatePayment", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(apierror.CodeMalformedBody), out["ErrorCode"])
}
