package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"payment-initiation-backend/internal/apierror"
	"payment-initiation-backend/internal/models"
	"payment-initiation-backend/internal/services/payments"
	"payment-initiation-backend/internal/validation"
)

const (
	healthTimeout = 2 * time.Second
	// maxBodyBytes caps an operation request body; larger bodies are malformed.
	maxBodyBytes = 64 << 10
)

type PaymentService interface {
	InitiatePayment(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)
	InitiateRefund(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)
	InitiateCancellation(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)
}

type TransactionReader interface {
	History(ctx context.Context, id string) (*models.Transaction, []models.TransactionEvent, *apierror.Error)
}

// Pinger reports database reachability; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type PaymentHandler struct {
	service PaymentService
	reader  TransactionReader
	db      Pinger
}

func NewPaymentHandler(service PaymentService, reader TransactionReader, db Pinger) *PaymentHandler {
	return &PaymentHandler{service: service, reader: reader, db: db}
}

func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	h.run(c, h.service.InitiatePayment, true)
}

func (h *PaymentHandler) InitiateRefund(c *gin.Context) {
	h.run(c, h.service.InitiateRefund, false)
}

func (h *PaymentHandler) InitiateCancellation(c *gin.Context) {
	h.run(c, h.service.InitiateCancellation, false)
}

type operation func(ctx context.Context, body validation.Body) (payments.Result, *apierror.Error)

func (h *PaymentHandler) run(c *gin.Context, op operation, withID bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, apierror.MalformedBody(err))
		return
	}
	body, apiErr := validation.DecodeBody(raw)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	res, apiErr := op(c.Request.Context(), body)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	resp := gin.H{"ErrorCode": nil, "Comment": res.Comment}
	if withID {
		resp["TransactionUUID"] = res.TransactionUUID
	}
	c.JSON(http.StatusOK, resp)
}

type eventView struct {
	Action         string                    `json:"action"`
	PreviousStatus *models.TransactionStatus `json:"previous_status"`
	NewStatus      models.TransactionStatus  `json:"new_status"`
	RequestID      string                    `json:"request_id"`
	Details        any                       `json:"details,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// GetTransaction returns a stored transaction with its event history.
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	txn, events, apiErr := h.reader.History(c.Request.Context(), c.Param("uuid"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	views := make([]eventView, 0, len(events))
	for _, e := range events {
		v := eventView{
			Action:         e.Action,
			PreviousStatus: e.PreviousStatus,
			NewStatus:      e.NewStatus,
			RequestID:      e.RequestID,
			CreatedAt:      e.CreatedAt,
		}
		if len(e.Details) > 0 {
			v.Details = e.Details
		}
		views = append(views, v)
	}

	c.JSON(http.StatusOK, gin.H{
		"TransactionUUID":    txn.TransactionUUID,
		"PayerAccountNumber": txn.PayerAccountNumber,
		"PayeeAccountNumber": txn.PayeeAccountNumber,
		"Amount":             txn.Amount.StringFixed(2),
		"Currency":           txn.Currency,
		"Date":               txn.Date,
		"Status":             txn.Status,
		"RefundOf":           txn.RefundOf,
		"Events":             views,
	})
}

func (h *PaymentHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database_unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MethodNotAllowed answers non-POST calls to the operation routes.
func MethodNotAllowed(c *gin.Context) {
	writeError(c, apierror.WrongMethod())
}

func writeError(c *gin.Context, apiErr *apierror.Error) {
	c.JSON(http.StatusBadRequest, gin.H{"ErrorCode": int(apiErr.Code), "Comment": apiErr.Comment})
}
