package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionPaymentRecorded = "payment_recorded"
	ActionRefundRecorded  = "refund_recorded"
	ActionCancelled       = "cancelled"
)

// TransactionEvent records one ledger transition.
type TransactionEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionUUID string    `gorm:"index"`
	Action          string
	PreviousStatus  *TransactionStatus
	NewStatus       TransactionStatus
	RequestID       string `gorm:"index"`
	Details         datatypes.JSON
	CreatedAt       time.Time
}
