package ledger

import (
	"context"

	"payment-initiation-backend/internal/models"
)

// Store persists transactions and their events.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go Store
type Store interface {
	Create(ctx context.Context, txn *models.Transaction, event *models.TransactionEvent) error
	FindByUUID(ctx context.Context, id string) (int64, *models.Transaction, error)
	CountRefunds(ctx context.Context, originalID string) (int64, error)
	TransitionStatus(ctx context.Context, id string, from, to models.TransactionStatus, event *models.TransactionEvent) (bool, error)
	ListEvents(ctx context.Context, id string) ([]models.TransactionEvent, error)
}
