package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"payment-initiation-backend/internal/models"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a transaction row and its event atomically.
func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction, event *models.TransactionEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}

func (r *TransactionRepository) FindByUUID(ctx context.Context, id string) (int64, *models.Transaction, error) {
	return findOne[models.Transaction](r.db.WithContext(ctx).
		Where("transaction_uuid = ?", id))
}

// CountRefunds counts refund rows recorded against an original transaction.
func (r *TransactionRepository) CountRefunds(ctx context.Context, originalID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("refund_of = ? AND status = ?", originalID, models.StatusRefund).
		Count(&count).Error
	return count, err
}

// TransitionStatus moves a row from one status to another in place and records
// the event. It reports false when no row was in the expected status.
func (r *TransactionRepository) TransitionStatus(
	ctx context.Context,
	id string,
	from, to models.TransactionStatus,
	event *models.TransactionEvent,
) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Transaction{}).
			Where("transaction_uuid = ? AND status = ?", id, from).
			Update("status", to)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		updated = true
		return tx.Create(event).Error
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// ListEvents returns a transaction's events, oldest first.
func (r *TransactionRepository) ListEvents(ctx context.Context, id string) ([]models.TransactionEvent, error) {
	var events []models.TransactionEvent
	err := r.db.WithContext(ctx).
		Where("transaction_uuid = ?", id).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}).
		Find(&events).Error
	return events, err
}
