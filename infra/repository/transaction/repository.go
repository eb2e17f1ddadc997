// Package transaction provides the GORM-backed transaction repository. The
// status write is a compare-and-set keyed on the expected current status, so
// two concurrent advances on the same row cannot both succeed.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/repository"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.TransactionRepository {
	return &gormRepository{db: db}
}

// Create implements repository.TransactionRepository.
func (r *gormRepository) Create(
	ctx context.Context,
	create repository.TransactionCreate,
) error {
	tx := Transaction{
		ID:               create.ID,
		UserID:           create.UserID,
		Amount:           create.Amount,
		Currency:         create.Currency,
		Provider:         create.Provider,
		Status:           string(create.Status),
		PaymentLink:      create.PaymentLink,
		PendingReference: create.PendingReference,
	}
	return r.db.WithContext(ctx).Create(&tx).Error
}

// Get implements repository.TransactionRepository.
func (r *gormRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Transaction, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
		}
		return nil, err
	}
	return mapModelToDomain(&tx), nil
}

// UpdateStatus implements repository.TransactionRepository. Zero rows affected
// means another caller already moved the row off the expected status.
func (r *gormRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	update repository.StatusUpdate,
) error {
	updates := map[string]any{"status": string(update.To)}
	if update.ClearPendingReference {
		updates["pending_reference"] = ""
	}

	res := r.db.WithContext(
		ctx,
	).Model(
		&Transaction{},
	).Where(
		"id = ? AND status = ?",
		id,
		string(update.From),
	).Updates(
		updates,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf(
			"%w: transaction %s is no longer %s", domain.ErrStatusConflict, id, update.From,
		)
	}
	return nil
}

func mapModelToDomain(tx *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:               tx.ID,
		UserID:           tx.UserID,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Provider:         tx.Provider,
		Status:           domain.Status(tx.Status),
		PaymentLink:      tx.PaymentLink,
		PendingReference: tx.PendingReference,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}
