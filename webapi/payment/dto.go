package payment

import (
	"time"

	"github.com/sunray-eu/payment-service/pkg/domain"
)

// CreatePaymentLinkRequest is the body of POST /create-payment-link.
type CreatePaymentLinkRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0" example:"100.50"`
	Currency string  `json:"currency" validate:"required,len=3" example:"USD"`
	Provider string  `json:"provider" validate:"required" example:"paypal"`
}

// UpdateTransactionStatusRequest is the body of POST /update-transaction-status.
type UpdateTransactionStatusRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,uuid" example:"9e8b1c2a-0f1d-4c3b-9a2e-5d6f7a8b9c0d"`
	Status        string `json:"status" validate:"required,oneof=processing completed failed" example:"completed"`
}

// TransactionDTO is the wire representation of a transaction.
type TransactionDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Provider    string    `json:"provider"`
	Status      string    `json:"status"`
	PaymentLink string    `json:"payment_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTransactionDTO(tx *domain.Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:          tx.ID.String(),
		UserID:      tx.UserID.String(),
		Amount:      tx.Amount.String(),
		Currency:    tx.Currency,
		Provider:    tx.Provider,
		Status:      string(tx.Status),
		PaymentLink: tx.PaymentLink,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
