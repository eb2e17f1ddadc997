// Package mocks provides testify mocks for the core contracts.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/provider"
	"github.com/sunray-eu/payment-service/pkg/repository"
)

// PaymentProvider mocks provider.PaymentProvider.
type PaymentProvider struct {
	mock.Mock
}

func (m *PaymentProvider) CreatePaymentLink(
	ctx context.Context,
	amount decimal.Decimal,
	currency, returnURL, cancelURL string,
) (*provider.PaymentLink, error) {
	args := m.Called(ctx, amount, currency, returnURL, cancelURL)
	link, _ := args.Get(0).(*provider.PaymentLink)
	return link, args.Error(1)
}

func (m *PaymentProvider) ResolveApproval(
	ctx context.Context,
	reference string,
) (*provider.Outcome, error) {
	args := m.Called(ctx, reference)
	outcome, _ := args.Get(0).(*provider.Outcome)
	return outcome, args.Error(1)
}

// TransactionRepository mocks repository.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(
	ctx context.Context,
	create repository.TransactionCreate,
) error {
	return m.Called(ctx, create).Error(0)
}

func (m *TransactionRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*domain.Transaction)
	return tx, args.Error(1)
}

func (m *TransactionRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	update repository.StatusUpdate,
) error {
	return m.Called(ctx, id, update).Error(0)
}
