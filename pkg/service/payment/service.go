// Package payment implements the approval orchestrator: the use-case layer that
// drives a transaction through its lifecycle and reconciles provider approval
// flows into the status state machine. It is the only place a transaction's
// status is ever committed, and the only place errors are mapped onto status
// effects.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunray-eu/payment-service/pkg/currency"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/domain/events"
	"github.com/sunray-eu/payment-service/pkg/eventbus"
	"github.com/sunray-eu/payment-service/pkg/provider"
	"github.com/sunray-eu/payment-service/pkg/registry"
	"github.com/sunray-eu/payment-service/pkg/repository"
)

// ResultStatus is the stable discriminator callers branch on.
type ResultStatus string

const (
	// ResultSuccess means the transaction reached completed.
	ResultSuccess ResultStatus = "success"
	// ResultRequiresAction means the payer must complete a follow-up action;
	// the transaction stays in processing.
	ResultRequiresAction ResultStatus = "requires_action"
	// ResultError means the provider declined; the transaction moved to failed.
	ResultError ResultStatus = "error"
)

// ApprovalResult is the uniform outcome of AdvanceStatus.
type ApprovalResult struct {
	Status      ResultStatus
	Transaction *domain.Transaction

	// Populated on ResultSuccess when the provider reports capture details.
	PayerName string
	Amount    decimal.Decimal
	Currency  string

	// Populated on ResultRequiresAction.
	Action string

	// Populated on ResultError with the provider's failure message.
	Message string
}

// CreateRequest carries the validated input for CreatePaymentLink.
type CreateRequest struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Currency  string
	Provider  string
	ReturnURL string
	CancelURL string
}

// Service orchestrates payment-link creation and status advancement.
type Service struct {
	repo       repository.TransactionRepository
	resolver   *registry.Resolver
	bus        eventbus.Bus
	currencies *currency.Registry
	logger     *slog.Logger
}

// New creates a Service with the provided dependencies.
func New(
	repo repository.TransactionRepository,
	resolver *registry.Resolver,
	bus eventbus.Bus,
	currencies *currency.Registry,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		resolver:   resolver,
		bus:        bus,
		currencies: currencies,
		logger:     logger,
	}
}

// CreatePaymentLink resolves the adapter for req.Provider, registers the payment
// with the gateway and persists a new transaction carrying the returned link and
// correlation reference. Nothing is persisted when adapter resolution or link
// creation fails.
func (s *Service) CreatePaymentLink(
	ctx context.Context,
	req CreateRequest,
) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidRequest)
	}
	if !s.currencies.IsSupported(req.Currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrInvalidRequest, req.Currency)
	}

	adapter, err := s.resolver.Resolve(req.Provider)
	if err != nil {
		return nil, err
	}

	link, err := adapter.CreatePaymentLink(
		ctx,
		req.Amount,
		req.Currency,
		req.ReturnURL,
		req.CancelURL,
	)
	if err != nil {
		return nil, fmt.Errorf("create payment link via %s: %w", req.Provider, err)
	}

	tx := domain.NewTransaction(
		req.UserID,
		req.Amount,
		req.Currency,
		req.Provider,
		link.URL,
		link.Reference,
	)
	if err := s.repo.Create(ctx, repository.TransactionCreate{
		ID:               tx.ID,
		UserID:           tx.UserID,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Provider:         tx.Provider,
		Status:           tx.Status,
		PaymentLink:      tx.PaymentLink,
		PendingReference: tx.PendingReference,
	}); err != nil {
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", tx.ID,
		"provider", tx.Provider,
		"amount", tx.Amount,
		"currency", tx.Currency,
	)
	s.bus.Publish(ctx, events.TransactionCreated{Transaction: *tx})
	return tx, nil
}

// AdvanceStatus moves the transaction identified by id toward target.
//
// Targets other than completed delegate straight to the state machine: the edge
// is checked, committed and the status-change event fired. For completed, the
// edge is validated first without mutating anything, then the provider approval
// is resolved and its outcome mapped:
//
//   - success        -> commit completed, return capture details
//   - failed         -> commit failed (terminal), return the provider's message
//   - requires_action-> no mutation, return the action payload; a later call
//     with the same transaction resolves the approval again
//
// Provider transport failures leave the status untouched and surface as errors.
func (s *Service) AdvanceStatus(
	ctx context.Context,
	id uuid.UUID,
	target domain.Status,
) (*ApprovalResult, error) {
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if target != domain.StatusCompleted {
		if err := s.commitStatus(ctx, tx, target); err != nil {
			return nil, err
		}
		return &ApprovalResult{Status: ResultSuccess, Transaction: tx}, nil
	}

	// Validate the edge before any provider call so an illegal request never
	// reaches the gateway.
	if !tx.Status.CanTransition(domain.StatusCompleted) {
		return nil, &domain.InvalidTransitionError{From: tx.Status, To: domain.StatusCompleted}
	}
	if tx.PendingReference == "" {
		return nil, fmt.Errorf(
			"%w: transaction %s has no pending reference",
			domain.ErrInvalidRequest, tx.ID,
		)
	}

	adapter, err := s.resolver.Resolve(tx.Provider)
	if err != nil {
		return nil, err
	}

	outcome, err := adapter.ResolveApproval(ctx, tx.PendingReference)
	if err != nil {
		// Transport-level trouble is retryable and must not move the
		// transaction; only an explicit decline does.
		return nil, fmt.Errorf("resolve approval via %s: %w", tx.Provider, err)
	}

	switch outcome.Status {
	case provider.OutcomeSuccess:
		if err := s.commitStatus(ctx, tx, domain.StatusCompleted); err != nil {
			return nil, err
		}
		return &ApprovalResult{
			Status:      ResultSuccess,
			Transaction: tx,
			PayerName:   outcome.PayerName,
			Amount:      outcome.Amount,
			Currency:    outcome.Currency,
		}, nil

	case provider.OutcomeFailed:
		if err := s.commitStatus(ctx, tx, domain.StatusFailed); err != nil {
			return nil, err
		}
		s.logger.Info("payment approval declined",
			"transaction_id", tx.ID,
			"provider", tx.Provider,
			"message", outcome.Message,
		)
		return &ApprovalResult{
			Status:      ResultError,
			Transaction: tx,
			Message:     outcome.Message,
		}, nil

	case provider.OutcomeRequiresAction:
		return &ApprovalResult{
			Status:      ResultRequiresAction,
			Transaction: tx,
			Action:      outcome.Action,
		}, nil
	}

	return nil, fmt.Errorf(
		"%w: provider %s returned unknown outcome %q",
		domain.ErrProviderUnavailable, tx.Provider, outcome.Status,
	)
}

// commitStatus applies the edge on the in-memory record, persists it with a
// compare-and-set keyed on the previous status and fires the status-change
// event. A losing concurrent caller gets an invalid transition back.
func (s *Service) commitStatus(
	ctx context.Context,
	tx *domain.Transaction,
	target domain.Status,
) error {
	old := tx.Status
	oldRef := tx.PendingReference
	if err := tx.ApplyStatus(target); err != nil {
		return err
	}

	err := s.repo.UpdateStatus(ctx, tx.ID, repository.StatusUpdate{
		From:                  old,
		To:                    target,
		ClearPendingReference: target.Terminal(),
	})
	if err != nil {
		// Roll the in-memory copy back so the caller sees the truth.
		tx.Status = old
		tx.PendingReference = oldRef
		if errors.Is(err, domain.ErrStatusConflict) {
			return &domain.InvalidTransitionError{From: old, To: target}
		}
		return fmt.Errorf("commit status %s: %w", target, err)
	}

	s.logger.Info("transaction status updated",
		"transaction_id", tx.ID,
		"old_status", old,
		"new_status", target,
	)
	s.bus.Publish(ctx, events.TransactionStatusUpdated{
		Transaction: *tx,
		OldStatus:   old,
		NewStatus:   target,
	})
	return nil
}
