// Package payment exposes the payment HTTP endpoints: creating a payment link
// with a provider and advancing a transaction's status through the approval
// flow.
package payment

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunray-eu/payment-service/pkg/config"
	"github.com/sunray-eu/payment-service/pkg/domain"
	"github.com/sunray-eu/payment-service/pkg/middleware"
	paymentsvc "github.com/sunray-eu/payment-service/pkg/service/payment"
	"github.com/sunray-eu/payment-service/webapi/common"
)

// approvalService is the slice of the payment service the handlers need.
type approvalService interface {
	CreatePaymentLink(ctx context.Context, req paymentsvc.CreateRequest) (*domain.Transaction, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, target domain.Status) (*paymentsvc.ApprovalResult, error)
}

// Routes registers the payment endpoints. Both require a valid JWT; each is
// additionally gated on its own scope.
func Routes(app *fiber.App, svc *paymentsvc.Service, cfg *config.App) {
	app.Post(
		"/create-payment-link",
		middleware.JwtProtected(cfg.Jwt),
		middleware.RequireScope("create-transaction"),
		CreatePaymentLink(svc, cfg),
	)
	app.Post(
		"/update-transaction-status",
		middleware.JwtProtected(cfg.Jwt),
		middleware.RequireScope("update-transaction"),
		UpdateTransactionStatus(svc),
	)
}

// CreatePaymentLink returns a handler that registers a payment with the chosen
// provider and responds with the new transaction and its payer-facing link.
// @Summary Create a payment link
// @Description Creates a payment with the chosen provider and returns the link the payer must follow.
// @Tags payment
// @Accept json
// @Produce json
// @Success 201 {object} common.Response "Payment link created"
// @Failure 422 {object} common.ProblemDetails "Validation or unknown provider"
// @Failure 502 {object} common.ProblemDetails "Provider unavailable"
// @Router /create-payment-link [post]
// @Security BearerAuth
func CreatePaymentLink(svc approvalService, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[CreatePaymentLinkRequest](c)
		if err != nil || req == nil {
			return err
		}

		userID, err := currentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}

		tx, err := svc.CreatePaymentLink(c.Context(), paymentsvc.CreateRequest{
			UserID:    userID,
			Amount:    decimal.NewFromFloat(req.Amount),
			Currency:  req.Currency,
			Provider:  req.Provider,
			ReturnURL: cfg.Payment.ReturnURL,
			CancelURL: cfg.Payment.CancelURL,
		})
		if err != nil {
			log.Errorf("create payment link failed: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create payment link", err)
		}

		return common.SuccessResponseJSON(
			c, fiber.StatusCreated, "Payment link created", toTransactionDTO(tx),
		)
	}
}

// UpdateTransactionStatus returns a handler that advances a transaction toward
// the requested status. Advancing to completed resolves the provider approval
// first; the response envelope reports the outcome.
// @Summary Update a transaction's status
// @Description Advances a transaction along the status state machine, resolving the provider approval when completing.
// @Tags payment
// @Accept json
// @Produce json
// @Success 200 {object} common.Response "Status updated"
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Failure 422 {object} common.ProblemDetails "Invalid transition"
// @Failure 502 {object} common.ProblemDetails "Provider unavailable"
// @Router /update-transaction-status [post]
// @Security BearerAuth
func UpdateTransactionStatus(svc approvalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[UpdateTransactionStatusRequest](c)
		if err != nil || req == nil {
			return err
		}

		id, err := uuid.Parse(req.TransactionID)
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid transaction id", err, fiber.StatusUnprocessableEntity,
			)
		}
		target, err := domain.ParseStatus(req.Status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid status", err)
		}

		result, err := svc.AdvanceStatus(c.Context(), id, target)
		if err != nil {
			var transition *domain.InvalidTransitionError
			if errors.As(err, &transition) {
				return common.ProblemDetailsJSON(
					c, "Invalid status transition", err,
					fiber.Map{
						"from": string(transition.From),
						"to":   string(transition.To),
					},
				)
			}
			log.Errorf("update transaction status failed: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to update transaction status", err)
		}

		switch result.Status {
		case paymentsvc.ResultRequiresAction:
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"status":  paymentsvc.ResultRequiresAction,
				"message": "You need to complete one more action",
				"action":  result.Action,
			})
		case paymentsvc.ResultError:
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"status":      paymentsvc.ResultError,
				"error":       result.Message,
				"transaction": toTransactionDTO(result.Transaction),
			})
		}

		resp := fiber.Map{
			"status":      paymentsvc.ResultSuccess,
			"message":     "Transaction status updated",
			"transaction": toTransactionDTO(result.Transaction),
		}
		if result.PayerName != "" {
			resp["payer_name"] = result.PayerName
			resp["amount"] = result.Amount.String()
			resp["currency"] = result.Currency
		}
		return c.Status(fiber.StatusOK).JSON(resp)
	}
}

// currentUserID extracts the user id from the validated JWT's sub claim.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("missing user context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}
