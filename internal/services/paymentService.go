package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// MinChargeAmount is the gateway's minimum chargeable unit (50 cents for
// USD on Stripe). Submissions below it are rejected before any store or
// gateway access.
const MinChargeAmount = 50

var (
	ErrInvalidPayment = errors.New("invalid payment request")
	ErrAmountTooSmall = fmt.Errorf("amount must be at least %d: %w", MinChargeAmount, ErrInvalidPayment)
)

// PaymentGateway is the narrow surface of the external payment provider.
type PaymentGateway interface {
	// CreateIntent requests a client-side payment secret for a charge of
	// amount minor currency units.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// CheckoutRequest is the submission for the two-step checkout transaction.
type CheckoutRequest struct {
	Email         string   `json:"email"`
	Amount        int64    `json:"amount"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds"`
}

// CheckoutResult reports both effects of a checkout. The pair is returned
// as-is because the two steps are not atomic across documents: a crash
// between them leaves a durable Payment whose cart items still exist, and
// cleaning that up is an external reconciliation concern.
type CheckoutResult struct {
	InsertResult *store.InsertOneResult `json:"insertResult"`
	DeleteResult *store.DeleteResult    `json:"deleteResult"`
}

type PaymentService struct {
	payments store.Collection
	cart     store.Collection
	gateway  PaymentGateway
}

func NewPaymentService(payments, cart store.Collection, gateway PaymentGateway) *PaymentService {
	return &PaymentService{payments: payments, cart: cart, gateway: gateway}
}

// Checkout inserts the payment record, then bulk-deletes the paid cart
// items. Insertion goes first so a payment survives even if the cleanup
// fails. Duplicate submissions produce duplicate Payment records; the store
// does not deduplicate them.
func (s *PaymentService) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	if len(req.CartIDs) == 0 {
		return CheckoutResult{}, fmt.Errorf("cartIds must not be empty: %w", ErrInvalidPayment)
	}
	if req.Amount < MinChargeAmount {
		return CheckoutResult{}, ErrAmountTooSmall
	}
	cartIDs, err := store.ParseIDs(req.CartIDs)
	if err != nil {
		return CheckoutResult{}, err
	}

	payment := models.Payment{
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		CartIDs:       cartIDs,
		Date:          time.Now(),
	}

	insertResult, err := s.payments.InsertOne(ctx, payment)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to record payment: %w", err)
	}

	deleteResult, err := s.cart.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to clear cart items: %w", err)
	}

	return CheckoutResult{InsertResult: insertResult, DeleteResult: deleteResult}, nil
}

// CreateIntent validates the amount and passes the request through to the
// gateway unchanged. Gateway failures are not retried here.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount < MinChargeAmount {
		return "", ErrAmountTooSmall
	}
	if currency == "" {
		currency = "usd"
	}

	clientSecret, err := s.gateway.CreateIntent(ctx, amount, currency)
	if err != nil {
		return "", fmt.Errorf("payment gateway error: %w", err)
	}
	return clientSecret, nil
}
