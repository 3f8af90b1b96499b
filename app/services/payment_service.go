package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/metrics"
	"github.com/shashiranjanraj/gearbay/pkg/payments"
)

// defaultCurrency is applied whenever the caller does not name one.
const defaultCurrency = "usd"

// PaymentStore is the slice of the payment repository the bridge uses.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (models.Payment, error)
	FindByUID(ctx context.Context, uid string) ([]models.Payment, error)
}

// TxRunner runs a function inside a single store transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentService bridges orders to the payment provider and records the
// outcome. Confirmation writes the payment record and flips the order
// to paid inside one transaction, so neither write can land alone.
type PaymentService struct {
	payments PaymentStore
	orders   *OrderService
	provider payments.IntentCreator
	tx       TxRunner
}

func NewPaymentService(store PaymentStore, orders *OrderService, provider payments.IntentCreator, tx TxRunner) *PaymentService {
	return &PaymentService{payments: store, orders: orders, provider: provider, tx: tx}
}

// MinorUnits converts a major-unit price to the provider's integer
// minor units, rounding to the nearest cent.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent asks the provider for a payment intent covering the
// given major-unit amount and returns the client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	if currency == "" {
		currency = defaultCurrency
	}

	secret, err := s.provider.CreateIntent(ctx, MinorUnits(amount), currency)
	if err != nil {
		metrics.PaymentIntents.WithLabelValues("error").Inc()
		return "", fmt.Errorf("payments: create intent: %w", err)
	}

	metrics.PaymentIntents.WithLabelValues("ok").Inc()
	return secret, nil
}

// Confirm records a completed charge against an order. The payment
// insert and the paid transition commit together; retrying a confirmed
// payment leaves the order paid with its original transaction id.
func (s *PaymentService) Confirm(ctx context.Context, callerUID, orderID, transactionID string, amount float64, currency string) (models.Order, error) {
	if currency == "" {
		currency = defaultCurrency
	}

	order, err := s.orders.Get(ctx, callerUID, orderID, false)
	if err != nil {
		return models.Order{}, err
	}
	if order.Paid {
		return order, nil
	}

	payment := models.Payment{
		OrderID:       orderID,
		UID:           callerUID,
		Amount:        amount,
		Currency:      currency,
		TransactionID: transactionID,
		CreatedAt:     time.Now().UTC(),
	}

	var paid models.Order
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.payments.Insert(ctx, payment); err != nil {
			return err
		}
		paid, err = s.orders.MarkPaid(ctx, orderID, transactionID)
		return err
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("payments: confirm: %w", err)
	}
	return paid, nil
}

// History returns the caller's recorded payments.
func (s *PaymentService) History(ctx context.Context, uid string) ([]models.Payment, error) {
	return s.payments.FindByUID(ctx, uid)
}
