package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/collection"
	"github.com/shashiranjanraj/gearbay/pkg/event"
	"github.com/shashiranjanraj/gearbay/pkg/metrics"
)

// OrderStore is the slice of the order repository the lifecycle uses.
type OrderStore interface {
	FindByUIDProduct(ctx context.Context, uid, productID string) (models.Order, error)
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	FindByUID(ctx context.Context, uid string) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// OrderStats is the admin dashboard summary.
type OrderStats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"byStatus"`
	PaidRevenue float64        `json:"paidRevenue"`
}

// SubmitResult reports whether a submission created a new order or was
// suppressed as a duplicate. A suppressed submission still carries the
// already-stored order so the caller can respond with it.
type SubmitResult struct {
	Accepted bool
	Order    models.Order
}

// OrderService drives each order through Created → Paid → Shipped.
// Every state change goes through a model transition method, so an
// order can never skip a state or move backwards.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Submit stores a new order unless the caller already has one for the
// same product. A duplicate is suppressed softly: the existing order is
// returned with Accepted=false and nothing is written.
func (s *OrderService) Submit(ctx context.Context, order models.Order) (SubmitResult, error) {
	existing, err := s.orders.FindByUIDProduct(ctx, order.UID, order.ProductInfo.ID)
	if err == nil {
		metrics.OrdersSubmitted.WithLabelValues("duplicate").Inc()
		return SubmitResult{Accepted: false, Order: existing}, nil
	}
	if !isNotFound(err) {
		return SubmitResult{}, fmt.Errorf("orders: duplicate check: %w", err)
	}

	order.Status = models.StatusCreated
	order.Paid = false
	order.Shipped = false
	order.TransactionID = ""
	order.CreatedAt = time.Now().UTC()

	created, err := s.orders.Insert(ctx, order)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("orders: insert: %w", err)
	}

	metrics.OrdersSubmitted.WithLabelValues("accepted").Inc()
	event.FireAsync(event.OrderSubmitted, created)
	return SubmitResult{Accepted: true, Order: created}, nil
}

// ListMine returns the orders belonging to uid. The caller may only
// read their own orders; any mismatch is ErrForbidden regardless of
// whether the target uid exists.
func (s *OrderService) ListMine(ctx context.Context, callerUID, uid string) ([]models.Order, error) {
	if callerUID != uid {
		return nil, ErrForbidden
	}
	return s.orders.FindByUID(ctx, uid)
}

// ListAll returns every order. Admin-only; the transport layer guards it.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// Get returns a single order, enforcing ownership unless the caller is
// an admin.
func (s *OrderService) Get(ctx context.Context, callerUID, id string, isAdmin bool) (models.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if !isAdmin && order.UID != callerUID {
		return models.Order{}, ErrForbidden
	}
	return order, nil
}

// MarkPaid records a payment against the order. Paying an already-paid
// order is a no-op that reports success, so a retried payment callback
// cannot double-write.
func (s *OrderService) MarkPaid(ctx context.Context, id, transactionID string) (models.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !order.Pay(transactionID) {
		return order, nil
	}

	err = s.orders.Update(ctx, id, map[string]any{
		"status":        order.Status,
		"paid":          order.Paid,
		"transactionId": order.TransactionID,
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: mark paid: %w", err)
	}

	metrics.OrderTransitions.WithLabelValues("paid").Inc()
	event.FireAsync(event.OrderPaid, order)
	return order, nil
}

// MarkShipped moves a paid order to shipped. Shipping an unpaid order
// is rejected as a conflict; shipping a shipped order is a no-op.
func (s *OrderService) MarkShipped(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	changed, err := order.Ship()
	if errors.Is(err, models.ErrUnpaidShipment) {
		return models.Order{}, fmt.Errorf("%w: %v", ErrConflict, err)
	}
	if err != nil {
		return models.Order{}, err
	}
	if !changed {
		return order, nil
	}

	err = s.orders.Update(ctx, id, map[string]any{
		"status":  order.Status,
		"shipped": order.Shipped,
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: mark shipped: %w", err)
	}

	metrics.OrderTransitions.WithLabelValues("shipped").Inc()
	event.FireAsync(event.OrderShipped, order)
	return order, nil
}

// Stats summarizes the whole order book for the admin dashboard:
// per-status counts and the paid revenue total.
func (s *OrderService) Stats(ctx context.Context) (OrderStats, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return OrderStats{}, err
	}

	byStatus := collection.GroupBy(orders, func(o models.Order) string { return o.Status })
	counts := make(map[string]int, len(byStatus))
	for status, group := range byStatus {
		counts[status] = len(group)
	}

	paid := collection.Filter(orders, func(o models.Order) bool { return o.Paid })
	revenue := collection.Reduce(paid, 0.0, func(sum float64, o models.Order) float64 {
		return sum + o.ProductInfo.Price*float64(o.ProductInfo.Quantity)
	})

	return OrderStats{
		Total:       len(orders),
		ByStatus:    counts,
		PaidRevenue: revenue,
	}, nil
}

// ApplyPatch updates the mutable delivery fields of an order the caller
// owns. Lifecycle fields are not patchable — they only move through
// MarkPaid and MarkShipped.
func (s *OrderService) ApplyPatch(ctx context.Context, callerUID, id string, patch map[string]any) (models.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if order.UID != callerUID {
		return models.Order{}, ErrForbidden
	}

	fields := map[string]any{}
	for _, key := range []string{"address", "phone"} {
		if v, ok := patch[key]; ok {
			fields[key] = v
		}
	}
	if len(fields) == 0 {
		return order, nil
	}

	if err := s.orders.Update(ctx, id, fields); err != nil {
		return models.Order{}, fmt.Errorf("orders: patch: %w", err)
	}
	return s.orders.Get(ctx, id)
}

// Delete removes an order. Owners can cancel their own; admins can
// remove any.
func (s *OrderService) Delete(ctx context.Context, callerUID, id string, isAdmin bool) error {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && order.UID != callerUID {
		return ErrForbidden
	}
	return s.orders.Delete(ctx, id)
}
