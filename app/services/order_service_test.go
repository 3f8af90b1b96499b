package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

func testOrder(uid, productID string) models.Order {
	return models.Order{
		UID: uid,
		ProductInfo: models.ProductInfo{
			ID:       productID,
			Title:    "brake pad set",
			Price:    25.00,
			Quantity: 2,
		},
		Address: "12 Elm St",
		Phone:   "555-0101",
	}
}

func TestSubmitAcceptsFirstOrder(t *testing.T) {
	fake := newFakeOrderStore()
	svc := NewOrderService(fake)

	res, err := svc.Submit(context.Background(), testOrder("uid-1", "p1"))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, models.StatusCreated, res.Order.Status)
	assert.False(t, res.Order.Paid)
	assert.False(t, res.Order.Shipped)
	assert.Len(t, fake.orders, 1)
}

func TestSubmitSuppressesDuplicate(t *testing.T) {
	fake := newFakeOrderStore()
	svc := NewOrderService(fake)

	first, err := svc.Submit(context.Background(), testOrder("uid-1", "p1"))
	require.NoError(t, err)
	require.True(t, first.Accepted)

	// Same uid and product: suppressed, nothing written.
	dup, err := svc.Submit(context.Background(), testOrder("uid-1", "p1"))
	require.NoError(t, err)
	assert.False(t, dup.Accepted)
	assert.Equal(t, first.Order.ProductInfo.ID, dup.Order.ProductInfo.ID)
	assert.Len(t, fake.orders, 1)

	// Different caller, same product: its own order.
	other, err := svc.Submit(context.Background(), testOrder("uid-2", "p1"))
	require.NoError(t, err)
	assert.True(t, other.Accepted)
	assert.Len(t, fake.orders, 2)
}

func TestSubmitIgnoresClientLifecycleFields(t *testing.T) {
	fake := newFakeOrderStore()
	svc := NewOrderService(fake)

	order := testOrder("uid-1", "p1")
	order.Paid = true
	order.Shipped = true
	order.Status = models.StatusShipped
	order.TransactionID = "forged"

	res, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCreated, res.Order.Status)
	assert.False(t, res.Order.Paid)
	assert.False(t, res.Order.Shipped)
	assert.Empty(t, res.Order.TransactionID)
}

func TestListMineRejectsOtherCallers(t *testing.T) {
	fake := newFakeOrderStore()
	fake.put("order-1", testOrder("uid-1", "p1"))
	svc := NewOrderService(fake)

	_, err := svc.ListMine(context.Background(), "uid-2", "uid-1")
	assert.ErrorIs(t, err, ErrForbidden)

	orders, err := svc.ListMine(context.Background(), "uid-1", "uid-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestMarkPaidTransitionsOnce(t *testing.T) {
	fake := newFakeOrderStore()
	order := testOrder("uid-1", "p1")
	order.Status = models.StatusCreated
	fake.put("order-1", order)
	svc := NewOrderService(fake)

	paid, err := svc.MarkPaid(context.Background(), "order-1", "txn-1")
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, models.StatusPaid, paid.Status)
	assert.Equal(t, "txn-1", paid.TransactionID)

	// A retried callback keeps the original transaction id.
	again, err := svc.MarkPaid(context.Background(), "order-1", "txn-2")
	require.NoError(t, err)
	assert.True(t, again.Paid)
	assert.Equal(t, "txn-1", again.TransactionID)
}

func TestMarkShippedRequiresPaid(t *testing.T) {
	fake := newFakeOrderStore()
	order := testOrder("uid-1", "p1")
	order.Status = models.StatusCreated
	fake.put("order-1", order)
	svc := NewOrderService(fake)

	_, err := svc.MarkShipped(context.Background(), "order-1")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.MarkPaid(context.Background(), "order-1", "txn-1")
	require.NoError(t, err)

	shipped, err := svc.MarkShipped(context.Background(), "order-1")
	require.NoError(t, err)
	assert.True(t, shipped.Shipped)
	assert.Equal(t, models.StatusShipped, shipped.Status)

	// Shipping twice is a no-op.
	again, err := svc.MarkShipped(context.Background(), "order-1")
	require.NoError(t, err)
	assert.True(t, again.Shipped)
}

func TestApplyPatchWhitelistsFields(t *testing.T) {
	fake := newFakeOrderStore()
	order := testOrder("uid-1", "p1")
	order.Status = models.StatusCreated
	fake.put("order-1", order)
	svc := NewOrderService(fake)

	patched, err := svc.ApplyPatch(context.Background(), "uid-1", "order-1", map[string]any{
		"address": "99 Oak Ave",
		"paid":    true,
		"status":  models.StatusShipped,
	})
	require.NoError(t, err)
	assert.Equal(t, "99 Oak Ave", patched.Address)
	assert.False(t, patched.Paid)
	assert.Equal(t, models.StatusCreated, patched.Status)
}

func TestApplyPatchRejectsNonOwner(t *testing.T) {
	fake := newFakeOrderStore()
	fake.put("order-1", testOrder("uid-1", "p1"))
	svc := NewOrderService(fake)

	_, err := svc.ApplyPatch(context.Background(), "uid-2", "order-1", map[string]any{"address": "x"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	fake := newFakeOrderStore()
	fake.put("order-1", testOrder("uid-1", "p1"))
	svc := NewOrderService(fake)

	err := svc.Delete(context.Background(), "uid-2", "order-1", false)
	assert.ErrorIs(t, err, ErrForbidden)

	// Admin may remove any order.
	err = svc.Delete(context.Background(), "uid-2", "order-1", true)
	require.NoError(t, err)
	assert.Empty(t, fake.orders)
}

func TestStatsSummarizesOrderBook(t *testing.T) {
	fake := newFakeOrderStore()

	created := testOrder("uid-1", "p1")
	created.Status = models.StatusCreated
	fake.put("order-1", created)

	paid := testOrder("uid-2", "p2")
	paid.Status = models.StatusCreated
	paid.Pay("txn-1")
	fake.put("order-2", paid)

	svc := NewOrderService(fake)
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[models.StatusCreated])
	assert.Equal(t, 1, stats.ByStatus[models.StatusPaid])
	assert.Equal(t, 50.00, stats.PaidRevenue)
}

func TestGetUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore())

	_, err := svc.Get(context.Background(), "uid-1", "missing", false)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
