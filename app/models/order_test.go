package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayTransitionsCreatedOrder(t *testing.T) {
	order := Order{Status: StatusCreated}

	changed := order.Pay("txn-1")
	assert.True(t, changed)
	assert.True(t, order.Paid)
	assert.Equal(t, StatusPaid, order.Status)
	assert.Equal(t, "txn-1", order.TransactionID)
}

func TestPayAgainIsNoOp(t *testing.T) {
	order := Order{Status: StatusCreated}
	order.Pay("txn-1")

	changed := order.Pay("txn-2")
	assert.False(t, changed)
	assert.Equal(t, "txn-1", order.TransactionID)
}

func TestShipRejectsUnpaid(t *testing.T) {
	order := Order{Status: StatusCreated}

	changed, err := order.Ship()
	assert.ErrorIs(t, err, ErrUnpaidShipment)
	assert.False(t, changed)
	assert.False(t, order.Shipped)
}

func TestShipAfterPay(t *testing.T) {
	order := Order{Status: StatusCreated}
	order.Pay("txn-1")

	changed, err := order.Ship()
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StatusShipped, order.Status)

	// Shipping a shipped order changes nothing.
	changed, err = order.Ship()
	assert.NoError(t, err)
	assert.False(t, changed)
}
