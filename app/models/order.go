package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle states. Transitions only move forward:
// created → paid → shipped.
const (
	StatusCreated = "created"
	StatusPaid    = "paid"
	StatusShipped = "shipped"
)

// ErrUnpaidShipment is returned by Ship when the order has not been paid.
var ErrUnpaidShipment = errors.New("order: cannot ship an unpaid order")

// ProductInfo is the catalogue snapshot embedded in an order. ID is the
// part's record id; together with the owner's uid it forms the duplicate
// suppression key.
type ProductInfo struct {
	ID       string  `bson:"id"    json:"id"`
	Title    string  `bson:"title,omitempty" json:"title,omitempty"`
	Price    float64 `bson:"price,omitempty" json:"price,omitempty"`
	Quantity int     `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// Order is one customer's purchase of one product. At most one order
// exists per (uid, productInfo.id) pair.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID           string             `bson:"uid"         json:"uid"`
	ProductInfo   ProductInfo        `bson:"productInfo" json:"productInfo"`
	Status        string             `bson:"status"      json:"status"`
	Paid          bool               `bson:"paid"        json:"paid"`
	Shipped       bool               `bson:"shipped"     json:"shipped"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty"   json:"phone,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"   json:"createdAt"`
}

// Pay moves the order into the paid state. Paying an already-paid or
// shipped order is a no-op: payment confirmation is idempotent.
func (o *Order) Pay(transactionID string) bool {
	if o.Paid {
		return false
	}
	o.Paid = true
	o.Status = StatusPaid
	if transactionID != "" {
		o.TransactionID = transactionID
	}
	return true
}

// Ship moves the order into the shipped state. An unpaid order cannot
// ship; shipping an already-shipped order is a no-op.
func (o *Order) Ship() (bool, error) {
	if !o.Paid {
		return false, ErrUnpaidShipment
	}
	if o.Shipped {
		return false, nil
	}
	o.Shipped = true
	o.Status = StatusShipped
	return true, nil
}
