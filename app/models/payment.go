package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a confirmed charge linked to an order, scoped to the uid
// that confirmed it.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"orderId"       json:"orderId"`
	UID           string             `bson:"uid"           json:"uid"`
	Amount        float64            `bson:"amount"        json:"amount"`
	Currency      string             `bson:"currency"      json:"currency"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"createdAt"     json:"createdAt"`
}
