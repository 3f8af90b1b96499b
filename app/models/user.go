package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values. Every user starts as a customer; elevation to admin is a
// guarded mutation.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is an account created or refreshed by the upsert-on-login flow.
// Email and UID are both unique; UID is the identity key carried in tokens.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID     string             `bson:"uid"            json:"uid"`
	Email   string             `bson:"email"          json:"email"`
	Role    string             `bson:"role"           json:"role"`
	Name    string             `bson:"name,omitempty"    json:"name,omitempty"`
	Phone   string             `bson:"phone,omitempty"   json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
}
