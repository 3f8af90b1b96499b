package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Part is a catalogue record — an auto part or a service offering.
// Email references the creating user; Stock feeds the order flow.
type Part struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"       json:"title"`
	Email       string             `bson:"email"       json:"email"`
	Price       float64            `bson:"price"       json:"price"`
	Stock       int                `bson:"stock"       json:"stock"`
	MinOrder    int                `bson:"minOrder,omitempty"    json:"minOrder,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"img,omitempty"         json:"img,omitempty"`
}
