package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer rating. Read-mostly; no lifecycle.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email"   json:"email"`
	Name      string             `bson:"name"    json:"name"`
	Rating    int                `bson:"rating"  json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title"  json:"title"`
	Author      string             `bson:"author" json:"author"`
	Body        string             `bson:"body"   json:"body"`
	PublishedAt time.Time          `bson:"publishedAt" json:"publishedAt"`
}

// TeamMember is a static staff listing.
type TeamMember struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Role     string             `bson:"role" json:"role"`
	ImageURL string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}
