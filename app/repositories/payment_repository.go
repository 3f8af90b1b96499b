package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// PaymentRepository handles document operations for the payments collection.
type PaymentRepository struct {
	col *store.Collection
}

func NewPaymentRepository(db *store.DB) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments")}
}

// Insert stores a confirmed payment and returns it with the generated id.
func (r *PaymentRepository) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	id, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return models.Payment{}, err
	}
	if inserted, ok := id.(primitive.ObjectID); ok {
		payment.ID = inserted
	}
	return payment, nil
}

// FindByUID returns every payment confirmed by uid.
func (r *PaymentRepository) FindByUID(ctx context.Context, uid string) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := r.col.Find(ctx, bson.M{"uid": uid}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
