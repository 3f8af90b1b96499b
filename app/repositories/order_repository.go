package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// OrderRepository handles document operations for the orders collection.
type OrderRepository struct {
	col *store.Collection
}

func NewOrderRepository(db *store.DB) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

// FindByUIDProduct returns the order owned by uid for the given product,
// if one exists. This is the duplicate-suppression read.
func (r *OrderRepository) FindByUIDProduct(ctx context.Context, uid, productID string) (models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"uid": uid, "productInfo.id": productID}, &order)
	return order, err
}

// Insert stores a new order and returns it with the generated id.
func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	id, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	if inserted, ok := id.(primitive.ObjectID); ok {
		order.ID = inserted
	}
	return order, nil
}

// FindByUID returns every order owned by uid.
func (r *OrderRepository) FindByUID(ctx context.Context, uid string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.col.Find(ctx, bson.M{"uid": uid}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// All returns every order regardless of owner.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.col.Find(ctx, bson.M{}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns the order with the given record id.
func (r *OrderRepository) Get(ctx context.Context, id string) (models.Order, error) {
	recordID, err := oid(id)
	if err != nil {
		return models.Order{}, err
	}
	var order models.Order
	err = r.col.FindOne(ctx, bson.M{"_id": recordID}, &order)
	return order, err
}

// Update applies a field patch to the order with the given id.
func (r *OrderRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	recordID, err := oid(id)
	if err != nil {
		return err
	}
	matched, _, err := r.col.UpdateOne(ctx, bson.M{"_id": recordID}, bson.M(fields), false)
	if err != nil {
		return err
	}
	if matched == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the order with the given id.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	recordID, err := oid(id)
	if err != nil {
		return err
	}
	deleted, err := r.col.DeleteOne(ctx, bson.M{"_id": recordID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return store.ErrNotFound
	}
	return nil
}
