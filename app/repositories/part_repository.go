package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// PartRepository handles document operations for the parts collection.
// The /services read surface and the /parts mutation surface share it.
type PartRepository struct {
	col *store.Collection
}

func NewPartRepository(db *store.DB) *PartRepository {
	return &PartRepository{col: db.Collection("parts")}
}

// List returns every part, optionally sorted by descending record id
// (newest first).
func (r *PartRepository) List(ctx context.Context, sortedDesc bool) ([]models.Part, error) {
	opts := []*options.FindOptions{}
	if sortedDesc {
		opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	}

	parts := []models.Part{}
	if err := r.col.Find(ctx, bson.M{}, &parts, opts...); err != nil {
		return nil, err
	}
	return parts, nil
}

// Get returns the part with the given record id.
func (r *PartRepository) Get(ctx context.Context, id string) (models.Part, error) {
	recordID, err := oid(id)
	if err != nil {
		return models.Part{}, err
	}
	var part models.Part
	err = r.col.FindOne(ctx, bson.M{"_id": recordID}, &part)
	return part, err
}

// FindByEmailTitle returns an existing part with the same creator email
// and title, used for resubmission dedup.
func (r *PartRepository) FindByEmailTitle(ctx context.Context, email, title string) (models.Part, error) {
	var part models.Part
	err := r.col.FindOne(ctx, bson.M{"email": email, "title": title}, &part)
	return part, err
}

// Insert stores a new part and returns it with the generated id.
func (r *PartRepository) Insert(ctx context.Context, part models.Part) (models.Part, error) {
	id, err := r.col.InsertOne(ctx, part)
	if err != nil {
		return models.Part{}, err
	}
	if inserted, ok := id.(primitive.ObjectID); ok {
		part.ID = inserted
	}
	return part, nil
}

// Update applies a field patch to the part with the given id.
func (r *PartRepository) Update(ctx context.Context, id string, fields map[string]any) error {
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

// UpsertStock sets the stock level, creating the record when absent.
func (r *PartRepository) UpsertStock(ctx context.Context, id string, stock int) error {
	recordID, err := oid(id)
	if err != nil {
		return err
	}
	_, _, err = r.col.UpdateOne(ctx, bson.M{"_id": recordID}, bson.M{"stock": stock}, true)
	return err
}

// Delete removes the part with the given id.
func (r *PartRepository) Delete(ctx context.Context, id string) error {
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
