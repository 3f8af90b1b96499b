package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// UserRepository handles document operations for the users collection.
type UserRepository struct {
	col *store.Collection
}

func NewUserRepository(db *store.DB) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}, &user)
	return user, err
}

// Upsert creates or refreshes the user keyed by email and returns the
// stored record. A fresh uid and the customer role are assigned on first
// sight; an existing user keeps both.
func (r *UserRepository) Upsert(ctx context.Context, user models.User) (models.User, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err == nil {
		fields := bson.M{}
		if user.Name != "" {
			fields["name"] = user.Name
			existing.Name = user.Name
		}
		if user.Phone != "" {
			fields["phone"] = user.Phone
			existing.Phone = user.Phone
		}
		if user.Address != "" {
			fields["address"] = user.Address
			existing.Address = user.Address
		}
		if len(fields) > 0 {
			if _, _, err := r.col.UpdateOne(ctx, bson.M{"email": user.Email}, fields, false); err != nil {
				return models.User{}, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}

	user.UID = primitive.NewObjectID().Hex()
	user.Role = models.RoleCustomer
	id, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	if inserted, ok := id.(primitive.ObjectID); ok {
		user.ID = inserted
	}
	return user, nil
}

// SetRole updates a user's role. The change is visible to the very next
// admin-guard lookup — roles are read live, never cached.
func (r *UserRepository) SetRole(ctx context.Context, email, role string) error {
	matched, _, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"role": role}, false)
	if err != nil {
		return err
	}
	if matched == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes a user record entirely (admin-initiated only).
func (r *UserRepository) Delete(ctx context.Context, email string) error {
	deleted, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return store.ErrNotFound
	}
	return nil
}
