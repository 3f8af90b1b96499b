package seeders

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

func init() {
	Register("admin", seedAdmin)
	Register("parts", seedParts)
	Register("team", seedTeam)
}

// seedAdmin ensures a development admin account exists. The uid is
// minted once; re-seeding refreshes role and name but never swaps the
// identity key out from under the admin's orders.
func seedAdmin(ctx context.Context, db *store.DB) error {
	users := db.Collection("users")

	fields := bson.M{
		"email": "admin@gearbay.dev",
		"role":  models.RoleAdmin,
		"name":  "GearBay Admin",
	}

	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": "admin@gearbay.dev"}, &existing)
	switch {
	case errors.Is(err, store.ErrNotFound):
		fields["uid"] = primitive.NewObjectID().Hex()
	case err != nil:
		return err
	}

	_, _, err = users.UpdateOne(ctx, bson.M{"email": "admin@gearbay.dev"}, fields, true)
	return err
}

func seedParts(ctx context.Context, db *store.DB) error {
	fixtures := []models.Part{
		{Title: "Brake pad set", Email: "admin@gearbay.dev", Price: 45.50, Stock: 120, MinOrder: 2,
			Description: "Ceramic front brake pads, fits most sedans."},
		{Title: "Alternator 120A", Email: "admin@gearbay.dev", Price: 189.00, Stock: 35, MinOrder: 1,
			Description: "Remanufactured 120A alternator with pulley."},
		{Title: "Oil filter", Email: "admin@gearbay.dev", Price: 8.75, Stock: 400, MinOrder: 10,
			Description: "Spin-on oil filter, standard thread."},
	}

	col := db.Collection("parts")
	for _, part := range fixtures {
		_, _, err := col.UpdateOne(ctx,
			bson.M{"email": part.Email, "title": part.Title},
			bson.M{
				"title":       part.Title,
				"email":       part.Email,
				"price":       part.Price,
				"stock":       part.Stock,
				"minOrder":    part.MinOrder,
				"description": part.Description,
			}, true)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedTeam(ctx context.Context, db *store.DB) error {
	members := []models.TeamMember{
		{Name: "Rivka Shah", Role: "Lead Mechanic"},
		{Name: "Tomas Ruiz", Role: "Parts Specialist"},
	}

	col := db.Collection("team")
	for _, m := range members {
		_, _, err := col.UpdateOne(ctx,
			bson.M{"name": m.Name},
			bson.M{"name": m.Name, "role": m.Role}, true)
		if err != nil {
			return err
		}
	}
	return nil
}
