// Package store wraps the MongoDB driver in the narrow document-store
// surface the application uses: find, findOne, insertOne, updateOne,
// deleteOne by equality filter, plus multi-document transactions.
//
// A DB is constructed once at startup and handed to each repository;
// there are no package-level connection handles. The client is safe for
// unsynchronized concurrent use after Connect.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/gearbay/pkg/metrics"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("store: document not found")

// DB owns the Mongo client and database handle.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the Mongo connection, verifies it with a ping, and returns
// the DB handle. The caller must eventually call Disconnect.
func Connect(ctx context.Context, uri, name string) (*DB, error) {
	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &DB{client: client, db: client.Database(name)}, nil
}

// Disconnect closes the underlying client.
func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Collection returns a handle for the named collection.
func (d *DB) Collection(name string) *Collection {
	return &Collection{col: d.db.Collection(name)}
}

// WithTransaction runs fn inside a single Mongo session transaction.
// Every store call made through the ctx passed to fn joins the transaction.
func (d *DB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := d.client.StartSession()
	if err != nil {
		return fmt.Errorf("store: start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		return fmt.Errorf("store: transaction: %w", err)
	}
	return nil
}

// Collection exposes the five document operations over one collection.
type Collection struct {
	col *mongo.Collection
}

// Find decodes every document matching filter into results (a pointer to a
// slice). Pass opts to sort or limit.
func (c *Collection) Find(ctx context.Context, filter bson.M, results interface{}, opts ...*options.FindOptions) error {
	defer metrics.ObserveStoreOp("find", time.Now())

	cur, err := c.col.Find(ctx, filter, opts...)
	if err != nil {
		return fmt.Errorf("store: find %s: %w", c.col.Name(), err)
	}
	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("store: decode %s: %w", c.col.Name(), err)
	}
	return nil
}

// FindOne decodes the first document matching filter into result.
// Returns ErrNotFound when nothing matches.
func (c *Collection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	defer metrics.ObserveStoreOp("find_one", time.Now())

	err := c.col.FindOne(ctx, filter).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("store: find one %s: %w", c.col.Name(), err)
	}
	return nil
}

// InsertOne inserts doc and returns the generated record id.
func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (interface{}, error) {
	defer metrics.ObserveStoreOp("insert_one", time.Now())

	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("store: insert %s: %w", c.col.Name(), err)
	}
	return res.InsertedID, nil
}

// UpdateOne applies a $set patch to the first document matching filter.
// With upsert true the document is created when absent.
func (c *Collection) UpdateOne(ctx context.Context, filter, fields bson.M, upsert bool) (matched, modified int64, err error) {
	defer metrics.ObserveStoreOp("update_one", time.Now())

	res, err := c.col.UpdateOne(ctx, filter, bson.M{"$set": fields}, options.Update().SetUpsert(upsert))
	if err != nil {
		return 0, 0, fmt.Errorf("store: update %s: %w", c.col.Name(), err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// DeleteOne removes the first document matching filter.
func (c *Collection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	defer metrics.ObserveStoreOp("delete_one", time.Now())

	res, err := c.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("store: delete %s: %w", c.col.Name(), err)
	}
	return res.DeletedCount, nil
}
