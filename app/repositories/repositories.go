// Package repositories implements the document-store access layer. Each
// repository wraps one collection and exposes context-first methods
// over plain string ids so callers never touch driver types.
package repositories

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// oid parses a hex record id. A malformed id can never match a
// document, so it reports ErrNotFound rather than a distinct error.
func oid(id string) (primitive.ObjectID, error) {
	parsed, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrNotFound
	}
	return parsed, nil
}
