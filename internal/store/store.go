package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// Collation carries the locale used for text comparison on new collections.
type Collation struct {
	Locale string
}

// IndexKey is a single field in an index key combination.
type IndexKey struct {
	Field string
	Desc  bool
}

// IndexSpec declares one named index on a collection.
type IndexSpec struct {
	Name   string
	Unique bool
	Keys   []IndexKey
}

// Database is the document store surface the installer runs against.
// The mongodb package implements it against a live server; the memory
// package implements it for tests.
type Database interface {
	// CreateCollection ensures a collection exists. Creating a collection
	// that already exists is not an error.
	CreateCollection(ctx context.Context, name string, collation *Collation) error

	// CreateIndexes applies the given index specs. Building a unique index
	// over data that violates it fails.
	CreateIndexes(ctx context.Context, collection string, specs []IndexSpec) error

	// InsertOne inserts a document, assigning a generated id when the
	// document's _id is empty, and returns the id.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)

	// InsertMany inserts documents in order and returns their ids.
	InsertMany(ctx context.Context, collection string, docs []interface{}) ([]string, error)

	// UpdateByID sets the given fields on the document with the given id.
	UpdateByID(ctx context.Context, collection string, id string, fields bson.M) error

	// FindOne decodes the first document matching filter into out, or
	// returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error

	// Find decodes all documents matching filter into out, a pointer to a
	// slice.
	Find(ctx context.Context, collection string, filter bson.M, out interface{}) error

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)

	// ListCollections returns the names of all existing collections.
	ListCollections(ctx context.Context) ([]string, error)
}
