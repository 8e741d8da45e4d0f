// Package store holds the persistence gateway and its document backends.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laundry-delivery-api/codec"
)

var (
	ErrNotFound           = errors.New("document not found")
	ErrStorageUnavailable = errors.New("database not available")
)

// Filter selects documents by top-level field equality
type Filter map[string]any

// Store is a schemaless document backend grouped into named collections.
// Documents passed in and returned keep the store's native "_id" field.
type Store interface {
	Insert(ctx context.Context, collection string, doc codec.Document) (primitive.ObjectID, error)
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]codec.Document, error)
	FindByID(ctx context.Context, collection string, id primitive.ObjectID) (codec.Document, error)
	// Update sets the given fields and returns the document after the
	// change, or ErrNotFound.
	Update(ctx context.Context, collection string, id primitive.ObjectID, set codec.Document) (codec.Document, error)
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
