// Package store exposes the narrow document-store surface the services
// depend on: per-collection CRUD plus identifier validation. Handlers and
// services never touch a *mongo.Collection directly, so tests can swap in
// the in-memory driver.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocuments is returned by FindOne when nothing matches the filter.
var ErrNoDocuments = mongo.ErrNoDocuments

// IsNotFound reports whether err means the document was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoDocuments)
}

type InsertOneResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the operation set every logical collection supports.
// Filters and updates are bson documents; out parameters are decoded the
// same way the Mongo driver decodes them (out must be a pointer, and a
// pointer to a slice for Find).
type Collection interface {
	Find(ctx context.Context, filter interface{}, out interface{}) error
	FindOne(ctx context.Context, filter interface{}, out interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (*InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update interface{}) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error)
	DeleteMany(ctx context.Context, filter interface{}) (*DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// Store bundles the four logical collections of the application.
type Store struct {
	Users    Collection
	Menu     Collection
	Cart     Collection
	Payments Collection
}

// NewMongoStore maps the application collections onto a Mongo database.
func NewMongoStore(database *mongo.Database) *Store {
	return &Store{
		Users:    NewMongoCollection(database.Collection("users")),
		Menu:     NewMongoCollection(database.Collection("menu")),
		Cart:     NewMongoCollection(database.Collection("cart")),
		Payments: NewMongoCollection(database.Collection("payments")),
	}
}

// NewMemoryStore builds a store backed entirely by in-memory collections.
func NewMemoryStore() *Store {
	return &Store{
		Users:    NewMemoryCollection(),
		Menu:     NewMemoryCollection(),
		Cart:     NewMemoryCollection(),
		Payments: NewMemoryCollection(),
	}
}
