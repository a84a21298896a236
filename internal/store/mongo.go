package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCollection adapts a *mongo.Collection to the Collection interface.
type MongoCollection struct {
	coll *mongo.Collection
}

func NewMongoCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{coll: coll}
}

func (m *MongoCollection) Find(ctx context.Context, filter interface{}, out interface{}) error {
	cursor, err := m.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (m *MongoCollection) FindOne(ctx context.Context, filter interface{}, out interface{}) error {
	return m.coll.FindOne(ctx, filter).Decode(out)
}

func (m *MongoCollection) InsertOne(ctx context.Context, doc interface{}) (*InsertOneResult, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertOneResult{InsertedID: res.InsertedID}, nil
}

func (m *MongoCollection) UpdateOne(ctx context.Context, filter, update interface{}) (*UpdateResult, error) {
	res, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *MongoCollection) DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error) {
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (m *MongoCollection) DeleteMany(ctx context.Context, filter interface{}) (*DeleteResult, error) {
	res, err := m.coll.DeleteMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (m *MongoCollection) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return m.coll.CountDocuments(ctx, filter)
}
