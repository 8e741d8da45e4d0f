package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"laundry-delivery-api/codec"
)

// MongoStore is the MongoDB backend
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc codec.Document) (primitive.ObjectID, error) {
	if _, ok := doc.Get(codec.IDField); !ok {
		doc = append(codec.Document{{Key: codec.IDField, Value: primitive.NewObjectID()}}, doc...)
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc.BSON())
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]codec.Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []codec.Document{}
	for cur.Next(ctx) {
		var d bson.D
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		docs = append(docs, codec.FromBSON(d))
	}
	return docs, cur.Err()
}

func (s *MongoStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (codec.Document, error) {
	var d bson.D
	err := s.db.Collection(collection).FindOne(ctx, bson.M{codec.IDField: id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return codec.FromBSON(d), nil
}

func (s *MongoStore) Update(ctx context.Context, collection string, id primitive.ObjectID, set codec.Document) (codec.Document, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d bson.D
	err := s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{codec.IDField: id}, bson.D{{Key: "$set", Value: set.BSON()}}, opts).
		Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return codec.FromBSON(d), nil
}

func (s *MongoStore) Name() string { return s.db.Name() }

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
