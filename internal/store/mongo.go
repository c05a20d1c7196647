package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/harentsoaR/fair-marriage-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a single shared MongoDB client.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects, pings and makes sure the indexes exist.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	s := &MongoStore{client: client, db: client.Database(dbName)}
	if err := s.ensureIndexes(ctx); err != nil {
		// Existing data may violate a unique index; serve anyway.
		log.Printf("WARNING: store: ensure indexes failed: %v", err)
	}
	return s, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Database exposes the underlying database, for tests.
func (s *MongoStore) Database() *mongo.Database {
	return s.db
}

func (s *MongoStore) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}
	indexes := []idx{
		{ColBiodatas, bson.D{{Key: "bioId", Value: 1}}, true},
		{ColBiodatas, bson.D{{Key: "email", Value: 1}}, false},
		{ColBiodatas, bson.D{{Key: "bioType", Value: 1}, {Key: "age", Value: 1}}, false},
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColUsers, bson.D{{Key: "role", Value: 1}}, false},
		{ColContactRequests, bson.D{{Key: "email", Value: 1}}, false},
		{ColContactRequests, bson.D{{Key: "biodataId", Value: 1}}, false},
		{ColFavourites, bson.D{{Key: "email", Value: 1}, {Key: "biodataId", Value: 1}}, false},
		{ColPremiumRequests, bson.D{{Key: "email", Value: 1}}, false},
	}

	var errs []error
	for _, ix := range indexes {
		model := mongo.IndexModel{Keys: ix.keys}
		if ix.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.col(ix.col).Indexes().CreateOne(ctx, model); err != nil {
			errs = append(errs, fmt.Errorf("%s %v: %w", ix.col, ix.keys, err))
		}
	}
	return errors.Join(errs...)
}

func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("store: %s: %w", op, err)
}

// caseInsensitive matches the whole field value ignoring case.
func caseInsensitive(v string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"}
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var result T
	err := col.FindOne(ctx, filter, opts...).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapError("find one in "+col.Name(), err)
	}
	return &result, nil
}

// findMany never returns a nil slice so handlers serialize [] rather than null.
func findMany[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapError("find in "+col.Name(), err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, wrapError("decode "+col.Name(), err)
	}
	return results, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) (models.InsertResult, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, wrapError("insert into "+col.Name(), err)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func updateOne(ctx context.Context, col *mongo.Collection, filter, update any) (models.UpdateResult, error) {
	res, err := col.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.UpdateResult{}, wrapError("update "+col.Name(), err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func deleteOne(ctx context.Context, col *mongo.Collection, filter any) (models.DeleteResult, error) {
	res, err := col.DeleteOne(ctx, filter)
	if err != nil {
		return models.DeleteResult{}, wrapError("delete from "+col.Name(), err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func estimatedCount(ctx context.Context, col *mongo.Collection) (int64, error) {
	n, err := col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, wrapError("count "+col.Name(), err)
	}
	return n, nil
}

func countDocuments(ctx context.Context, col *mongo.Collection, filter any) (int64, error) {
	n, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, wrapError("count "+col.Name(), err)
	}
	return n, nil
}
