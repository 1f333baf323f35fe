// Package store provides the document store adapter: generic insert,
// upsert and equality-filter query operations over named collections.
// Store talks to MongoDB; Mem is a self-contained in-memory
// implementation used for tests and for running without a database.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Store is the MongoDB-backed document store. The zero value (or
// Unconfigured) is a valid store whose operations fail with
// ErrUnavailable, so the server can come up without a database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Unconfigured returns a store with no connection behind it.
func Unconfigured() *Store {
	return &Store{}
}

// Configured reports whether a database connection is set up.
func (s *Store) Configured() bool {
	return s != nil && s.db != nil
}

// Name returns the database name, or "" when unconfigured.
func (s *Store) Name() string {
	if !s.Configured() {
		return ""
	}
	return s.db.Name()
}

// Ping checks the connection to the primary.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Configured() {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Collections lists the collection names in the database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if !s.Configured() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Disconnect releases the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Insert persists one document and returns the store-assigned identifier
// as a string.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if !s.Configured() {
		return "", ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}

	return insertedID(res.InsertedID), nil
}

// Upsert updates the first document matching the equality filter with
// the fields of doc, inserting it when absent.
func (s *Store) Upsert(ctx context.Context, collection string, filter map[string]any, doc any) error {
	if !s.Configured() {
		return ErrUnavailable
	}

	_, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M(filter),
		bson.M{"$set": doc},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return &WriteError{Collection: collection, Err: err}
	}

	return nil
}

// Query returns up to limit documents matching the equality filter.
// A nil or empty filter matches all documents; no match yields an empty
// slice. Ordering is whatever the store returns.
func (s *Store) Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]bson.Raw, error) {
	if !s.Configured() {
		return nil, ErrUnavailable
	}

	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	docs := make([]bson.Raw, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	return docs, nil
}

// FindByID fetches a single document by its identifier. A malformed
// identifier is treated as not found, not as an error.
func (s *Store) FindByID(ctx context.Context, collection string, id string) (bson.Raw, error) {
	if !s.Configured() {
		return nil, ErrUnavailable
	}

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	raw, err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	return raw, nil
}

// insertedID turns the driver's InsertedID into a stable string.
func insertedID(v any) string {
	switch id := v.(type) {
	case bson.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

// DocumentID extracts the _id of a raw document as a string: ObjectIDs
// render as hex, string ids verbatim, anything else as "". The empty
// fallback is deliberate lenience on the read path.
func DocumentID(raw bson.Raw) string {
	val := raw.Lookup("_id")
	if oid, ok := val.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := val.StringValueOK(); ok {
		return s
	}
	return ""
}
