package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/uniregistry/internal/config"
	"github.com/yigit/uniregistry/internal/pkg/helpers"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to the server named by the configured URI
func NewMongoDB(ctx context.Context, cfg *config.Config) (*MongoDB, error) {
	timeout := helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if cfg.Database.MaxOpenConns > 0 {
		clientOptions.SetMaxPoolSize(uint64(cfg.Database.MaxOpenConns))
	}
	if cfg.Database.MaxIdleConns > 0 {
		clientOptions.SetMinPoolSize(uint64(cfg.Database.MaxIdleConns))
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// Collection returns a handle on the named collection
func (m *MongoDB) Collection(name string) Collection {
	return &MongoCollection{coll: m.Database.Collection(name)}
}

// Ping runs the server liveness check against the primary
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// MongoCollection adapts *mongo.Collection to Collection
type MongoCollection struct {
	coll *mongo.Collection
}

// InsertOne inserts the document and returns the server assigned id
func (c *MongoCollection) InsertOne(ctx context.Context, document interface{}) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, document)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// Find decodes all matching documents into results
func (c *MongoCollection) Find(ctx context.Context, filter bson.M, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

// FindOne decodes the first matching document into result
func (c *MongoCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	return c.coll.FindOne(ctx, filter).Decode(result)
}

// SetFields applies a $set of fields to the document
func (c *MongoCollection) SetFields(ctx context.Context, id primitive.ObjectID, fields interface{}) (int64, error) {
	return c.updateByID(ctx, id, bson.M{"$set": fields})
}

// DeleteOne deletes the document
func (c *MongoCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Push applies $push
func (c *MongoCollection) Push(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.updateByID(ctx, id, bson.M{"$push": bson.M{field: value}})
}

// AddToSet applies $addToSet
func (c *MongoCollection) AddToSet(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.updateByID(ctx, id, bson.M{"$addToSet": bson.M{field: value}})
}

// Pull applies $pull
func (c *MongoCollection) Pull(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.updateByID(ctx, id, bson.M{"$pull": bson.M{field: value}})
}

func (c *MongoCollection) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error) {
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
