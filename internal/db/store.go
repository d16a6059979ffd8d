package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/uniregistry/internal/config"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// Collection names
const (
	StudentsCollection     = "students"
	CoursesCollection      = "courses"
	UniversitiesCollection = "universities"
)

// Driver names accepted in database.driver
const (
	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ErrNoDocuments is returned by FindOne when nothing matches. Every backend returns the
// mongo driver's sentinel so callers only check one value.
var ErrNoDocuments = mongo.ErrNoDocuments

// ErrUnsupportedDriver is returned by Connect for a database.driver it does not know
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Collection is the set of single-document operations the repositories need. Filters are
// equality matches on top-level fields; "_id" takes a primitive.ObjectID.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, filter bson.M, results interface{}) error
	FindOne(ctx context.Context, filter bson.M, result interface{}) error
	// SetFields overwrites the given fields and reports how many documents matched.
	SetFields(ctx context.Context, id primitive.ObjectID, fields interface{}) (int64, error)
	DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error)
	// Push appends value to the array field, duplicates allowed.
	Push(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error)
	// AddToSet appends value to the array field unless already present.
	AddToSet(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error)
	// Pull removes every occurrence of value from the array field.
	Pull(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error)
}

// Store is a connected document store backend
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Gateway hands out the three entity collections of one store
type Gateway struct {
	store  Store
	driver string
}

// NewGateway wraps an already connected store
func NewGateway(store Store, driver string) *Gateway {
	return &Gateway{store: store, driver: driver}
}

// Connect opens the configured backend and pings it before returning
func Connect(ctx context.Context, cfg *config.Config) (*Gateway, error) {
	driver := strings.ToLower(cfg.Database.Driver)

	var (
		store Store
		err   error
	)
	switch driver {
	case DriverMongo:
		store, err = NewMongoDB(ctx, cfg)
	case DriverPostgres:
		store, err = NewPostgresDB(ctx, cfg)
	case DriverMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedDriver, cfg.Database.Driver)
	}
	if err != nil {
		logger.Error().Err(err).Str("driver", driver).Msg("Failed to open document store")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	if err := store.Ping(ctx); err != nil {
		logger.Error().Err(err).Str("driver", driver).Msg("Document store liveness check failed")
		_ = store.Close(ctx)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	return NewGateway(store, driver), nil
}

// Driver returns the backend name
func (g *Gateway) Driver() string {
	return g.driver
}

// Students returns the students collection
func (g *Gateway) Students() Collection {
	return g.store.Collection(StudentsCollection)
}

// Courses returns the courses collection
func (g *Gateway) Courses() Collection {
	return g.store.Collection(CoursesCollection)
}

// Universities returns the universities collection
func (g *Gateway) Universities() Collection {
	return g.store.Collection(UniversitiesCollection)
}

// Ping checks the store is still reachable
func (g *Gateway) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}

// Close releases the underlying connection
func (g *Gateway) Close(ctx context.Context) error {
	return g.store.Close(ctx)
}

// Store returns the backend behind the gateway
func (g *Gateway) Store() Store {
	return g.store
}
