package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monacowatch/internal/models"
	"monacowatch/pkg/mongostore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const watchCollection = "watch"

const queryTimeout = 10 * time.Second

// MongoWatchRepository is a MongoDB implementation of WatchRepository.
// It tolerates a nil store handle by returning ErrStoreUnavailable.
type MongoWatchRepository struct {
	store *mongostore.Client
}

// NewMongoWatchRepository creates a new instance of MongoWatchRepository.
// The store may be nil when the process runs without a database.
func NewMongoWatchRepository(store *mongostore.Client) *MongoWatchRepository {
	return &MongoWatchRepository{
		store: store,
	}
}

// Count returns the number of documents in the watch collection.
func (r *MongoWatchRepository) Count() (int64, error) {
	if r.store == nil {
		return 0, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	n, err := r.store.Collection(watchCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count watches: %w", err)
	}
	return n, nil
}

// Find retrieves watches matching an equality filter, bounded by limit.
// An empty filter matches everything; ordering is store-native.
func (r *MongoWatchRepository) Find(filter map[string]interface{}, limit int) ([]models.Watch, error) {
	if r.store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := r.store.Collection(watchCollection).Find(ctx, query, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to find watches: %w", err)
	}
	defer cursor.Close(ctx)

	var watches []models.Watch
	if err := cursor.All(ctx, &watches); err != nil {
		return nil, fmt.Errorf("failed to decode watches: %w", err)
	}
	return watches, nil
}

// FindByName retrieves a single watch by its natural key.
func (r *MongoWatchRepository) FindByName(name string) (*models.Watch, error) {
	if r.store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var watch models.Watch
	err := r.store.Collection(watchCollection).FindOne(ctx, bson.M{"name": name}).Decode(&watch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find watch %q: %w", name, err)
	}
	return &watch, nil
}

// Insert stores a new watch document. The store assigns the id.
func (r *MongoWatchRepository) Insert(watch *models.Watch) error {
	if r.store == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.store.Collection(watchCollection).InsertOne(ctx, watch)
	if err != nil {
		return fmt.Errorf("failed to insert watch %q: %w", watch.Name, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		watch.ID = oid
	}
	return nil
}

// DeleteByID removes a single watch document by its store-assigned id.
func (r *MongoWatchRepository) DeleteByID(id primitive.ObjectID) error {
	if r.store == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.store.Collection(watchCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete watch %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
