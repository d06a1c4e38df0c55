package repositories

import (
	"context"
	"errors"
	"fmt"

	"monacowatch/internal/models"
	"monacowatch/pkg/mongostore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blogCollection = "blog"

// MongoBlogRepository is a MongoDB implementation of BlogRepository.
type MongoBlogRepository struct {
	store *mongostore.Client
}

// NewMongoBlogRepository creates a new instance of MongoBlogRepository.
// The store may be nil when the process runs without a database.
func NewMongoBlogRepository(store *mongostore.Client) *MongoBlogRepository {
	return &MongoBlogRepository{
		store: store,
	}
}

// Count returns the number of documents in the blog collection.
func (r *MongoBlogRepository) Count() (int64, error) {
	if r.store == nil {
		return 0, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	n, err := r.store.Collection(blogCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return n, nil
}

// Find retrieves blog posts matching an equality filter, bounded by limit.
func (r *MongoBlogRepository) Find(filter map[string]interface{}, limit int) ([]models.BlogPost, error) {
	if r.store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := r.store.Collection(blogCollection).Find(ctx, query, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to find blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

// FindBySlugAndLocale retrieves a single post by its natural key pair.
func (r *MongoBlogRepository) FindBySlugAndLocale(slug, locale string) (*models.BlogPost, error) {
	if r.store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var post models.BlogPost
	err := r.store.Collection(blogCollection).FindOne(ctx, bson.M{"slug": slug, "locale": locale}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog post %q (%s): %w", slug, locale, err)
	}
	return &post, nil
}

// Insert stores a new blog post document. The store assigns the id.
func (r *MongoBlogRepository) Insert(post *models.BlogPost) error {
	if r.store == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.store.Collection(blogCollection).InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to insert blog post %q: %w", post.Slug, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// DeleteByID removes a single blog post document by its store-assigned id.
func (r *MongoBlogRepository) DeleteByID(id primitive.ObjectID) error {
	if r.store == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.store.Collection(blogCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
