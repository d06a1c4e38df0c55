package repositories

import (
	"sync"

	"monacowatch/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
// Documents keep insertion order, mirroring store-native ordering.
type MockBlogRepository struct {
	posts []models.BlogPost
	mu    sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

// Count returns the number of stored blog posts.
func (r *MockBlogRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

// Find returns posts matching the equality filter, at most limit entries.
func (r *MockBlogRepository) Find(filter map[string]interface{}, limit int) ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.BlogPost, 0, limit)
	for _, p := range r.posts {
		if len(result) == limit {
			break
		}
		if blogMatches(p, filter) {
			result = append(result, p)
		}
	}
	return result, nil
}

// FindBySlugAndLocale returns a post by its natural key pair.
func (r *MockBlogRepository) FindBySlugAndLocale(slug, locale string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].Slug == slug && r.posts[i].Locale == locale {
			p := r.posts[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Insert adds a new post, assigning an id if none is set.
func (r *MockBlogRepository) Insert(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	r.posts = append(r.posts, *post)
	return nil
}

// DeleteByID removes a post by its id.
func (r *MockBlogRepository) DeleteByID(id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func blogMatches(p models.BlogPost, filter map[string]interface{}) bool {
	for field, value := range filter {
		switch field {
		case "locale":
			if s, ok := value.(string); !ok || p.Locale != s {
				return false
			}
		case "slug":
			if s, ok := value.(string); !ok || p.Slug != s {
				return false
			}
		default:
			return false
		}
	}
	return true
}
