package repositories

import (
	"sync"

	"monacowatch/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockWatchRepository is an in-memory implementation of WatchRepository.
// Documents keep insertion order, mirroring store-native ordering.
type MockWatchRepository struct {
	watches []models.Watch
	mu      sync.RWMutex
}

// NewMockWatchRepository creates a new instance of MockWatchRepository.
func NewMockWatchRepository() *MockWatchRepository {
	return &MockWatchRepository{}
}

// Count returns the number of stored watches.
func (r *MockWatchRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.watches)), nil
}

// Find returns watches matching the equality filter, at most limit entries.
func (r *MockWatchRepository) Find(filter map[string]interface{}, limit int) ([]models.Watch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Watch, 0, limit)
	for _, w := range r.watches {
		if len(result) == limit {
			break
		}
		if watchMatches(w, filter) {
			result = append(result, w)
		}
	}
	return result, nil
}

// FindByName returns a watch by its natural key.
func (r *MockWatchRepository) FindByName(name string) (*models.Watch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.watches {
		if r.watches[i].Name == name {
			w := r.watches[i]
			return &w, nil
		}
	}
	return nil, ErrNotFound
}

// Insert adds a new watch, assigning an id if none is set.
func (r *MockWatchRepository) Insert(watch *models.Watch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if watch.ID.IsZero() {
		watch.ID = primitive.NewObjectID()
	}
	r.watches = append(r.watches, *watch)
	return nil
}

// DeleteByID removes a watch by its id.
func (r *MockWatchRepository) DeleteByID(id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.watches {
		if r.watches[i].ID == id {
			r.watches = append(r.watches[:i], r.watches[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func watchMatches(w models.Watch, filter map[string]interface{}) bool {
	for field, value := range filter {
		switch field {
		case "featured":
			if b, ok := value.(bool); !ok || w.Featured != b {
				return false
			}
		case "name":
			if s, ok := value.(string); !ok || w.Name != s {
				return false
			}
		case "brand":
			if s, ok := value.(string); !ok || w.Brand != s {
				return false
			}
		default:
			return false
		}
	}
	return true
}
