package repositories

import (
	"monacowatch/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchRepository defines the interface for watch data access.
type WatchRepository interface {
	Count() (int64, error)
	Find(filter map[string]interface{}, limit int) ([]models.Watch, error)
	FindByName(name string) (*models.Watch, error)
	Insert(watch *models.Watch) error
	DeleteByID(id primitive.ObjectID) error
}
