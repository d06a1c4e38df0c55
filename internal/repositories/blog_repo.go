package repositories

import (
	"monacowatch/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogRepository defines the interface for blog post data access.
type BlogRepository interface {
	Count() (int64, error)
	Find(filter map[string]interface{}, limit int) ([]models.BlogPost, error)
	FindBySlugAndLocale(slug, locale string) (*models.BlogPost, error)
	Insert(post *models.BlogPost) error
	DeleteByID(id primitive.ObjectID) error
}
