package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost represents a localized editorial article stored in the "blog"
// collection. The (slug, locale) pair is the natural key: the same slug may
// exist once per locale.
type BlogPost struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Slug      string             `json:"slug" bson:"slug" validate:"required"`
	Title     string             `json:"title" bson:"title" validate:"required"`
	Excerpt   string             `json:"excerpt" bson:"excerpt" validate:"required"`
	Content   string             `json:"content" bson:"content" validate:"required"`
	Tags      []string           `json:"tags" bson:"tags"`
	Locale    string             `json:"locale" bson:"locale"`
	HeroImage *string            `json:"hero_image,omitempty" bson:"hero_image,omitempty" validate:"omitempty,url"`
}

// BlogPostOut is the public projection of a BlogPost returned by the API.
type BlogPostOut struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Locale    string   `json:"locale"`
	HeroImage *string  `json:"hero_image,omitempty"`
}

// ToOut projects a stored BlogPost into its public output shape, defaulting
// a missing locale to "en".
func (p BlogPost) ToOut() BlogPostOut {
	out := BlogPostOut{
		ID:        p.ID.Hex(),
		Slug:      p.Slug,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Tags:      p.Tags,
		Locale:    p.Locale,
		HeroImage: p.HeroImage,
	}
	if out.Locale == "" {
		out.Locale = "en"
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}
